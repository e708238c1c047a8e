package pmf

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Lookup stores the PMFs of every strategically relevant dice count as one
// flat array, giving O(1) probability reads on the solver's hot path. It is
// built once per solve and never mutated afterwards.
type Lookup struct {
	data    []float64 // All PMF values, n-dice PMF after (n-1)-dice PMF
	offsets []int     // Start of each n-dice PMF within data
	maxDice int
}

// Precompute builds the PMFs for 0..maxDice dice, where maxDice is the
// largest count that can ever be strategically relevant under the ruleset:
// the mean of n dice is n(sides+1)/2, so no optimal action rolls more than
// 2(max+sides)/(sides+1) dice, floored at max+1 for small dice. Each n-dice
// PMF is the (n-1)-dice PMF convolved with the single-die PMF, so this pass
// is inherently sequential. Every PMF must sum to 1 within 1e-10; a failure
// means the convolution chain is broken and precompute panics.
func Precompute(max, sides int) *Lookup {
	maxDice := 2 * (max + sides) / (sides + 1)
	if maxDice < max+1 {
		maxDice = max + 1
	}

	die := make([]float64, sides)
	for i := range die {
		die[i] = 1 / float64(sides)
	}

	pmfs := make([][]float64, maxDice+1)
	pmfs[0] = []float64{1}
	for n := 1; n <= maxDice; n++ {
		pmfs[n] = Convolve(pmfs[n-1], die)
	}

	size := 0
	for _, p := range pmfs {
		size += len(p)
	}

	l := &Lookup{
		data:    make([]float64, 0, size),
		offsets: make([]int, 0, maxDice+1),
		maxDice: maxDice,
	}
	for n, p := range pmfs {
		if n > 0 {
			if sum := floats.Sum(p); math.Abs(sum-1) >= 1e-10 {
				panic(fmt.Sprintf("pmf: distribution for %d dice sums to %v, want 1", n, sum))
			}
		}
		l.offsets = append(l.offsets, len(l.data))
		l.data = append(l.data, p...)
	}
	return l
}

// MaxDice returns the largest dice count held by the table.
func (l *Lookup) MaxDice() int {
	return l.maxDice
}

// Prob returns P(sum = total | n dice). This is the unchecked hot path: the
// caller must guarantee n <= MaxDice() and n <= total <= n*sides. The solver
// upholds this through its own dice bounds; use ProbSafe anywhere the
// precondition cannot be established.
func (l *Lookup) Prob(n, total int) float64 {
	return l.data[l.offsets[n]+total-n]
}

// ProbSafe is the bounds-checked variant of Prob. Any out-of-range query
// returns 0 instead of panicking.
func (l *Lookup) ProbSafe(n, total int) float64 {
	if n < 0 || n > l.maxDice || total < n {
		return 0
	}
	end := len(l.data)
	if n < l.maxDice {
		end = l.offsets[n+1]
	}
	i := l.offsets[n] + total - n
	if i >= end {
		return 0
	}
	return l.data[i]
}
