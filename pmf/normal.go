package pmf

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/stat/distuv"
)

// approxTol is the average absolute error the normal approximation must stay
// within before Hybrid switches away from exact computation.
const approxTol = 1e-4

// approxCap bounds the threshold search; beyond this many dice the
// approximation is used unconditionally.
const approxCap = 64

// NormalApprox approximates P(sum = total | n dice) by the Gaussian density
// at total. The sum of n faces uniform on 1..sides has mean n(sides+1)/2 and
// variance n(sides^2-1)/12. Accuracy improves with n; use Hybrid to switch
// strategies at a vetted threshold.
func NormalApprox(total, n, sides int) float64 {
	if n == 0 || sides < 2 {
		// Degenerate distributions have no density to evaluate.
		return Exact(total, n, sides)
	}
	if total < n || total > n*sides {
		return 0
	}

	mean := float64(n) * float64(sides+1) / 2
	variance := float64(n) * float64(sides*sides-1) / 12
	normal := distuv.Normal{Mu: mean, Sigma: math.Sqrt(variance)}
	return normal.Prob(float64(total))
}

// Hybrid returns the exact PMF value below the per-die approximation
// threshold and the normal approximation at or above it.
func Hybrid(total, n, sides int) float64 {
	if n < ApproxMinDice(sides) {
		return Exact(total, n, sides)
	}
	return NormalApprox(total, n, sides)
}

var approxThresholds sync.Map // sides -> minimum dice count

// ApproxMinDice returns the smallest dice count at which the normal
// approximation stays within approxTol average absolute error of the exact
// PMF for dice with the given sides. Found by binary search on n and cached
// per sides value.
func ApproxMinDice(sides int) int {
	if v, ok := approxThresholds.Load(sides); ok {
		return v.(int)
	}

	minDice := approxCap
	low, high := 1, approxCap
	for low < high {
		n := low + (high-low)/2
		if avgApproxError(n, sides) <= approxTol {
			minDice = n
			high = n - 1
		} else {
			low = n + 1
		}
	}

	approxThresholds.Store(sides, minDice)
	return minDice
}

// avgApproxError is the mean absolute difference between the exact PMF and
// its normal approximation across the whole support of n dice.
func avgApproxError(n, sides int) float64 {
	sum := 0.0
	for total := n; total <= n*sides; total++ {
		diff := math.Abs(Exact(total, n, sides) - NormalApprox(total, n, sides))
		if math.IsNaN(diff) || math.IsInf(diff, 0) {
			return math.Inf(1)
		}
		sum += diff
	}
	return sum / float64(n*sides-n+1)
}
