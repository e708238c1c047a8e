// Package pmf computes the probability mass function of the sum of n fair
// s-sided dice. Three strategies are available: exact inclusion-exclusion
// combinatorics, FFT convolution, and a normal approximation for large dice
// counts. Precompute flattens the convolution results into a single lookup
// table for O(1) access on the solver's hot path.
package pmf

import "math/big"

// Exact computes P(sum = total | n dice with faces 1..sides) from the
// closed-form inclusion-exclusion count of compositions:
//
//	count = sum_k (-1)^k C(n,k) C(total-sides*k-1, n-1)
//
// divided by sides^n. All arithmetic stays in big integers and one big
// rational until the final conversion, so the result is accurate to double
// precision for any n. Factorial growth makes this expensive for large n.
func Exact(total, n, sides int) float64 {
	if n == 0 {
		if total == 0 {
			return 1
		}
		return 0
	}
	if total < n || total > n*sides {
		return 0
	}

	compositions := new(big.Int)
	term := new(big.Int)
	for k := 0; sides*k <= total-n; k++ {
		term.Mul(binomial(n, k), binomial(total-sides*k-1, n-1))
		if k%2 == 0 {
			compositions.Add(compositions, term)
		} else {
			compositions.Sub(compositions, term)
		}
	}
	outcomes := new(big.Int).Exp(big.NewInt(int64(sides)), big.NewInt(int64(n)), nil)

	f, _ := new(big.Rat).SetFrac(compositions, outcomes).Float64()
	return f
}

func binomial(n, k int) *big.Int {
	if k < 0 || k > n {
		return new(big.Int)
	}
	return new(big.Int).Binomial(int64(n), int64(k))
}
