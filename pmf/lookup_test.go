package pmf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrecomputeMaxDice(t *testing.T) {
	// The max+1 floor dominates the mean-based bound for any nontrivial
	// maximum score.
	require.Equal(t, 101, Precompute(100, 6).MaxDice())
	require.Equal(t, 11, Precompute(10, 2).MaxDice())
}

func TestPrecomputeSumsToOne(t *testing.T) {
	for _, tc := range []struct{ max, sides int }{{10, 2}, {30, 6}} {
		l := Precompute(tc.max, tc.sides)
		for n := 1; n <= l.MaxDice(); n++ {
			sum := 0.0
			for total := n; total <= n*tc.sides; total++ {
				sum += l.Prob(n, total)
			}
			require.InDelta(t, 1.0, sum, 1e-9, "PMF for %d dice with %d sides should sum to 1", n, tc.sides)
		}
	}
}

func TestLookupMatchesExact(t *testing.T) {
	l := Precompute(20, 6)
	for n := 0; n <= 8; n++ {
		for total := n; total <= n*6; total++ {
			require.InDelta(t, Exact(total, n, 6), l.Prob(n, total), 1e-9,
				"P(sum=%d | %d dice)", total, n)
		}
	}
}

func TestProbSafe(t *testing.T) {
	l := Precompute(10, 6)

	t.Run("valid queries match the fast path", func(t *testing.T) {
		for n := 1; n <= 5; n++ {
			for total := n; total <= n*6; total++ {
				require.Equal(t, l.Prob(n, total), l.ProbSafe(n, total))
			}
		}
	})

	t.Run("out-of-range queries return zero", func(t *testing.T) {
		require.Equal(t, 0.0, l.ProbSafe(-1, 0), "negative dice count")
		require.Equal(t, 0.0, l.ProbSafe(l.MaxDice()+1, 50), "dice count beyond the table")
		require.Equal(t, 0.0, l.ProbSafe(3, 2), "total below the dice count")
		require.Equal(t, 0.0, l.ProbSafe(3, 19), "total above n*sides reads nothing from the next PMF")
		require.Equal(t, 0.0, l.ProbSafe(l.MaxDice(), l.MaxDice()*6+1), "total past the end of the table")
	})
}

func BenchmarkConvolve(b *testing.B) {
	a := die(100)
	c := die(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Convolve(a, c)
	}
}

func BenchmarkPrecompute(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Precompute(50, 6)
	}
}

func BenchmarkLookup(b *testing.B) {
	l := Precompute(100, 6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Prob(20, 70)
	}
}
