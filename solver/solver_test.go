package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"greed/game"
)

func TestSolveKnownOptimalStrategies(t *testing.T) {
	// Test solver against known optimal strategies for simple cases
	s := New(10, 2)
	s.Solve()

	// At max score, should never roll
	action := s.Policy().Get(game.State{Active: 10, Queued: 5})
	require.Equal(t, 0, action.N, "at max score, should never roll")

	// When opponent is at max and we're behind in the final round, must roll
	action = s.Policy().Get(game.State{Active: 8, Queued: 10, Last: true})
	require.Greater(t, action.N, 0, "must roll when behind in the final round")
}

func TestSolvePayoffsStayInRange(t *testing.T) {
	s := New(12, 4)
	s.Solve()

	for state, action := range s.Policy().All() {
		require.GreaterOrEqual(t, action.Payoff, -1.0-1e-9, "payoff for %+v", state)
		require.LessOrEqual(t, action.Payoff, 1.0+1e-9, "payoff for %+v", state)
		require.GreaterOrEqual(t, action.N, 0, "dice count for %+v", state)
	}
}

func TestStandingDuality(t *testing.T) {
	// Standing in a normal state must be worth exactly the negation of the
	// opponent's stored terminal payoff with roles swapped.
	s := New(15, 3)
	s.Solve()

	for a := 0; a <= 15; a++ {
		for q := 0; q <= 15; q++ {
			swapped := game.State{Active: q, Queued: a, Last: true}
			want := -s.Policy().Get(swapped).Payoff
			got := s.Payoff(game.State{Active: a, Queued: q}, 0)
			require.InDelta(t, want, got, 1e-15, "standing payoff at (%d,%d)", a, q)
		}
	}
}

func TestGameSymmetry(t *testing.T) {
	// While not perfectly symmetric due to turn order, mirrored states
	// should have roughly opposite payoffs.
	s := New(15, 3)
	s.Solve()

	payoff1 := s.Policy().Get(game.State{Active: 8, Queued: 6}).Payoff
	payoff2 := s.Policy().Get(game.State{Active: 6, Queued: 8}).Payoff
	require.Less(t, math.Abs(payoff1+payoff2), 0.5,
		"mirrored states should have roughly opposite payoffs")
}

func TestEndGameBehavior(t *testing.T) {
	s := New(30, 6)
	s.Solve()

	for q := 0; q <= 30; q++ {
		action := s.Policy().Get(game.State{Active: 30, Queued: q})
		require.Equal(t, 0, action.N, "at max score against %d, should never roll", q)
	}

	for _, state := range []game.State{
		{Active: 25, Queued: 28}, // Behind but close
		{Active: 28, Queued: 25}, // Ahead but close
		{Active: 29, Queued: 29}, // Tied near max
	} {
		action := s.Policy().Get(state)
		require.LessOrEqual(t, action.N, 20, "end game actions should be reasonable for %+v", state)
		require.GreaterOrEqual(t, action.Payoff, -1.0-1e-9)
		require.LessOrEqual(t, action.Payoff, 1.0+1e-9)
	}
}

func TestSolveIsDeterministicAcrossWorkerCounts(t *testing.T) {
	// The level barriers make the result independent of scheduling.
	sequential := New(12, 3, WithGoroutines(1))
	sequential.Solve()
	parallel := New(12, 3, WithGoroutines(16))
	parallel.Solve()

	for state, want := range sequential.Policy().All() {
		require.Equal(t, want, parallel.Policy().Get(state), "action for %+v", state)
	}
}

func TestPayoffMatchesStoredPolicy(t *testing.T) {
	s := New(10, 2)
	s.Solve()

	for state, action := range s.Policy().All() {
		require.InDelta(t, action.Payoff, s.Payoff(state, action.N), 1e-12,
			"recomputed payoff for %+v", state)
	}
}

func TestSolveMetrics(t *testing.T) {
	s := New(10, 2, WithGoroutines(4), WithMetrics())
	s.Solve()

	m := s.Metrics()
	require.Equal(t, 4, m.Goroutines)
	require.Equal(t, 11, m.MaxDice)
	require.Equal(t, 121, m.TerminalStates)
	require.Equal(t, 121, m.NormalStates)
	require.Greater(t, m.Duration, m.Terminal+m.Normal-m.Duration,
		"total duration covers the phases")
	require.Positive(t, m.Duration)
}

func BenchmarkSolve(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := New(30, 6)
		s.Solve()
	}
}

func BenchmarkSolveSequential(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := New(30, 6, WithGoroutines(1))
		s.Solve()
	}
}
