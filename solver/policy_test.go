package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"greed/game"
)

func TestPolicyGetSet(t *testing.T) {
	p := NewPolicy(10)

	normal := game.State{Active: 3, Queued: 7}
	terminal := game.State{Active: 3, Queued: 7, Last: true}
	p.Set(normal, game.Action{N: 2, Payoff: 0.25})
	p.Set(terminal, game.Action{N: 5, Payoff: -0.5})

	require.Equal(t, game.Action{N: 2, Payoff: 0.25}, p.Get(normal))
	require.Equal(t, game.Action{N: 5, Payoff: -0.5}, p.Get(terminal),
		"normal and terminal entries for the same scores are distinct slots")
	require.Equal(t, game.Action{}, p.Get(game.State{Active: 7, Queued: 3}),
		"untouched slots stay zero")
}

func TestPolicyAllCoversEveryStateOnce(t *testing.T) {
	const max = 6
	p := NewPolicy(max)

	seen := map[game.State]int{}
	for state := range p.All() {
		seen[state]++
	}

	require.Len(t, seen, 2*(max+1)*(max+1), "every state appears")
	for state, count := range seen {
		require.Equal(t, 1, count, "state %+v should appear exactly once", state)
		require.LessOrEqual(t, state.Active, max)
		require.LessOrEqual(t, state.Queued, max)
	}
}

func TestPolicyAllInvertsIndex(t *testing.T) {
	p := NewPolicy(4)

	// Tag every slot with a payoff unique to its state, then check the
	// iterator hands each action back with that same state.
	for a := 0; a <= 4; a++ {
		for q := 0; q <= 4; q++ {
			for _, last := range []bool{false, true} {
				s := game.State{Active: a, Queued: q, Last: last}
				p.Set(s, game.Action{N: a, Payoff: float64(p.index(s))})
			}
		}
	}

	for state, action := range p.All() {
		require.Equal(t, float64(p.index(state)), action.Payoff,
			"iteration should invert the index formula for %+v", state)
	}
}

func TestPolicyAllIsRestartable(t *testing.T) {
	p := NewPolicy(3)

	count := func() int {
		n := 0
		for range p.All() {
			n++
			if n == 5 {
				break // early exit must not poison later iterations
			}
		}
		return n
	}

	require.Equal(t, 5, count())
	total := 0
	for range p.All() {
		total++
	}
	require.Equal(t, 32, total, "a fresh iteration sees the whole table")
}
