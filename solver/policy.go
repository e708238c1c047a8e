package solver

import (
	"iter"

	"greed/game"
)

// Policy is the dense table mapping every Greed state to its best known
// action. States live in a single flat array indexed by
//
//	active + (max+1)*queued + (max+1)^2*last
//
// which keeps related states adjacent for cache-friendly access. The table
// is created zeroed, written exactly once per slot during solving, and
// treated as read-only by every consumer afterwards.
type Policy struct {
	actions []game.Action
	max     int
}

// NewPolicy allocates an empty policy table for the given maximum score.
func NewPolicy(max int) *Policy {
	size := 2 * (max + 1) * (max + 1)
	return &Policy{
		actions: make([]game.Action, size),
		max:     max,
	}
}

// Max returns the maximum score the table was sized for.
func (p *Policy) Max() int {
	return p.max
}

func (p *Policy) index(s game.State) int {
	stride := p.max + 1
	i := s.Active + stride*s.Queued
	if s.Last {
		i += stride * stride
	}
	return i
}

// Get returns the stored action for a state.
func (p *Policy) Get(s game.State) game.Action {
	return p.actions[p.index(s)]
}

// Set stores the action for a state.
func (p *Policy) Set(s game.State, a game.Action) {
	p.actions[p.index(s)] = a
}

// All yields every state-action pair by inverting the index formula. Pairs
// come out in storage order, not score order; consumers that need sorted
// output sort the pairs themselves. The sequence is restartable.
func (p *Policy) All() iter.Seq2[game.State, game.Action] {
	return func(yield func(game.State, game.Action) bool) {
		stride := p.max + 1
		for i, action := range p.actions {
			place, last := i, false
			if place >= stride*stride {
				place -= stride * stride
				last = true
			}
			state := game.State{
				Active: place % stride,
				Queued: place / stride,
				Last:   last,
			}
			if !yield(state, action) {
				return
			}
		}
	}
}
