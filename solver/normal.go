package solver

import (
	"math"

	"greed/game"
)

// solveNormalStates computes the optimal action for every non-final state by
// backward induction. States are processed in strictly decreasing order of
// combined score: every roll raises that sum, so all states a roll can reach
// are already solved, and the n=0 transition reads terminal states solved
// earlier. Within one order level states are independent and solved in
// parallel; the join between levels is the required barrier.
func (s *Solver) solveNormalStates() {
	max := s.rules.Max
	for order := 2 * max; order >= 0; order-- {
		places := order
		if rest := 2*max - order; rest < places {
			places = rest
		}
		parallelFor(s.goroutines, places+1, func(place int) {
			var active, queued int
			if order < max {
				active, queued = order-place, place
			} else {
				active, queued = max-place, order-max+place
			}
			state := game.State{Active: active, Queued: queued}
			s.policy.Set(state, s.findNormalAction(state))
		})
	}
}

// findNormalAction scans every dice count whose mean sum still fits the
// remaining headroom: the mean of n dice is n(sides+1)/2, so counts beyond
// 2(max-active+sides)/(sides+1) are never optimal. Ties break toward the
// smaller count: the scan ascends and only a strict improvement replaces
// the incumbent, keeping the published strategy deterministic.
func (s *Solver) findNormalAction(state game.State) game.Action {
	bound := 2 * (s.rules.Max - state.Active + s.rules.Sides) / (s.rules.Sides + 1)

	best := game.Action{N: 0, Payoff: math.Inf(-1)}
	for n := 0; n <= bound; n++ {
		if payoff := s.normalPayoff(state, n); payoff > best.Payoff {
			best = game.Action{N: n, Payoff: payoff}
		}
	}
	return best
}

// normalPayoff is the expected payoff of rolling n dice in a normal round.
// Rolling zero dice stands, handing the opponent the final round; other
// counts weight the payoff of each reachable state by its probability. All
// downstream payoffs are stored from the mover's perspective, so they are
// negated when the turn passes.
func (s *Solver) normalPayoff(state game.State, n int) float64 {
	if n == 0 {
		last := game.State{Active: state.Queued, Queued: state.Active, Last: true}
		return -s.policy.Get(last).Payoff
	}

	max, sides := s.rules.Max, s.rules.Sides
	payoff := 0.0
	for total := n; total <= n*sides; total++ {
		probability := s.pmfs.Prob(n, total)
		if state.Active+total <= max {
			next := game.State{Active: state.Queued, Queued: state.Active + total}
			payoff -= probability * s.policy.Get(next).Payoff
		} else {
			payoff -= probability // bust
		}
	}
	return payoff
}
