package solver

import "greed/game"

// terminalSearchMargin stops the upward dice search once the payoff has
// fallen this far below the best value seen. The break relies on terminal
// payoff being unimodal in the dice count (it rises to a single peak and
// falls), which is observed, not proven, for all rulesets.
const terminalSearchMargin = 0.01

// solveTerminalStates computes the optimal action for every final-round
// state. Terminal states have no ordering constraints between them, so the
// whole table is solved in one parallel pass.
func (s *Solver) solveTerminalStates() {
	stride := s.rules.Max + 1
	parallelFor(s.goroutines, stride*stride, func(i int) {
		state := game.State{Active: i % stride, Queued: i / stride, Last: true}
		s.policy.Set(state, s.findTerminalAction(state))
	})
}

// findTerminalAction picks the dice count maximizing the win chance in the
// final round. Obvious cases resolve without search; otherwise dice counts
// are scanned upward from the smallest count that can still catch up, with
// early termination once the payoff curve turns down.
func (s *Solver) findTerminalAction(state game.State) game.Action {
	max, sides := s.rules.Max, s.rules.Sides

	if state.Active > state.Queued {
		// Already ahead: standing wins outright.
		return game.Action{N: 0, Payoff: 1}
	}
	if sides*(state.Queued-state.Active+1) <= max-state.Active {
		// Every outcome of q-a+1 dice passes the opponent and stays under
		// the maximum: a guaranteed win regardless of the roll.
		return game.Action{N: state.Queued - state.Active + 1, Payoff: 1}
	}

	bound := 2*max/(sides+1) + 1
	if bound < max+1 {
		bound = max + 1
	}

	best := game.Action{N: 0, Payoff: -1}
	for n := (state.Queued - state.Active) / sides; n < bound; n++ {
		payoff := s.terminalPayoff(state, n)
		if best.Payoff-payoff >= terminalSearchMargin {
			break
		}
		if payoff > best.Payoff {
			best = game.Action{N: n, Payoff: payoff}
		}
	}
	return best
}

// terminalPayoff is the expected payoff of rolling n dice in the final
// round: every total that overtakes the opponent without busting wins, every
// total that falls short or busts loses, and matching the opponent draws.
func (s *Solver) terminalPayoff(state game.State, n int) float64 {
	if n == 0 {
		switch {
		case state.Active > state.Queued:
			return 1
		case state.Active < state.Queued:
			return -1
		}
		return 0
	}

	max, sides := s.rules.Max, s.rules.Sides
	payoff := 0.0
	for total := n; total <= n*sides; total++ {
		probability := s.pmfs.Prob(n, total)
		score := state.Active + total
		switch {
		case score > state.Queued && score <= max:
			payoff += probability
		case score != state.Queued:
			payoff -= probability // behind or bust
		}
	}
	return payoff
}
