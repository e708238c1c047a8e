package game

// Action is a number of dice to roll together with the expected payoff of
// rolling them: +1 is a certain win for the player to act, -1 a certain
// loss, 0 an expected draw.
type Action struct {
	N      int     // Dice to roll; 0 means stand
	Payoff float64 // Expected value in [-1, 1] under optimal play
}

// NewAction returns the action rolling n dice with the given payoff.
func NewAction(n int, payoff float64) Action {
	return Action{N: n, Payoff: payoff}
}
