package game

// State is a single position in a game of Greed, always seen from the
// perspective of the player about to act. Scores of stored states never
// exceed the ruleset maximum; bust positions are not represented.
type State struct {
	Active int  // Score of the player whose turn it is
	Queued int  // Score of the player whose turn is up next
	Last   bool // Whether the final round is underway
}

// NewState returns the state for the given scores and round type.
func NewState(active, queued int, last bool) State {
	return State{Active: active, Queued: queued, Last: last}
}

// Order is the combined score of both players. Normal states are solved in
// strictly decreasing order of this value: every roll raises it, so all
// states reachable from here have already been computed.
func (s State) Order() int {
	return s.Active + s.Queued
}
