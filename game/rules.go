package game

// Ruleset is the fixed configuration of a game of Greed: the maximum score a
// player may reach without busting and the number of sides on each die. It is
// immutable for the lifetime of a game or a solve run.
type Ruleset struct {
	Max   int // Maximum score allowed
	Sides int // Number of sides on each die
}

// NewRuleset returns the ruleset for the given maximum score and die sides.
func NewRuleset(max, sides int) Ruleset {
	if max < 0 {
		panic("ruleset: max score must be non-negative")
	}
	if sides < 1 {
		panic("ruleset: dice need at least one side")
	}
	return Ruleset{Max: max, Sides: sides}
}

// States returns the total number of distinct game states under this
// ruleset: (max+1)^2 normal states plus (max+1)^2 terminal states.
func (r Ruleset) States() int {
	return 2 * (r.Max + 1) * (r.Max + 1)
}
