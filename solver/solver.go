// Package solver computes game-theoretically optimal Greed strategies by
// exact backward-induction dynamic programming over the full state space.
// The solve runs in two phases: every final-round state is solved
// independently, then every normal state is solved level by level in
// decreasing order of combined score, reading only already-finalized
// entries. Both phases distribute their states over a worker pool.
package solver

import (
	"runtime"

	"github.com/rs/zerolog/log"

	"greed/game"
	"greed/pmf"
)

// Option configures a Solver.
type Option func(*Solver)

// WithGoroutines sets the number of worker goroutines used within each
// solve phase. Defaults to GOMAXPROCS.
func WithGoroutines(goroutines int) Option {
	return func(s *Solver) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

// WithMetrics records per-phase timings, retrievable via Metrics after a
// solve.
func WithMetrics() Option {
	return func(s *Solver) {
		s.metrics = NewCollector()
	}
}

// Solver owns one solve run: the fixed ruleset, the precomputed dice PMFs,
// and the policy table filled in by the two phases.
type Solver struct {
	rules      game.Ruleset
	policy     *Policy
	pmfs       *pmf.Lookup
	goroutines int
	metrics    Collector
}

// New returns a solver for a game with the given maximum score and die
// sides.
func New(max, sides int, options ...Option) *Solver {
	s := &Solver{
		rules:      game.NewRuleset(max, sides),
		policy:     NewPolicy(max),
		goroutines: runtime.GOMAXPROCS(0),
		metrics:    NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Ruleset returns the game configuration being solved.
func (s *Solver) Ruleset() game.Ruleset {
	return s.rules
}

// Policy returns the policy table. It is only meaningful after Solve and
// must be treated as read-only.
func (s *Solver) Policy() *Policy {
	return s.policy
}

// Metrics returns the record of the most recent solve. Zero unless the
// solver was built with WithMetrics.
func (s *Solver) Metrics() SolveMetric {
	return s.metrics.Complete()
}

// Solve runs the full pipeline: dice PMF precomputation, then the terminal
// phase, then the normal phase. Solving twice recomputes the policy from
// scratch.
func (s *Solver) Solve() {
	s.metrics.Start(s.goroutines)

	s.pmfs = pmf.Precompute(s.rules.Max, s.rules.Sides)
	s.metrics.PrecomputeDone(s.pmfs.MaxDice())
	log.Info().Msgf("precomputed pmfs for up to %d dice", s.pmfs.MaxDice())

	states := (s.rules.Max + 1) * (s.rules.Max + 1)

	s.solveTerminalStates()
	s.metrics.TerminalDone(states)
	log.Info().Msgf("solved %d terminal states", states)

	s.solveNormalStates()
	s.metrics.NormalDone(states)
	log.Info().Msgf("solved %d normal states", states)
}

// Payoff recomputes the expected payoff of rolling n dice from the given
// state without touching the stored policy, for hypothetical-action queries
// by benchmarking and analysis tools. Normal-state queries read downstream
// policy entries, so they require a completed Solve.
func (s *Solver) Payoff(state game.State, n int) float64 {
	if s.pmfs == nil {
		s.pmfs = pmf.Precompute(s.rules.Max, s.rules.Sides)
	}
	if state.Last {
		return s.terminalPayoff(state, n)
	}
	return s.normalPayoff(state, n)
}
