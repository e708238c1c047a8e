package solver

import "time"

// SolveMetric captures how a single solve run went: worker count, table
// sizes, and per-phase durations.
type SolveMetric struct {
	Goroutines     int
	MaxDice        int
	TerminalStates int
	NormalStates   int
	Precompute     time.Duration
	Terminal       time.Duration
	Normal         time.Duration
	Duration       time.Duration
}

// Collector observes the phases of a solve. The default collector discards
// everything; WithMetrics installs a recording one.
type Collector interface {
	Start(goroutines int)
	PrecomputeDone(maxDice int)
	TerminalDone(states int)
	NormalDone(states int)
	Complete() SolveMetric
}

type collector struct {
	metric    SolveMetric
	startTime time.Time
	lastMark  time.Time
}

// NewCollector returns a collector that records phase durations.
func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(goroutines int) {
	c.metric = SolveMetric{Goroutines: goroutines}
	c.startTime = time.Now()
	c.lastMark = c.startTime
}

func (c *collector) PrecomputeDone(maxDice int) {
	c.metric.MaxDice = maxDice
	c.metric.Precompute = c.mark()
}

func (c *collector) TerminalDone(states int) {
	c.metric.TerminalStates = states
	c.metric.Terminal = c.mark()
}

func (c *collector) NormalDone(states int) {
	c.metric.NormalStates = states
	c.metric.Normal = c.mark()
}

func (c *collector) Complete() SolveMetric {
	c.metric.Duration = time.Since(c.startTime)
	return c.metric
}

func (c *collector) mark() time.Duration {
	now := time.Now()
	elapsed := now.Sub(c.lastMark)
	c.lastMark = now
	return elapsed
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that discards all observations.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (dummyCollector) Start(goroutines int)    {}
func (dummyCollector) PrecomputeDone(dice int) {}
func (dummyCollector) TerminalDone(states int) {}
func (dummyCollector) NormalDone(states int)   {}
func (dummyCollector) Complete() SolveMetric   { return SolveMetric{} }
