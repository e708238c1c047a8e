// Package experiments measures how solve time scales with the number of
// worker goroutines and records the results as CSV for offline analysis.
package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"greed/experiments/metrics"
	"greed/solver"
)

// NumSolves is the number of measured runs per configuration.
const NumSolves = 5

var parallelConfigs = []metrics.SolverConfig{
	{ID: 1, Goroutines: 1},
	{ID: 2, Goroutines: 2},
	{ID: 3, Goroutines: 4},
	{ID: 4, Goroutines: 8},
	{ID: 5, Goroutines: 16},
	{ID: 6, Goroutines: 32},
}

// RunSpeedup solves the same ruleset repeatedly under increasing worker
// counts and stores the per-phase timings.
func RunSpeedup(max, sides int) {
	count := 0
	records := []metrics.SolveRecord{}

	log.Info().Msgf("starting speedup experiment for max=%d sides=%d...", max, sides)

	for ci, config := range parallelConfigs {
		log.Info().Msgf("starting config %d of %d with %d goroutines...",
			ci+1, len(parallelConfigs), config.Goroutines)

		for i := 0; i < NumSolves; i++ {
			s := solver.New(max, sides,
				solver.WithGoroutines(config.Goroutines), solver.WithMetrics())
			s.Solve()

			count++
			records = append(records, metrics.SolveRecord{
				ID:          count,
				Config:      config.ID,
				Max:         max,
				Sides:       sides,
				SolveMetric: s.Metrics(),
			})

			log.Info().Msgf("completed config %d of %d solve %d of %d in %s",
				ci+1, len(parallelConfigs), i+1, NumSolves, records[count-1].Duration)
		}
	}

	log.Info().Msg("completed speedup experiment")

	writer, err := metrics.NewWriter("speedup")
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteSolverConfigs(parallelConfigs)
	if err != nil {
		panic(fmt.Sprintf("failed to store solver configs: %v", err))
	}
	log.Info().Msg("stored solver configs")

	err = writer.WriteSolveRecords(records)
	if err != nil {
		panic(fmt.Sprintf("failed to store solve records: %v", err))
	}
	log.Info().Msg("stored solve records")
}
