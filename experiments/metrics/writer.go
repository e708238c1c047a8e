package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"greed/solver"
)

// SolverConfig identifies one solver configuration under study.
type SolverConfig struct {
	ID         int
	Goroutines int
}

// SolveRecord is one measured solve run.
type SolveRecord struct {
	ID     int
	Config int // SolverConfig.ID
	Max    int
	Sides  int
	solver.SolveMetric
}

// Writer stores experiment records as CSV files under a timestamped
// directory.
type Writer struct {
	baseDir string
}

// NewWriter creates the output directory for one experiment run.
func NewWriter(name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// WriteSolverConfigs records the configurations under study.
func (w *Writer) WriteSolverConfigs(configs []SolverConfig) error {
	path := filepath.Join(w.baseDir, "solver_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create solver configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "goroutines"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write solver configs header: %w", err)
	}

	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Goroutines),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write solver config row: %w", err)
		}
	}

	return nil
}

// WriteSolveRecords records every measured solve run.
func (w *Writer) WriteSolveRecords(records []SolveRecord) error {
	path := filepath.Join(w.baseDir, "solve_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create solve records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "config", "max", "sides", "max_dice",
		"precompute", "terminal", "normal", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write solve records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Config),
			strconv.Itoa(record.Max),
			strconv.Itoa(record.Sides),
			strconv.Itoa(record.MaxDice),
			record.Precompute.String(),
			record.Terminal.String(),
			record.Normal.String(),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write solve record row: %w", err)
		}
	}

	return nil
}
