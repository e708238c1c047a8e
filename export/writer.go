// Package export emits a solved policy for external analysis: CSV for
// spreadsheets and plotting scripts, a sorted human-readable dump, and SVG
// generation through an external R script. It only iterates the policy
// table; nothing here feeds back into the solver.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strconv"

	"greed/game"
	"greed/solver"
)

var header = []string{"active", "queued", "last", "n", "payoff"}

// Write streams the policy as CSV with columns active,queued,last,n,payoff.
func Write(w io.Writer, policy *solver.Policy) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write policy header: %w", err)
	}
	for state, action := range policy.All() {
		row := []string{
			strconv.Itoa(state.Active),
			strconv.Itoa(state.Queued),
			strconv.FormatBool(state.Last),
			strconv.Itoa(action.N),
			strconv.FormatFloat(action.Payoff, 'g', -1, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write policy row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteFile writes the policy as CSV to the given path.
func WriteFile(path string, policy *solver.Policy) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create policy file: %w", err)
	}
	defer f.Close()

	return Write(f, policy)
}

// Print dumps the policy in human-readable form, terminal states first,
// each block sorted by active then queued score.
func Print(w io.Writer, policy *solver.Policy) {
	type pair struct {
		state  game.State
		action game.Action
	}
	pairs := make([]pair, 0, 2*(policy.Max()+1)*(policy.Max()+1))
	for state, action := range policy.All() {
		pairs = append(pairs, pair{state, action})
	}
	sort.Slice(pairs, func(i, j int) bool {
		a, b := pairs[i].state, pairs[j].state
		if a.Last != b.Last {
			return a.Last
		}
		if a.Active != b.Active {
			return a.Active < b.Active
		}
		return a.Queued < b.Queued
	})

	for i, p := range pairs {
		if i > 0 && pairs[i-1].state.Last && !p.state.Last {
			fmt.Fprintln(w)
		}
		kind := "normal"
		if p.state.Last {
			kind = "terminal"
		}
		fmt.Fprintf(w, "(%d, %d, %s) => (dice: #%d, payoff: %v)\n",
			p.state.Active, p.state.Queued, kind, p.action.N, p.action.Payoff)
	}
}

// Plot writes the policy to a temporary CSV and runs the given R script on
// it to produce SVG visualizations. Requires Rscript on PATH.
func Plot(policy *solver.Policy, script string) error {
	f, err := os.CreateTemp("", "greed-policy-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create temporary policy file: %w", err)
	}
	defer os.Remove(f.Name())

	if err := Write(f, policy); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to flush temporary policy file: %w", err)
	}

	out, err := exec.Command("Rscript", script, f.Name()).CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to run %s: %w\n%s", script, err, out)
	}
	return nil
}
