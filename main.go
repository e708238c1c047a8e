package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"greed/engine"
	"greed/experiments"
	"greed/export"
	"greed/solver"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "solve":
		runSolve(os.Args[2:])
	case "play":
		runPlay(os.Args[2:])
	case "experiment":
		runExperiment(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: greed <solve|play|experiment> [flags]")
	fmt.Fprintln(os.Stderr, "  solve       compute the optimal policy and export it")
	fmt.Fprintln(os.Stderr, "  play        start an interactive two-player game")
	fmt.Fprintln(os.Stderr, "  experiment  measure solve speedup across worker counts")
}

func runSolve(args []string) {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	max := fs.Int("max", 100, "maximum score")
	sides := fs.Int("sides", 6, "number of sides on each die")
	goroutines := fs.Int("goroutines", 0, "worker goroutines (0 = GOMAXPROCS)")
	format := fs.String("format", "stdout", "output format: stdout, csv or svg")
	out := fs.String("out", "", "csv output path (default greed_<max>_<sides>.csv)")
	script := fs.String("script", "visualize/optimal_policies.R", "R script for svg output")
	fs.Parse(args)

	options := []solver.Option{}
	if *goroutines > 0 {
		options = append(options, solver.WithGoroutines(*goroutines))
	}
	s := solver.New(*max, *sides, options...)
	s.Solve()

	switch *format {
	case "stdout":
		export.Print(os.Stdout, s.Policy())
	case "csv":
		path := *out
		if path == "" {
			path = fmt.Sprintf("greed_%d_%d.csv", *max, *sides)
		}
		if err := export.WriteFile(path, s.Policy()); err != nil {
			log.Fatal().Err(err).Msg("failed to export policy")
		}
		log.Info().Msgf("policy exported to %s", path)
	case "svg":
		if err := export.Plot(s.Policy(), *script); err != nil {
			log.Fatal().Err(err).Msg("failed to generate svg; make sure Rscript is on PATH")
		}
		log.Info().Msg("svg visualizations generated")
	default:
		log.Fatal().Msgf("unknown format %q", *format)
	}
}

func runPlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	max := fs.Int("max", 100, "maximum score")
	sides := fs.Int("sides", 6, "number of sides on each die")
	fs.Parse(args)

	player1, player2 := "Alice", "Blair"
	if fs.NArg() > 0 {
		player1 = fs.Arg(0)
	}
	if fs.NArg() > 1 {
		player2 = fs.Arg(1)
	}

	engine.Local(*max, *sides, player1, player2, os.Stdin, os.Stdout).Run()
}

func runExperiment(args []string) {
	fs := flag.NewFlagSet("experiment", flag.ExitOnError)
	max := fs.Int("max", 100, "maximum score")
	sides := fs.Int("sides", 6, "number of sides on each die")
	fs.Parse(args)

	experiments.RunSpeedup(*max, *sides)
}
