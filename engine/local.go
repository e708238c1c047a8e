// Package engine runs an interactive two-player game of Greed on a
// terminal. It is a thin collaborator around the game rules and consumes
// nothing from the solver.
package engine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/rand"

	"greed/game"
)

const width = 41 // based on banner width

const banner = `
 ██████╗ ██████╗ ███████╗███████╗██████╗
██╔════╝ ██╔══██╗██╔════╝██╔════╝██╔══██╗
██║  ███╗██████╔╝█████╗  █████╗  ██║  ██║
██║   ██║██╔══██╗██╔══╝  ██╔══╝  ██║  ██║
╚██████╔╝██║  ██║███████╗███████╗██████╔╝
 ╚═════╝ ╚═╝  ╚═╝╚══════╝╚══════╝╚═════╝`

// Greed is an interactive game between two human players. Each turn the
// active player types the number of dice to roll; rolling zero stands and
// triggers the final round, exceeding the maximum score busts.
type Greed struct {
	rng     *rand.Rand
	rules   game.Ruleset
	players [2]string
	state   game.State
	turn    int
	in      *bufio.Scanner
	out     io.Writer
}

// Local creates a game between two named players reading dice counts from
// in and reporting on out.
func Local(max, sides int, player1, player2 string, in io.Reader, out io.Writer) *Greed {
	return &Greed{
		rng:     rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		rules:   game.NewRuleset(max, sides),
		players: [2]string{player1, player2},
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run executes the game loop until the game ends.
func (g *Greed) Run() {
	g.printBanner()
	for {
		fmt.Fprintln(g.out)
		g.printState()
		if g.roll(g.readDice()) {
			return
		}
	}
}

// roll rolls n dice for the active player and advances the turn, reporting
// whether the game is over. Rolling after the final round started, or
// busting, ends the game.
func (g *Greed) roll(n int) bool {
	sum := 0
	for i := 0; i < n; i++ {
		sum += g.rng.Intn(g.rules.Sides) + 1
	}
	g.turn++

	if g.state.Last {
		g.state = game.State{Active: g.state.Queued, Queued: g.state.Active + sum, Last: true}
		g.printResults()
		return true
	}

	g.state = game.State{Active: g.state.Queued, Queued: g.state.Active + sum, Last: n == 0}
	if g.state.Queued > g.rules.Max {
		g.printResults()
		return true
	}
	return false
}

func (g *Greed) readDice() int {
	for {
		fmt.Fprintf(g.out, "%s rolls: ", g.activePlayer())
		if !g.in.Scan() {
			return 0 // input closed: stand
		}
		n, err := strconv.Atoi(strings.TrimSpace(g.in.Text()))
		if err != nil || n < 0 {
			fmt.Fprintln(g.out, "enter a non-negative number of dice")
			continue
		}
		return n
	}
}

func (g *Greed) printBanner() {
	ruleset := fmt.Sprintf("max score: %d, sides: %d", g.rules.Max, g.rules.Sides)
	padding := (width - len(ruleset)) / 2
	if padding < 0 {
		padding = 0
	}
	fmt.Fprintln(g.out, banner)
	fmt.Fprintf(g.out, "%s%s\n", strings.Repeat(" ", padding), ruleset)
}

func (g *Greed) printState() {
	fmt.Fprintf(g.out, "round %d: %s: %d, %s: %d, last: %v\n",
		g.turn, g.activePlayer(), g.state.Active, g.queuedPlayer(), g.state.Queued, g.state.Last)
}

func (g *Greed) printResults() {
	rule := strings.Repeat("=", width)
	fmt.Fprintln(g.out)
	fmt.Fprintln(g.out, rule)
	fmt.Fprintf(g.out, "%sfinal results\n", strings.Repeat(" ", (width-13)/2))
	fmt.Fprintln(g.out, rule)

	score1, score2 := g.playerScores()
	fmt.Fprintf(g.out, "%s: %d, %s: %d\n", g.players[0], score1, g.players[1], score2)

	// The player who just rolled holds the queued seat.
	if g.state.Queued > g.rules.Max {
		fmt.Fprintf(g.out, "%s busts! %s wins!\n", g.queuedPlayer(), g.activePlayer())
		return
	}
	switch {
	case score1 > score2:
		fmt.Fprintf(g.out, "%s wins!\n", g.players[0])
	case score2 > score1:
		fmt.Fprintf(g.out, "%s wins!\n", g.players[1])
	default:
		fmt.Fprintf(g.out, "%s and %s tie!\n", g.players[0], g.players[1])
	}
}

func (g *Greed) activePlayer() string {
	return g.players[g.turn%2]
}

func (g *Greed) queuedPlayer() string {
	return g.players[(g.turn+1)%2]
}

func (g *Greed) playerScores() (int, int) {
	if g.turn%2 == 0 {
		return g.state.Active, g.state.Queued
	}
	return g.state.Queued, g.state.Active
}
