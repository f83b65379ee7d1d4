// path: cmd/rush/main.go
// Solves one puzzle and prints the minimal move sequence.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"rush_hour_poc/internal/game"
)

var log = logrus.New()

func main() {
	// Flags (env fallbacks).
	puzzle := flag.String("puzzle", getenv("RUSH_PUZZLE", ""), "puzzle string, row by row ('.'/'o' empty, 'x' wall, A-Z pieces)")
	level := flag.String("level", getenv("RUSH_LEVEL", ""), "id of a built-in level, used when -puzzle is empty")
	verbose := flag.Bool("verbose", getenb("RUSH_VERBOSE", false), "print the board before solving and after every step")
	flag.Parse()

	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(os.Stdout, *puzzle, *level, *verbose); err != nil {
		log.WithError(err).Error("rush failed")
		os.Exit(1)
	}
}

func run(out io.Writer, puzzle, level string, verbose bool) error {
	desc := strings.TrimSpace(puzzle)
	if desc == "" {
		if level == "" {
			return errors.New("one of -puzzle or -level is required")
		}
		l, err := game.LevelByID(level)
		if err != nil {
			return err
		}
		desc = l.Desc
	}

	b, err := game.Parse(desc)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintln(out, "Puzzle:")
		if err := game.Render(out, b); err != nil {
			return err
		}
	}

	sol := game.Solve(b)
	log.WithFields(logrus.Fields{
		"solved":     sol.Solved,
		"moves":      len(sol.Moves),
		"explored":   sol.Explored,
		"discovered": sol.Discovered,
	}).Debug("search finished")

	fmt.Fprintln(out, game.FormatSolution(b, sol))
	if !sol.Solved || !verbose {
		return nil
	}

	frames, err := game.Replay(b, sol.Moves)
	if err != nil {
		return err
	}
	for _, f := range frames[1:] {
		fmt.Fprintf(out, "Step %d: %s\n", f.Step, f.Notation)
		fmt.Fprint(out, f.Board)
	}
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}
