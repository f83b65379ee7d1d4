// path: internal/game/levels.go
package game

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"rush_hour_poc/internal/parallel"
)

// Level is a named puzzle from the built-in catalog.
type Level struct {
	ID   string `json:"id"`
	Desc string `json:"desc"`
}

// LevelResult is a catalog level together with its search outcome.
type LevelResult struct {
	Level
	Solvable     bool   `json:"solvable"`
	MinimalMoves int    `json:"minimalMoves"`
	Notation     string `json:"notation,omitempty"`
	Explored     int    `json:"explored"`
	Err          error  `json:"-"`
}

func rowsToDesc(rows ...string) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(row)
	}
	return b.String()
}

var catalog = []Level{
	{ID: "warmup-01", Desc: rowsToDesc(
		"..B...",
		"..B...",
		"AAB..C",
		".....C",
		"......",
		"......",
	)},
	{ID: "warmup-02", Desc: rowsToDesc(
		"..B...",
		"..B..C",
		"AAB..C",
		"......",
		"......",
		"......",
	)},
	{ID: "warmup-03", Desc: rowsToDesc(
		"..B...",
		"..B..C",
		"AAB..C",
		"..D...",
		"..D...",
		"..D...",
	)},
	{ID: "warmup-04", Desc: rowsToDesc(
		"..B...",
		"..B..C",
		"AAB..C",
		".DD...",
		"......",
		"......",
	)},
	{ID: "warmup-05", Desc: rowsToDesc(
		"..B...",
		"..B..C",
		"AAB..C",
		"DD....",
		"......",
		"......",
	)},
	{ID: "warmup-06", Desc: rowsToDesc(
		"..B...",
		"..B..C",
		"AAB..C",
		"DD.E..",
		"...E..",
		"...E..",
	)},
	{ID: "walled-01", Desc: rowsToDesc(
		".....x",
		"..B...",
		"AAB...",
		"..B...",
		"x.....",
		"......",
	)},
	{ID: "blocked-01", Desc: rowsToDesc(
		"....",
		"AA.x",
		"....",
		"....",
	)},
}

// Levels returns the built-in catalog in its fixed order.
func Levels() []Level {
	out := make([]Level, len(catalog))
	copy(out, catalog)
	return out
}

func LevelByID(id string) (Level, error) {
	for _, l := range catalog {
		if l.ID == id {
			return l, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %q", ErrUnknownLevel, id)
}

// SolveLevel parses and solves one level.
func SolveLevel(l Level) LevelResult {
	res := LevelResult{Level: l}
	b, err := Parse(l.Desc)
	if err != nil {
		res.Err = fmt.Errorf("level %s: %w", l.ID, err)
		return res
	}
	sol := Solve(b)
	res.Solvable = sol.Solved
	res.MinimalMoves = len(sol.Moves)
	res.Explored = sol.Explored
	if sol.Solved {
		res.Notation = SolutionNotation(b, sol.Moves)
	}
	return res
}

// SolveCatalog solves levels on a pool of workers. Every level gets its own
// board, so the searches share nothing. Results keep the order of levels.
func SolveCatalog(ctx context.Context, levels []Level, workers int) ([]LevelResult, error) {
	pool := parallel.NewWorkerPool(workers)
	defer pool.Shutdown()

	results := make([]LevelResult, len(levels))
	var wg sync.WaitGroup
	for i, l := range levels {
		i, l := i, l
		wg.Add(1)
		if err := pool.Submit(ctx, func() {
			defer wg.Done()
			results[i] = SolveLevel(l)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}
	wg.Wait()
	return results, nil
}
