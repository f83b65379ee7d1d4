// path: internal/game/engine.go
package game

import "fmt"

// Solve runs a breadth-first search over every configuration reachable from
// the board's current one and returns a shortest move sequence that frees
// the primary piece. Each slide costs one move whatever its distance.
//
// The board is stepped through configurations during the search and is
// restored to its starting configuration before Solve returns.
func Solve(b *Board) Solution {
	sol, _ := SolveBounded(b, 0)
	return sol
}

// SolveBounded is Solve with a cap on discovered configurations. Once more
// than limit configurations are discovered the search stops and returns
// ErrSearchLimit with the counters reached so far. A non-positive limit
// means no cap.
func SolveBounded(b *Board, limit int) (Solution, error) {
	start := b.Positions()
	defer b.SetPositions(start)

	seen := newVisited(start)
	var queue frontier
	queue.push(start)

	explored := 0
	for {
		ps, ok := queue.pop()
		if !ok {
			break
		}
		explored++
		b.SetPositions(ps)

		if b.Solved() {
			return Solution{Solved: true, Moves: seen.path(ps), Explored: explored, Discovered: seen.size()}, nil
		}

		for _, m := range b.Movements() {
			succ := next(ps, m)
			if seen.record(succ, m) {
				queue.push(succ)
			}
		}
		if limit > 0 && seen.size() > limit {
			sol := Solution{Solved: false, Explored: explored, Discovered: seen.size()}
			return sol, fmt.Errorf("%w: more than %d configurations", ErrSearchLimit, limit)
		}
	}

	return Solution{Solved: false, Explored: explored, Discovered: seen.size()}, nil
}
