// path: internal/game/engine_test.go
package game

import (
	"errors"
	"reflect"
	"testing"
)

func newTestBoard(primary Piece) *Board {
	return NewBoard(4, 4, primary)
}

func primaryAt(p, row int) Piece {
	return Piece{ID: 'A', Orientation: Horizontal, P: p, Row: row, Size: 2}
}

// solvableWithin reports whether some sequence of at most depth moves solves b.
func solvableWithin(b *Board, depth int) bool {
	if b.Solved() {
		return true
	}
	if depth == 0 {
		return false
	}
	for _, m := range b.Movements() {
		b.ApplyMove(m)
		ok := solvableWithin(b, depth-1)
		b.MovePiece(m.Piece, -m.Delta)
		if ok {
			return true
		}
	}
	return false
}

func TestSolveWithOnePiece(t *testing.T) {
	b := newTestBoard(primaryAt(0, 1))

	sol := Solve(b)
	if !sol.Solved {
		t.Fatalf("expected a solution")
	}
	want := []Move{{Piece: 0, Delta: 2}}
	if !reflect.DeepEqual(sol.Moves, want) {
		t.Fatalf("expected %v, got %v", want, sol.Moves)
	}
}

func TestSolveWithTwoPieces(t *testing.T) {
	b := newTestBoard(primaryAt(0, 0))
	b.MustAddPiece(Piece{ID: 'B', Orientation: Vertical, P: 0, Row: 3, Size: 3})

	sol := Solve(b)
	if !sol.Solved {
		t.Fatalf("expected a solution")
	}
	want := []Move{{Piece: 1, Delta: 1}, {Piece: 0, Delta: 2}}
	if !reflect.DeepEqual(sol.Moves, want) {
		t.Fatalf("expected %v, got %v", want, sol.Moves)
	}
}

func TestSolveAlreadySolved(t *testing.T) {
	b := newTestBoard(primaryAt(2, 1))

	sol := Solve(b)
	if !sol.Solved {
		t.Fatalf("expected solved board to report success")
	}
	if len(sol.Moves) != 0 {
		t.Fatalf("expected no moves, got %v", sol.Moves)
	}
	if sol.Explored != 1 {
		t.Fatalf("expected the start to be the only expanded configuration, got %d", sol.Explored)
	}
}

func TestSolveUnsolvable(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Board)
	}{
		{
			name:  "wall in the lane",
			setup: func(b *Board) { b.MustAddWall(3, 1) },
		},
		{
			name: "piece with no room",
			setup: func(b *Board) {
				b.MustAddPiece(Piece{ID: 'B', Orientation: Horizontal, P: 2, Row: 1, Size: 2})
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(primaryAt(0, 1))
			tt.setup(b)

			sol := Solve(b)
			if sol.Solved {
				t.Fatalf("expected no solution, got %v", sol.Moves)
			}
			if len(sol.Moves) != 0 {
				t.Fatalf("expected empty move list, got %v", sol.Moves)
			}
		})
	}
}

func TestSolveRestoresBoard(t *testing.T) {
	b := MustParse(catalog[0].Desc)
	before := b.Positions()

	sol := Solve(b)
	if !sol.Solved {
		t.Fatalf("expected a solution")
	}
	if got := b.Positions(); !reflect.DeepEqual(got, before) {
		t.Fatalf("expected board restored to %v, got %v", before, got)
	}

	b = newTestBoard(primaryAt(0, 1))
	b.MustAddWall(3, 1)
	before = b.Positions()
	Solve(b)
	if got := b.Positions(); !reflect.DeepEqual(got, before) {
		t.Fatalf("expected board restored after exhaustion to %v, got %v", before, got)
	}
}

func TestSolutionReplaysToGoal(t *testing.T) {
	for _, l := range Levels() {
		l := l
		t.Run(l.ID, func(t *testing.T) {
			b := MustParse(l.Desc)
			sol := Solve(b)
			if !sol.Solved {
				return
			}
			for i, m := range sol.Moves {
				if !b.IsLegal(m) {
					t.Fatalf("step %d: %s is not legal", i+1, MoveNotation(b, m))
				}
				b.ApplyMove(m)
				if err := b.Validate(); err != nil {
					t.Fatalf("step %d: %v", i+1, err)
				}
			}
			if !b.Solved() {
				t.Fatalf("expected the replayed solution to solve the board")
			}
		})
	}
}

func TestSolveIsMinimal(t *testing.T) {
	for _, l := range Levels() {
		l := l
		t.Run(l.ID, func(t *testing.T) {
			b := MustParse(l.Desc)
			sol := Solve(b)
			if !sol.Solved || len(sol.Moves) == 0 {
				return
			}
			if solvableWithin(b, len(sol.Moves)-1) {
				t.Fatalf("found a solution shorter than %d moves", len(sol.Moves))
			}
		})
	}
}

func TestSolveMoveCountIsStable(t *testing.T) {
	b := MustParse(catalog[3].Desc)
	first := Solve(b)
	second := Solve(b)
	if first.Solved != second.Solved || len(first.Moves) != len(second.Moves) {
		t.Fatalf("expected identical outcomes, got %v and %v", first, second)
	}

	// Reversing the piece order changes enumeration order but not the count.
	pieces := b.Pieces()
	rev := NewBoard(b.Width(), b.Height(), pieces[b.PrimaryID()])
	for i := len(pieces) - 1; i >= 0; i-- {
		if i == b.PrimaryID() {
			continue
		}
		rev.MustAddPiece(pieces[i])
	}
	for _, w := range b.Walls() {
		rev.MustAddWall(w.X, w.Y)
	}
	third := Solve(rev)
	if third.Solved != first.Solved || len(third.Moves) != len(first.Moves) {
		t.Fatalf("expected %d moves after reordering, got %d", len(first.Moves), len(third.Moves))
	}
}

func TestFrontierCompacts(t *testing.T) {
	var f frontier
	for i := 0; i < 3000; i++ {
		f.push(Positions{i})
	}
	for i := 0; i < 3000; i++ {
		ps, ok := f.pop()
		if !ok {
			t.Fatalf("queue ran dry at %d", i)
		}
		if ps[0] != i {
			t.Fatalf("expected FIFO order, got %d at %d", ps[0], i)
		}
	}
	if _, ok := f.pop(); ok {
		t.Fatalf("expected empty queue")
	}
}

func TestVisitedKeepsFirstMove(t *testing.T) {
	start := Positions{0, 1}
	v := newVisited(start)
	if v.record(start, Move{Piece: 0, Delta: 1}) {
		t.Fatalf("expected start to be known already")
	}
	succ := Positions{1, 1}
	if !v.record(succ, Move{Piece: 0, Delta: 1}) {
		t.Fatalf("expected new configuration to be recorded")
	}
	if v.record(succ, Move{Piece: 1, Delta: -1}) {
		t.Fatalf("expected duplicate to be rejected")
	}
	if got := v.path(succ); !reflect.DeepEqual(got, []Move{{Piece: 0, Delta: 1}}) {
		t.Fatalf("unexpected path %v", got)
	}
}

func TestSolveBoundedStopsAtLimit(t *testing.T) {
	// The primary piece is walled in, so the search has to visit every
	// configuration of the free pieces before giving up.
	b := MustParse(rowsToDesc(
		"AAx...",
		"BB....",
		"CC....",
		"DD....",
		"EE....",
		"FF....",
	))
	full, err := SolveBounded(b, 0)
	if err != nil || full.Solved {
		t.Fatalf("expected an exhausted search without error, got %+v (%v)", full, err)
	}

	limit := full.Discovered / 2
	sol, err := SolveBounded(b, limit)
	if !errors.Is(err, ErrSearchLimit) {
		t.Fatalf("expected ErrSearchLimit, got %v", err)
	}
	if sol.Solved || sol.Moves != nil {
		t.Fatalf("expected no solution, got %+v", sol)
	}
	if sol.Discovered <= limit || sol.Discovered >= full.Discovered {
		t.Fatalf("expected to stop past %d and before %d, got %d", limit, full.Discovered, sol.Discovered)
	}
	if b.Primary().P != 0 || b.Piece(1).P != 0 {
		t.Fatalf("expected board restored after a capped search")
	}
}

func TestSolveBoundedFindsSolutionUnderLimit(t *testing.T) {
	b := newTestBoard(primaryAt(0, 0))
	b.MustAddPiece(Piece{ID: 'B', Orientation: Vertical, P: 0, Row: 3, Size: 3})

	sol, err := SolveBounded(b, 100)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if !sol.Solved || len(sol.Moves) != 2 {
		t.Fatalf("expected a 2-move solution, got %+v", sol)
	}
}
