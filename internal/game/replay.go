// path: internal/game/replay.go
package game

import "fmt"

// Frame is the board after one step of a replay. Step 0 is the start and
// carries no move.
type Frame struct {
	Step     int      `json:"step"`
	Move     *Move    `json:"move,omitempty"`
	Notation string   `json:"notation,omitempty"`
	Board    string   `json:"board"`
	Rows     []string `json:"rows"`
	Solved   bool     `json:"solved"`
}

func frameOf(b *Board, step int, m *Move) Frame {
	grid := b.Grid()
	rows := make([]string, len(grid))
	for i, row := range grid {
		rows[i] = string(row)
	}
	f := Frame{Step: step, Move: m, Board: b.String(), Rows: rows, Solved: b.Solved()}
	if m != nil {
		f.Notation = MoveNotation(b, *m)
	}
	return f
}

// Replay plays moves on a copy of b and returns one frame per step, the
// starting position included. Every move is checked against the
// configuration it is played from; b itself is left untouched.
func Replay(b *Board, moves []Move) ([]Frame, error) {
	cur := b.Clone()
	frames := make([]Frame, 0, len(moves)+1)
	frames = append(frames, frameOf(cur, 0, nil))
	for i, m := range moves {
		if m.Piece < 0 || m.Piece >= cur.NumPieces() {
			return frames, fmt.Errorf("%w: step %d names piece %d", ErrIllegalMove, i+1, m.Piece)
		}
		if !cur.IsLegal(m) {
			return frames, fmt.Errorf("%w: step %d (%s)", ErrIllegalMove, i+1, MoveNotation(cur, m))
		}
		cur.ApplyMove(m)
		m := m
		frames = append(frames, frameOf(cur, i+1, &m))
	}
	return frames, nil
}
