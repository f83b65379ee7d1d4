// path: internal/game/piece_ops.go
package game

import "rush_hour_poc/internal/shared"

func (p Piece) IsHorizontal() bool { return p.Orientation == Horizontal }

// End is the last coordinate the piece covers on its axis.
func (p Piece) End() int { return p.P + p.Size - 1 }

// Contains reports whether the piece covers cell (x, y).
func (p Piece) Contains(x, y int) bool {
	if p.IsHorizontal() {
		return y == p.Row && p.P <= x && x < p.P+p.Size
	}
	return x == p.Row && p.P <= y && y < p.P+p.Size
}

func (p Piece) Cells() []Cell {
	return shared.Line(p.Orientation, p.P, p.Row, p.Size)
}

// cellAt maps a coordinate on the piece's axis to a grid cell in its lane.
func (p Piece) cellAt(axis int) Cell {
	return shared.AxisCell(p.Orientation, axis, p.Row)
}
