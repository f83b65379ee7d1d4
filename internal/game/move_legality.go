// path: internal/game/move_legality.go
package game

import "rush_hour_poc/internal/shared"

// laneIsClear reports whether the cell at axis coordinate a in the piece's
// lane is inside the grid and unoccupied.
func (b *Board) laneIsClear(occ Occupancy, pc Piece, a int) bool {
	if a < 0 || a >= shared.AxisExtent(pc.Orientation, b.width, b.height) {
		return false
	}
	return !occ.Has(pc.cellAt(a).Index(b.width))
}

// IsLegal reports whether m is one of the moves enumerated for the current
// configuration.
func (b *Board) IsLegal(m Move) bool {
	if m.Piece < 0 || m.Piece >= len(b.pieces) || m.Delta == 0 {
		return false
	}
	occ := b.occupancy()
	pc := b.pieces[m.Piece]
	if m.Delta < 0 {
		for d := 1; d <= -m.Delta; d++ {
			if !b.laneIsClear(occ, pc, pc.P-d) {
				return false
			}
		}
		return true
	}
	end := pc.End()
	for d := 1; d <= m.Delta; d++ {
		if !b.laneIsClear(occ, pc, end+d) {
			return false
		}
	}
	return true
}
