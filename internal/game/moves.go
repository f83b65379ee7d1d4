// path: internal/game/moves.go
package game

// Movements lists every legal slide from the current configuration. For each
// piece and direction, every distance up to the first blocked cell is its own
// move: a short slide can open a configuration that the longest slide does
// not, and the search needs all of them for its move count to be minimal.
func (b *Board) Movements() []Move {
	occ := b.occupancy()
	moves := make([]Move, 0, len(b.pieces)*2)

	for id, pc := range b.pieces {
		for d := 1; b.laneIsClear(occ, pc, pc.P-d); d++ {
			moves = append(moves, Move{Piece: id, Delta: -d})
		}

		end := pc.End()
		for d := 1; b.laneIsClear(occ, pc, end+d); d++ {
			moves = append(moves, Move{Piece: id, Delta: d})
		}
	}
	return moves
}

// next returns the configuration reached from ps by m without touching the board.
func next(ps Positions, m Move) Positions {
	out := ps.Clone()
	out[m.Piece] += m.Delta
	return out
}

// previous undoes m on ps in place.
func previous(ps Positions, m Move) {
	ps[m.Piece] -= m.Delta
}
