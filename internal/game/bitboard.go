// path: internal/game/bitboard.go
package game

// Occupancy is a set of grid cells addressed by row-major index. Unlike a
// single 64-bit board it grows with the grid.
type Occupancy []uint64

func NewOccupancy(cells int) Occupancy {
	return make(Occupancy, (cells+63)/64)
}

func (o Occupancy) Has(idx int) bool { return o[idx>>6]&(1<<(uint(idx)&63)) != 0 }

func (o Occupancy) Add(idx int) { o[idx>>6] |= 1 << (uint(idx) & 63) }
