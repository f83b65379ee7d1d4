// path: internal/game/state.go
package game

import (
	"fmt"
)

// Board owns the pieces and walls of a square puzzle grid. The index of a
// piece in the board is its identifier for moves and configurations.
type Board struct {
	width   int
	height  int
	pieces  []Piece
	walls   map[Cell]struct{}
	wallSeq []Cell
	primary int
}

// NewBoard builds a board holding only the primary piece. Further pieces and
// walls are added with AddPiece and AddWall.
func NewBoard(width, height int, primary Piece) *Board {
	return &Board{
		width:   width,
		height:  height,
		pieces:  []Piece{primary},
		walls:   make(map[Cell]struct{}),
		primary: 0,
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) NumPieces() int { return len(b.pieces) }

func (b *Board) Piece(id int) Piece { return b.pieces[id] }

func (b *Board) Primary() Piece { return b.pieces[b.primary] }

func (b *Board) PrimaryID() int { return b.primary }

// Pieces returns a copy of the pieces in identifier order.
func (b *Board) Pieces() []Piece {
	out := make([]Piece, len(b.pieces))
	copy(out, b.pieces)
	return out
}

// Walls returns the wall cells in insertion order.
func (b *Board) Walls() []Cell {
	out := make([]Cell, len(b.wallSeq))
	copy(out, b.wallSeq)
	return out
}

func (b *Board) IsWall(x, y int) bool {
	_, ok := b.walls[Cell{X: x, Y: y}]
	return ok
}

// Solved reports whether the primary piece touches the right edge.
func (b *Board) Solved() bool {
	p := b.Primary()
	return p.P+p.Size == b.width
}

// MovePiece adds delta to a piece's anchor. Moves are not re-validated; the
// caller passes only moves enumerated for the current configuration.
func (b *Board) MovePiece(id, delta int) {
	b.pieces[id].P += delta
}

func (b *Board) ApplyMove(m Move) { b.MovePiece(m.Piece, m.Delta) }

func (b *Board) Positions() Positions {
	out := make(Positions, len(b.pieces))
	for i := range b.pieces {
		out[i] = b.pieces[i].P
	}
	return out
}

func (b *Board) SetPositions(ps Positions) {
	for i, p := range ps {
		b.pieces[i].P = p
	}
}

// IsFree reports whether no piece and no wall covers (x, y).
func (b *Board) IsFree(x, y int) bool {
	for _, pc := range b.pieces {
		if pc.Contains(x, y) {
			return false
		}
	}
	return !b.IsWall(x, y)
}

func (b *Board) AddWall(x, y int) error {
	c := Cell{X: x, Y: y}
	if !c.InBounds(b.width, b.height) {
		return fmt.Errorf("%w: wall at %s", ErrOutOfBounds, c)
	}
	if !b.IsFree(x, y) {
		return fmt.Errorf("%w: the cell %s", ErrCellOccupied, c)
	}
	b.walls[c] = struct{}{}
	b.wallSeq = append(b.wallSeq, c)
	return nil
}

// AddPiece appends a piece; its identifier is the previous piece count.
func (b *Board) AddPiece(pc Piece) error {
	if pc.Size < 2 {
		return fmt.Errorf("%w: %c has size %d", ErrInvalidPiece, pc.ID, pc.Size)
	}
	for _, c := range pc.Cells() {
		if !c.InBounds(b.width, b.height) {
			return fmt.Errorf("%w: %c covers %s", ErrOutOfBounds, pc.ID, c)
		}
		if !b.IsFree(c.X, c.Y) {
			return fmt.Errorf("%w: the cell %s", ErrCellOccupied, c)
		}
	}
	b.pieces = append(b.pieces, pc)
	return nil
}

// MustAddWall is AddWall for trusted fixtures; it panics on error.
func (b *Board) MustAddWall(x, y int) {
	if err := b.AddWall(x, y); err != nil {
		panic(err)
	}
}

// MustAddPiece is AddPiece for trusted fixtures; it panics on error.
func (b *Board) MustAddPiece(pc Piece) {
	if err := b.AddPiece(pc); err != nil {
		panic(err)
	}
}

// Clone returns an independent copy sharing no mutable state.
func (b *Board) Clone() *Board {
	out := &Board{
		width:   b.width,
		height:  b.height,
		pieces:  make([]Piece, len(b.pieces)),
		walls:   make(map[Cell]struct{}, len(b.walls)),
		wallSeq: make([]Cell, len(b.wallSeq)),
		primary: b.primary,
	}
	copy(out.pieces, b.pieces)
	copy(out.wallSeq, b.wallSeq)
	for c := range b.walls {
		out.walls[c] = struct{}{}
	}
	return out
}

// occupancy marks every cell covered by a piece or a wall.
func (b *Board) occupancy() Occupancy {
	occ := NewOccupancy(b.width * b.height)
	for _, pc := range b.pieces {
		for i := 0; i < pc.Size; i++ {
			occ.Add(pc.cellAt(pc.P + i).Index(b.width))
		}
	}
	for _, c := range b.wallSeq {
		occ.Add(c.Index(b.width))
	}
	return occ
}

// Validate checks the board invariants: every piece and wall inside the
// grid and no cell covered twice.
func (b *Board) Validate() error {
	occ := NewOccupancy(b.width * b.height)
	claim := func(c Cell, what string) error {
		if !c.InBounds(b.width, b.height) {
			return fmt.Errorf("%w: %s at %s", ErrOutOfBounds, what, c)
		}
		idx := c.Index(b.width)
		if occ.Has(idx) {
			return fmt.Errorf("%w: %s at %s", ErrCellOccupied, what, c)
		}
		occ.Add(idx)
		return nil
	}
	for _, pc := range b.pieces {
		for _, c := range pc.Cells() {
			if err := claim(c, fmt.Sprintf("piece %c", pc.ID)); err != nil {
				return err
			}
		}
	}
	for _, c := range b.wallSeq {
		if err := claim(c, "wall"); err != nil {
			return err
		}
	}
	return nil
}
