// path: internal/game/types.go
package game

import (
	"encoding/binary"
	"fmt"

	"rush_hour_poc/internal/shared"
)

type Orientation = shared.Orientation

const (
	Horizontal = shared.Horizontal
	Vertical   = shared.Vertical
)

type Cell = shared.Cell

// PrimaryID is the letter reserved for the piece that has to reach the right edge.
const PrimaryID byte = 'A'

// Piece is a straight block of Size cells. P is its anchor along its own axis
// and Row the fixed coordinate across it; only P changes after setup.
type Piece struct {
	ID          byte        `json:"id"`
	Orientation Orientation `json:"orientation"`
	P           int         `json:"p"`
	Row         int         `json:"row"`
	Size        int         `json:"size"`
}

func (p Piece) String() string {
	return fmt.Sprintf("%c[%s p=%d row=%d size=%d]", p.ID, p.Orientation, p.P, p.Row, p.Size)
}

// Move slides one piece along its axis. A negative Delta moves it toward
// the origin (left or up).
type Move struct {
	Piece int `json:"piece"`
	Delta int `json:"delta"`
}

// noParent marks the starting configuration in the visited map.
var noParent = Move{}

func (m Move) IsZero() bool { return m.Delta == 0 }

// Positions is one configuration: the anchor of every piece, indexed like
// the board's pieces.
type Positions []int

func (ps Positions) Clone() Positions {
	out := make(Positions, len(ps))
	copy(out, ps)
	return out
}

// key packs the anchors into a comparable map key.
func (ps Positions) key() string {
	buf := make([]byte, 0, len(ps)*2)
	for _, p := range ps {
		buf = binary.AppendUvarint(buf, uint64(p))
	}
	return string(buf)
}

// Solution is the outcome of a search. Moves is nil when Solved is false.
// Explored counts expanded configurations, Discovered every configuration
// entered into the visited map.
type Solution struct {
	Solved     bool   `json:"solved"`
	Moves      []Move `json:"moves"`
	Explored   int    `json:"explored"`
	Discovered int    `json:"discovered"`
}
