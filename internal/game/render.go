// path: internal/game/render.go
package game

import (
	"io"
	"strings"
)

// Grid returns the board as rows of cell glyphs: the piece letter, '#' for a
// wall and ' ' for an empty cell.
func (b *Board) Grid() [][]byte {
	grid := make([][]byte, b.height)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(" ", b.width))
	}
	for _, pc := range b.pieces {
		for _, c := range pc.Cells() {
			grid[c.Y][c.X] = pc.ID
		}
	}
	for _, c := range b.wallSeq {
		grid[c.Y][c.X] = '#'
	}
	return grid
}

// Render writes the board framed by a fixed-width ASCII border:
//
//	+ - - - - +
//	| A A   B |
//	+ - - - - +
func Render(w io.Writer, b *Board) error {
	_, err := io.WriteString(w, b.String())
	return err
}

func (b *Board) String() string {
	var sb strings.Builder
	border := "+" + strings.Repeat(" -", b.width) + " +\n"

	sb.WriteString(border)
	for _, row := range b.Grid() {
		sb.WriteByte('|')
		for _, glyph := range row {
			sb.WriteByte(' ')
			sb.WriteByte(glyph)
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString(border)
	return sb.String()
}

// Encode writes the board back in puzzle notation. Parse(b.Encode()) yields
// a board with the same pieces, walls and configuration.
func (b *Board) Encode() string {
	out := make([]byte, b.width*b.height)
	for i := range out {
		out[i] = '.'
	}
	for _, pc := range b.pieces {
		for _, c := range pc.Cells() {
			out[c.Index(b.width)] = pc.ID
		}
	}
	for _, c := range b.wallSeq {
		out[c.Index(b.width)] = 'x'
	}
	return string(out)
}
