// path: internal/game/parse.go
package game

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// Parse reads a puzzle written row by row as one string of n*n characters:
// '.' or 'o' for an empty cell, 'x' for a wall, 'A'-'Z' for piece cells.
// A piece is the run of its letter found scanning right from its first cell
// or, when that run is a single cell, scanning down. 'A' is the primary piece
// and has to be horizontal.
func Parse(puzzle string) (*Board, error) {
	size := int(math.Sqrt(float64(len(puzzle))))
	for size*size > len(puzzle) {
		size--
	}
	for (size+1)*(size+1) <= len(puzzle) {
		size++
	}
	if size == 0 || size*size != len(puzzle) {
		return nil, fmt.Errorf("%w: invalid puzzle size %d, the length must be a perfect square", ErrInvalidPuzzle, len(puzzle))
	}

	b := &Board{
		width:   size,
		height:  size,
		walls:   make(map[Cell]struct{}),
		primary: -1,
	}
	explored := NewOccupancy(len(puzzle))
	var used [26]bool

	at := func(x, y int) byte { return puzzle[y*size+x] }

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			i := y*size + x
			if explored.Has(i) {
				continue
			}
			explored.Add(i)

			val := puzzle[i]
			switch {
			case val == '.' || val == 'o':
				continue
			case val == 'x':
				c := Cell{X: x, Y: y}
				b.walls[c] = struct{}{}
				b.wallSeq = append(b.wallSeq, c)
				continue
			case val < 'A' || val > 'Z':
				r, _ := utf8.DecodeRuneInString(puzzle[i:])
				return nil, fmt.Errorf("%w: unsupported value %q, allowed values: '.' or 'o' for empty cells, 'x' for walls, and A-Z for pieces", ErrInvalidPuzzle, r)
			}

			if used[val-'A'] {
				return nil, fmt.Errorf("%w: there is more than one piece with the value '%c'", ErrInvalidPuzzle, val)
			}
			used[val-'A'] = true

			run := 1
			for x+run < size && at(x+run, y) == val {
				explored.Add(i + run)
				run++
			}
			if run > 1 {
				if val == PrimaryID {
					b.primary = len(b.pieces)
				}
				b.pieces = append(b.pieces, Piece{ID: val, Orientation: Horizontal, P: x, Row: y, Size: run})
				continue
			}

			for y+run < size && at(x, y+run) == val {
				explored.Add(i + run*size)
				run++
			}
			if run > 1 {
				if val == PrimaryID {
					return nil, fmt.Errorf("%w: the primary piece must be horizontal", ErrInvalidPuzzle)
				}
				b.pieces = append(b.pieces, Piece{ID: val, Orientation: Vertical, P: y, Row: x, Size: run})
				continue
			}

			return nil, fmt.Errorf("%w: piece with the value '%c' has a size of one, the size must be greater than one", ErrInvalidPuzzle, val)
		}
	}

	if b.primary < 0 {
		return nil, fmt.Errorf("%w: there is no primary piece, there must be a piece with the value '%c'", ErrInvalidPuzzle, PrimaryID)
	}
	return b, nil
}

// MustParse is Parse for puzzles known to be valid; it panics on error.
func MustParse(puzzle string) *Board {
	b, err := Parse(puzzle)
	if err != nil {
		panic(err)
	}
	return b
}
