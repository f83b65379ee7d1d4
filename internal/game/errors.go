// path: internal/game/errors.go
package game

import "errors"

var (
	ErrInvalidPuzzle = errors.New("invalid puzzle")
	ErrCellOccupied  = errors.New("cell already occupied")
	ErrOutOfBounds   = errors.New("cell out of bounds")
	ErrInvalidPiece  = errors.New("invalid piece")
	ErrUnknownLevel  = errors.New("unknown level")
	ErrIllegalMove   = errors.New("illegal move")
	ErrSearchLimit   = errors.New("search limit reached")
)
