// path: internal/game/game_status.go
package game

import (
	"fmt"
	"strconv"
	"strings"

	"rush_hour_poc/internal/shared"
)

const NotFoundMessage = "Solution not found"

// MoveNotation writes a move as the piece letter, a sign and the distance,
// e.g. "B+1" or "A-2".
func MoveNotation(b *Board, m Move) string {
	sign := "+"
	if m.Delta < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%c%s%d", b.Piece(m.Piece).ID, sign, shared.Abs(m.Delta))
}

// SolutionNotation joins the notation of every move with single spaces.
func SolutionNotation(b *Board, moves []Move) string {
	parts := make([]string, 0, len(moves))
	for _, m := range moves {
		parts = append(parts, MoveNotation(b, m))
	}
	return strings.Join(parts, " ")
}

// FormatSolution renders the one-line summary printed for a search result.
func FormatSolution(b *Board, sol Solution) string {
	if !sol.Solved {
		return NotFoundMessage
	}
	line := fmt.Sprintf("Solution (%d moves):", len(sol.Moves))
	if len(sol.Moves) > 0 {
		line += " " + SolutionNotation(b, sol.Moves)
	}
	return line
}

// ParseMove reads a move in MoveNotation form against the pieces of b.
func ParseMove(b *Board, s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) < 3 {
		return Move{}, fmt.Errorf("invalid move %q", s)
	}
	id := -1
	for i, pc := range b.pieces {
		if pc.ID == s[0] {
			id = i
			break
		}
	}
	if id < 0 {
		return Move{}, fmt.Errorf("invalid move %q: no piece '%c'", s, s[0])
	}
	var sign int
	switch s[1] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		return Move{}, fmt.Errorf("invalid move %q: expected '+' or '-'", s)
	}
	dist, err := strconv.Atoi(s[2:])
	if err != nil || dist < 1 {
		return Move{}, fmt.Errorf("invalid move %q: bad distance", s)
	}
	return Move{Piece: id, Delta: sign * dist}, nil
}
