// path: internal/game/parse_test.go
package game

import (
	"errors"
	"strings"
	"testing"
)

func TestParseBuildsPieces(t *testing.T) {
	b, err := Parse(rowsToDesc(
		"..B...",
		"..B..C",
		"AAB..C",
		"DD.E..",
		"...E.x",
		"...E..",
	))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if b.Width() != 6 || b.Height() != 6 {
		t.Fatalf("expected 6x6, got %dx%d", b.Width(), b.Height())
	}

	want := []Piece{
		{ID: 'B', Orientation: Vertical, P: 0, Row: 2, Size: 3},
		{ID: 'C', Orientation: Vertical, P: 1, Row: 5, Size: 2},
		{ID: 'A', Orientation: Horizontal, P: 0, Row: 2, Size: 2},
		{ID: 'D', Orientation: Horizontal, P: 0, Row: 3, Size: 2},
		{ID: 'E', Orientation: Vertical, P: 3, Row: 3, Size: 3},
	}
	if b.NumPieces() != len(want) {
		t.Fatalf("expected %d pieces, got %d", len(want), b.NumPieces())
	}
	for i, w := range want {
		if got := b.Piece(i); got != w {
			t.Fatalf("piece %d: expected %v, got %v", i, w, got)
		}
	}
	if b.PrimaryID() != 2 || b.Primary().ID != 'A' {
		t.Fatalf("expected primary piece A at index 2, got %d", b.PrimaryID())
	}
	walls := b.Walls()
	if len(walls) != 1 || walls[0] != (Cell{X: 5, Y: 4}) {
		t.Fatalf("unexpected walls %v", walls)
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("parsed board violates invariants: %v", err)
	}
}

func TestParseAcceptsEmptyMarkers(t *testing.T) {
	b, err := Parse("oooo" + "AA.." + "o.o." + "....")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if b.NumPieces() != 1 || len(b.Walls()) != 0 {
		t.Fatalf("expected a lone primary piece")
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name   string
		puzzle string
		msg    string
	}{
		{name: "empty", puzzle: "", msg: "perfect square"},
		{name: "not square", puzzle: "AA...", msg: "perfect square"},
		{name: "bad character", puzzle: "AA..a...........", msg: "unsupported value 'a'"},
		{name: "multi-byte character", puzzle: "AAé............", msg: "unsupported value 'é'"},
		{name: "letter reused", puzzle: "AA..BB..BB......", msg: "more than one piece"},
		{name: "single cell", puzzle: "AA..B...........", msg: "size of one"},
		{name: "no primary", puzzle: "BB..............", msg: "no primary piece"},
		{name: "vertical primary", puzzle: "A...A...........", msg: "must be horizontal"},
		{
			name: "dangling cell",
			puzzle: rowsToDesc(
				"..B...",
				"..B..C",
				"AAB..C",
				"DDE...",
				"...E..",
				"...E..",
			),
			msg: "size of one",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			b, err := Parse(tt.puzzle)
			if err == nil {
				t.Fatalf("expected error, got board\n%s", b)
			}
			if !errors.Is(err, ErrInvalidPuzzle) {
				t.Fatalf("expected ErrInvalidPuzzle, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Fatalf("expected %q in %q", tt.msg, err.Error())
			}
		})
	}
}

func TestParseEncodeRoundTrip(t *testing.T) {
	for _, l := range Levels() {
		b := MustParse(l.Desc)
		if got := b.Encode(); got != l.Desc {
			t.Fatalf("%s: expected %q, got %q", l.ID, l.Desc, got)
		}
	}
}
