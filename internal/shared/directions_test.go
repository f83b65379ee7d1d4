// path: internal/shared/directions_test.go
package shared

import (
	"reflect"
	"testing"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		o    Orientation
		want []Cell
	}{
		{"horizontal", Horizontal, []Cell{{X: 1, Y: 4}, {X: 2, Y: 4}, {X: 3, Y: 4}}},
		{"vertical", Vertical, []Cell{{X: 4, Y: 1}, {X: 4, Y: 2}, {X: 4, Y: 3}}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := Line(tt.o, 1, 4, 3); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
	if got := Line(Horizontal, 0, 0, 0); got != nil {
		t.Fatalf("expected nil line for size 0, got %v", got)
	}
}

func TestCellIndex(t *testing.T) {
	c := Cell{X: 3, Y: 2}
	idx := c.Index(6)
	if idx != 15 {
		t.Fatalf("expected 15, got %d", idx)
	}
	if !c.InBounds(4, 3) || c.InBounds(3, 3) || (Cell{X: -1}).InBounds(4, 4) {
		t.Fatalf("unexpected bounds result")
	}
}

func TestAxisExtent(t *testing.T) {
	if AxisExtent(Horizontal, 5, 7) != 5 || AxisExtent(Vertical, 5, 7) != 7 {
		t.Fatalf("unexpected axis extent")
	}
}

func TestOrientationString(t *testing.T) {
	if Horizontal.String() != "Horizontal" || Vertical.String() != "Vertical" {
		t.Fatalf("unexpected names %q %q", Horizontal, Vertical)
	}
	if got := Orientation(7).String(); got != "orientation(7)" {
		t.Fatalf("unexpected fallback %q", got)
	}
}
