// path: internal/shared/types.go
package shared

import "fmt"

type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return fmt.Sprintf("orientation(%d)", o)
	}
}

// Cell is a grid coordinate; X grows rightward, Y grows downward.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// InBounds reports whether the cell lies on a width x height grid.
func (c Cell) InBounds(width, height int) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < width && c.Y < height
}

// Index returns the row-major offset of the cell on a grid of the given width.
func (c Cell) Index(width int) int { return c.Y*width + c.X }
