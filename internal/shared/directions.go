// path: internal/shared/directions.go
package shared

// AxisCell maps an (axis, cross) coordinate pair back to grid space for a
// piece of the given orientation.
func AxisCell(o Orientation, axis, cross int) Cell {
	if o == Horizontal {
		return Cell{X: axis, Y: cross}
	}
	return Cell{X: cross, Y: axis}
}

// AxisExtent is the grid length along the movement axis of the orientation.
func AxisExtent(o Orientation, width, height int) int {
	if o == Horizontal {
		return width
	}
	return height
}

// Line returns the cells covered by a run of size cells starting at anchor p.
func Line(o Orientation, p, cross, size int) []Cell {
	if size <= 0 {
		return nil
	}
	cells := make([]Cell, 0, size)
	for i := 0; i < size; i++ {
		cells = append(cells, AxisCell(o, p+i, cross))
	}
	return cells
}

func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
