package maze

import "fmt"

// Slice is a read-only 2D window into a Grid
// It holds no cells of its own: every read goes through the grid, so a Slice must not
// outlive the event that produced it once the grid is replaced
type Slice struct {
	grid   *Grid
	axis   Axis
	depth  int
	u0, v0 int // window origin in slice coordinates
	width  int
	height int
}

// Axis returns the axis the slice was cut along
func (s Slice) Axis() Axis { return s.axis }

// Depth returns the fixed coordinate
func (s Slice) Depth() int { return s.depth }

// Width is the extent along the horizontal in-slice coordinate
func (s Slice) Width() int { return s.width }

// Height is the extent along the vertical in-slice coordinate
func (s Slice) Height() int { return s.height }

// Origin returns the top-left corner of the window in full-slice coordinates
func (s Slice) Origin() (int, int) { return s.u0, s.v0 }

// At returns the cell at window coordinates (u, v)
func (s Slice) At(u, v int) Cell {
	if u < 0 || u >= s.width || v < 0 || v >= s.height {
		panic(fmt.Sprintf("maze: slice coordinate (%d,%d) out of range %dx%d", u, v, s.width, s.height))
	}
	return s.grid.cells[s.grid.index(s.axis.Lift(s.u0+u, s.v0+v, s.depth))]
}

// Position maps window coordinates back to the grid position they read
func (s Slice) Position(u, v int) Point {
	return s.axis.Lift(s.u0+u, s.v0+v, s.depth)
}

// SubSlice returns the inclusive region [start[0], start[0]+length[0]] × [start[1], start[1]+length[1]]
// Any bound beyond the slice panics
func (s Slice) SubSlice(start, length [2]int) Slice {
	if start[0] < 0 || start[1] < 0 || length[0] < 0 || length[1] < 0 ||
		start[0]+length[0] >= s.width || start[1]+length[1] >= s.height {
		panic(fmt.Sprintf("maze: sub-slice start %v length %v exceeds %dx%d", start, length, s.width, s.height))
	}
	return Slice{
		grid:   s.grid,
		axis:   s.axis,
		depth:  s.depth,
		u0:     s.u0 + start[0],
		v0:     s.v0 + start[1],
		width:  length[0] + 1,
		height: length[1] + 1,
	}
}

// Each visits every cell row by row
func (s Slice) Each(fn func(u, v int, c Cell)) {
	for v := 0; v < s.height; v++ {
		for u := 0; u < s.width; u++ {
			fn(u, v, s.At(u, v))
		}
	}
}
