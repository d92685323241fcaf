package maze

import "fmt"

// Grid is a dense N×N×N cube of cells
// Cells is a 1D array: index = (z*Size + y)*Size + x
type Grid struct {
	size  int
	cells []Cell
}

// NewGrid creates a grid with every cell Unvisited
func NewGrid(size int) *Grid {
	if size <= 0 {
		panic(fmt.Sprintf("maze: grid size must be positive, got %d", size))
	}
	return &Grid{
		size:  size,
		cells: make([]Cell, size*size*size),
	}
}

// Size returns the edge length N
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether p lies inside the cube
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.size &&
		p.Y >= 0 && p.Y < g.size &&
		p.Z >= 0 && p.Z < g.size
}

func (g *Grid) index(p Point) int {
	return (p.Z*g.size+p.Y)*g.size + p.X
}

// At returns the cell at p, panics when p is outside the grid
func (g *Grid) At(p Point) Cell {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("maze: position %v out of range for size %d", p, g.size))
	}
	return g.cells[g.index(p)]
}

// Lookup returns the cell at p and false when p is outside the grid
func (g *Grid) Lookup(p Point) (Cell, bool) {
	if !g.InBounds(p) {
		return Unvisited, false
	}
	return g.cells[g.index(p)], true
}

// Set writes c at p, panics when p is outside the grid
func (g *Grid) Set(p Point, c Cell) {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("maze: position %v out of range for size %d", p, g.size))
	}
	g.cells[g.index(p)] = c
}

// Find scans z, then y, then x and returns the first position holding target
func (g *Grid) Find(target Cell) (Point, bool) {
	for z := 0; z < g.size; z++ {
		for y := 0; y < g.size; y++ {
			for x := 0; x < g.size; x++ {
				p := Point{x, y, z}
				if g.cells[g.index(p)] == target {
					return p, true
				}
			}
		}
	}
	return Point{}, false
}

// Count returns how many cells equal target
func (g *Grid) Count(target Cell) int {
	n := 0
	for _, c := range g.cells {
		if c == target {
			n++
		}
	}
	return n
}

// Slice returns the cross-section fixing the axis' depth coordinate at index
// Out-of-range indices are programmer errors and panic
func (g *Grid) Slice(axis Axis, index int) Slice {
	if index < 0 || index >= g.size {
		panic(fmt.Sprintf("maze: slice index %d out of range for size %d", index, g.size))
	}
	return Slice{
		grid:   g,
		axis:   axis,
		depth:  index,
		width:  g.size,
		height: g.size,
	}
}
