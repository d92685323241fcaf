package maze

import "fmt"

// Cell is the state of one grid position
type Cell uint8

// Cell states. The zero value is Unvisited so a fresh grid needs no fill pass
const (
	Unvisited Cell = iota
	Open
	Wall
	OuterWall
	Start
	End
)

// Traversable reports whether the player may occupy the cell
func (c Cell) Traversable() bool {
	switch c {
	case Open, Start, End:
		return true
	default:
		return false
	}
}

func (c Cell) String() string {
	switch c {
	case Unvisited:
		return "unvisited"
	case Open:
		return "open"
	case Wall:
		return "wall"
	case OuterWall:
		return "outer-wall"
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return "invalid"
	}
}

// Digit returns the single-character debug encoding used by text dumps
func (c Cell) Digit() byte {
	switch c {
	case OuterWall:
		return '0'
	case Open:
		return '1'
	case Wall:
		return '2'
	case Start:
		return '3'
	case Unvisited:
		return '4'
	case End:
		return '5'
	default:
		return '?'
	}
}

// Point is a position in the 3D grid
type Point struct {
	X, Y, Z int
}

// Origin is where every maze starts
var Origin = Point{1, 1, 1}

// Add returns the component-wise sum of p and d
func (p Point) Add(d Point) Point {
	return Point{p.X + d.X, p.Y + d.Y, p.Z + d.Z}
}

// String formats the point as "(x, y, z)"
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z)
}
