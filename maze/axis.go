package maze

import (
	"fmt"
	"strings"
)

// Axis selects which two coordinates a cross-section exposes
type Axis uint8

const (
	XY Axis = iota // x,y visible, z fixed
	XZ             // x,z visible, y fixed
	YZ             // y,z visible, x fixed
)

// Next returns the following axis in the rotation XY -> XZ -> YZ -> XY
func (a Axis) Next() Axis {
	switch a {
	case XY:
		return XZ
	case XZ:
		return YZ
	default:
		return XY
	}
}

// Depth returns the coordinate of p that the axis holds fixed
func (a Axis) Depth(p Point) int {
	switch a {
	case XY:
		return p.Z
	case XZ:
		return p.Y
	default:
		return p.X
	}
}

// Project returns the in-slice coordinates of p
// The first value is the horizontal (left/right) coordinate, the second the vertical one
func (a Axis) Project(p Point) (int, int) {
	switch a {
	case XY:
		return p.X, p.Y
	case XZ:
		return p.X, p.Z
	default:
		return p.Y, p.Z
	}
}

// Lift maps in-slice coordinates and a depth back to a grid position
func (a Axis) Lift(u, v, depth int) Point {
	switch a {
	case XY:
		return Point{u, v, depth}
	case XZ:
		return Point{u, depth, v}
	default:
		return Point{depth, u, v}
	}
}

func (a Axis) String() string {
	switch a {
	case XY:
		return "XY"
	case XZ:
		return "XZ"
	case YZ:
		return "YZ"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}

// ParseAxis accepts "xy", "xz" or "yz" in any case
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xy":
		return XY, nil
	case "xz":
		return XZ, nil
	case "yz":
		return YZ, nil
	}
	return XY, fmt.Errorf("unknown axis %q (expected xy, xz or yz)", s)
}
