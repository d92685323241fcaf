package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxisRotationCycle(t *testing.T) {
	assert.Equal(t, XZ, XY.Next())
	assert.Equal(t, YZ, XZ.Next())
	assert.Equal(t, XY, YZ.Next())

	for _, a := range []Axis{XY, XZ, YZ} {
		assert.Equal(t, a, a.Next().Next().Next(), "three rotations from %v", a)
	}
}

func TestAxisProjectLift(t *testing.T) {
	p := Point{X: 1, Y: 3, Z: 5}
	tests := []struct {
		axis  Axis
		u, v  int
		depth int
	}{
		{XY, 1, 3, 5},
		{XZ, 1, 5, 3},
		{YZ, 3, 5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.axis.String(), func(t *testing.T) {
			u, v := tt.axis.Project(p)
			assert.Equal(t, tt.u, u)
			assert.Equal(t, tt.v, v)
			assert.Equal(t, tt.depth, tt.axis.Depth(p))
			assert.Equal(t, p, tt.axis.Lift(u, v, tt.axis.Depth(p)))
		})
	}
}

func TestParseAxis(t *testing.T) {
	a, err := ParseAxis(" XZ ")
	require.NoError(t, err)
	assert.Equal(t, XZ, a)

	_, err = ParseAxis("zz")
	assert.Error(t, err)
}

func TestCellTraversable(t *testing.T) {
	traversable := map[Cell]bool{
		Open:      true,
		Start:     true,
		End:       true,
		Wall:      false,
		OuterWall: false,
		Unvisited: false,
	}
	for c, want := range traversable {
		assert.Equal(t, want, c.Traversable(), c.String())
	}
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "(1, 1, 1)", Origin.String())
	assert.Equal(t, "(3, 5, 7)", Point{X: 3, Y: 5, Z: 7}.String())
}

func TestPointAdd(t *testing.T) {
	assert.Equal(t, Point{X: 3, Y: 0, Z: 2}, Origin.Add(Point{X: 2, Y: -1, Z: 1}))
}
