package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// prefilled returns a grid whose cells hold their own linear index
func prefilled(t *testing.T, n int) *Grid {
	t.Helper()
	require.LessOrEqual(t, n*n*n, 256, "linear index must fit in a Cell")
	g := NewGrid(n)
	for i := range g.cells {
		g.cells[i] = Cell(i)
	}
	return g
}

func TestNewGridAllUnvisited(t *testing.T) {
	for _, n := range []int{1, 2, 5, 8, 9} {
		g := NewGrid(n)
		assert.Equal(t, n, g.Size())
		assert.Equal(t, n*n*n, g.Count(Unvisited), "size %d", n)
	}
}

func TestGridSetAt(t *testing.T) {
	g := NewGrid(5)
	p := Point{1, 2, 3}
	g.Set(p, Wall)
	assert.Equal(t, Wall, g.At(p))

	c, ok := g.Lookup(Point{5, 0, 0})
	assert.False(t, ok)
	assert.Equal(t, Unvisited, c)

	assert.Panics(t, func() { g.At(Point{-1, 0, 0}) })
	assert.Panics(t, func() { g.Set(Point{0, 5, 0}, Open) })
}

func TestGridFindOrder(t *testing.T) {
	g := NewGrid(5)
	_, ok := g.Find(End)
	assert.False(t, ok, "fresh grid has no End")

	// z is the outermost loop, so the lower z wins even with larger x/y
	g.Set(Point{3, 3, 1}, End)
	g.Set(Point{1, 1, 3}, End)
	p, ok := g.Find(End)
	require.True(t, ok)
	assert.Equal(t, Point{3, 3, 1}, p)

	g.Set(Point{2, 1, 1}, End)
	p, _ = g.Find(End)
	assert.Equal(t, Point{2, 1, 1}, p)
}

func TestSliceReadsFixedDepth(t *testing.T) {
	const n = 5
	g := prefilled(t, n)
	s := g.Slice(XY, 1)

	assert.Equal(t, n, s.Width())
	assert.Equal(t, n, s.Height())
	for v := 0; v < n; v++ {
		for u := 0; u < n; u++ {
			assert.Equal(t, Cell(n*n+v*n+u), s.At(u, v))
		}
	}

	// XZ fixes y, YZ fixes x
	assert.Equal(t, g.At(Point{3, 2, 4}), g.Slice(XZ, 2).At(3, 4))
	assert.Equal(t, g.At(Point{2, 3, 4}), g.Slice(YZ, 2).At(3, 4))
}

func TestSliceIndexOutOfRange(t *testing.T) {
	g := NewGrid(5)
	assert.Panics(t, func() { g.Slice(XY, 5) })
	assert.Panics(t, func() { g.Slice(YZ, -1) })
	assert.NotPanics(t, func() { g.Slice(XZ, 4) })
}

func TestSubSliceInclusiveBounds(t *testing.T) {
	const n = 5
	const k = n * n
	g := prefilled(t, n)
	s := g.Slice(XY, 1)

	cells := func(sl Slice) []Cell {
		var out []Cell
		sl.Each(func(_, _ int, c Cell) { out = append(out, c) })
		return out
	}

	tests := []struct {
		name   string
		start  [2]int
		length [2]int
		want   []Cell
	}{
		{"origin 2x2", [2]int{0, 0}, [2]int{1, 1}, []Cell{k, k + 1, k + n, k + n + 1}},
		{"offset 2x2", [2]int{1, 1}, [2]int{1, 1}, []Cell{k + n + 1, k + n + 2, k + 2*n + 1, k + 2*n + 2}},
		{"single", [2]int{0, 0}, [2]int{0, 0}, []Cell{k}},
		{"row", [2]int{2, 4}, [2]int{2, 0}, []Cell{k + 4*n + 2, k + 4*n + 3, k + 4*n + 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := s.SubSlice(tt.start, tt.length)
			assert.Equal(t, tt.length[0]+1, sub.Width())
			assert.Equal(t, tt.length[1]+1, sub.Height())
			assert.Equal(t, tt.want, cells(sub))
		})
	}

	full := s.SubSlice([2]int{0, 0}, [2]int{n - 1, n - 1})
	assert.Equal(t, cells(s), cells(full))
}

func TestSubSliceOutOfRange(t *testing.T) {
	const n = 5
	s := prefilled(t, n).Slice(XY, 1)

	assert.Panics(t, func() { s.SubSlice([2]int{0, 0}, [2]int{n, n}) })
	assert.Panics(t, func() { s.SubSlice([2]int{1, 0}, [2]int{n - 1, 0}) })
	assert.Panics(t, func() { s.SubSlice([2]int{-1, 0}, [2]int{1, 1}) })

	// Nested windows are bounded by the parent window, not the full slice
	sub := s.SubSlice([2]int{1, 1}, [2]int{2, 2})
	assert.Panics(t, func() { sub.SubSlice([2]int{0, 0}, [2]int{3, 0}) })
	inner := sub.SubSlice([2]int{1, 1}, [2]int{1, 1})
	assert.Equal(t, s.At(2, 2), inner.At(0, 0))
	assert.Equal(t, Point{2, 2, 1}, inner.Position(0, 0))
}
