package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

const (
	// MinSize is the smallest cube that holds more than one room
	MinSize = 5

	// MaxSize bounds the cube to about 16 MiB of cells
	MaxSize = 255
)

var ErrInvalidSize = errors.New("maze size out of range")

// CheckSize rejects edge lengths outside [MinSize, MaxSize]
func CheckSize(size int) error {
	if size < MinSize || size > MaxSize {
		return fmt.Errorf("%w: %d (want %d-%d)", ErrInvalidSize, size, MinSize, MaxSize)
	}
	return nil
}

type Config struct {
	// Edge length N. Rooms sit at odd coordinates, walls at even ones.
	// Odd sizes are preferred; even sizes leave index N-1 as the outer plane.
	Size int
	Seed int64 // Optional (0 = Random)
}

// Generator carves perfect mazes from a single RNG stream, so a seeded
// generator yields the same sequence of levels
type Generator struct {
	size int
	rng  *rand.Rand
}

// NewGenerator prepares a generator, clamping Size into [MinSize, MaxSize]
func NewGenerator(cfg Config) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	size := cfg.Size
	size = max(MinSize, min(size, MaxSize))
	return &Generator{
		size: size,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Size returns the edge length of generated grids
func (g *Generator) Size() int {
	return g.size
}

// Generate creates a new maze. Never returns a grid containing Unvisited cells
func (g *Generator) Generate() *Grid {
	// 1. Initialize grid (all Unvisited)
	grid := NewGrid(g.size)

	// 2. Stamp static structure: outer planes, then even-coordinate walls
	stampWalls(grid)

	// 3. Core generation (Recursive Backtracker)
	recursiveBacktracker(grid, g.rng)

	return grid
}

// Generate is a one-shot helper around NewGenerator
func Generate(cfg Config) *Grid {
	return NewGenerator(cfg).Generate()
}

// direction codes match the draw range [0,6)
type direction int

const (
	xPos direction = iota
	yPos
	zPos
	xNeg
	yNeg
	zNeg
	directionCount
)

// step moves dist units from p. Returns false instead of producing a negative coordinate
func (d direction) step(p Point, dist int) (Point, bool) {
	switch d {
	case xPos:
		return Point{p.X + dist, p.Y, p.Z}, true
	case yPos:
		return Point{p.X, p.Y + dist, p.Z}, true
	case zPos:
		return Point{p.X, p.Y, p.Z + dist}, true
	case xNeg:
		if p.X < dist {
			return p, false
		}
		return Point{p.X - dist, p.Y, p.Z}, true
	case yNeg:
		if p.Y < dist {
			return p, false
		}
		return Point{p.X, p.Y - dist, p.Z}, true
	case zNeg:
		if p.Z < dist {
			return p, false
		}
		return Point{p.X, p.Y, p.Z - dist}, true
	}
	return p, false
}

// --- Core Algorithms ---

func stampWalls(grid *Grid) {
	n := grid.size
	last := n - 1
	for z := 0; z < n; z++ {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				p := Point{x, y, z}
				switch {
				case x == 0 || y == 0 || z == 0 || x == last || y == last || z == last:
					grid.Set(p, OuterWall)
				case x%2 == 0 || y%2 == 0 || z%2 == 0:
					grid.Set(p, Wall)
				}
				// All-odd interior cells stay Unvisited until carved
			}
		}
	}
}

func recursiveBacktracker(grid *Grid, rng *rand.Rand) {
	pos := Origin
	grid.Set(pos, Start)

	// visited is the frontier stack, history only exists to pick the End cell
	// Each stack holds at most one entry per room
	rooms := (grid.size - 1) / 2
	capacity := rooms * rooms * rooms
	visited := make([]Point, 0, capacity)
	history := make([]Point, 0, capacity)
	visited = append(visited, pos)
	history = append(history, pos)

	for len(visited) > 0 {
		if !hasUnvisitedNeighbour(grid, pos) {
			pos = visited[len(visited)-1]
			visited = visited[:len(visited)-1]
			continue
		}

		// Redraw on invalid directions rather than sampling from the valid set.
		// This skews the direction distribution when fewer than six are legal.
		var dir direction
		var next Point
		for {
			dir = direction(rng.Intn(int(directionCount)))
			candidate, ok := dir.step(pos, 2)
			if !ok {
				continue
			}
			if c, in := grid.Lookup(candidate); in && c == Unvisited {
				next = candidate
				break
			}
		}

		wall, _ := dir.step(pos, 1)
		grid.Set(next, Open)
		grid.Set(wall, Open)

		visited = append(visited, next)
		history = append(history, next)
		pos = next
	}

	grid.Set(history[len(history)-1], End)
}

func hasUnvisitedNeighbour(grid *Grid, p Point) bool {
	for d := direction(0); d < directionCount; d++ {
		n, ok := d.step(p, 2)
		if !ok {
			continue
		}
		if c, in := grid.Lookup(n); in && c == Unvisited {
			return true
		}
	}
	return false
}
