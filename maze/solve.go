package maze

// unit steps along each axis
var neighbours = []Point{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// Solve returns the shortest unit-step path from start to end through traversable
// cells, both ends included. Returns nil when either end is blocked or unreachable
func Solve(grid *Grid, start, end Point) []Point {
	if !grid.InBounds(start) || !grid.InBounds(end) {
		return nil
	}
	if !grid.At(start).Traversable() || !grid.At(end).Traversable() {
		return nil
	}

	queue := []Point{start}
	cameFrom := make(map[Point]Point)
	seen := map[Point]bool{start: true}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == end {
			// Reconstruct Path
			path := []Point{}
			for curr != start {
				path = append(path, curr)
				curr = cameFrom[curr]
			}
			path = append(path, start)
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, d := range neighbours {
			next := curr.Add(d)
			if c, ok := grid.Lookup(next); ok && c.Traversable() && !seen[next] {
				seen[next] = true
				cameFrom[next] = curr
				queue = append(queue, next)
			}
		}
	}
	return nil
}

// Reachable counts the traversable cells connected to start, start included
func Reachable(grid *Grid, start Point) int {
	if c, ok := grid.Lookup(start); !ok || !c.Traversable() {
		return 0
	}

	seen := map[Point]bool{start: true}
	stack := []Point{start}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range neighbours {
			next := curr.Add(d)
			if c, ok := grid.Lookup(next); ok && c.Traversable() && !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}
	return len(seen)
}

// Edges counts unit-step adjacencies between traversable cells
// A perfect maze has exactly Reachable-1 of them
func Edges(grid *Grid) int {
	n := grid.size
	edges := 0
	for z := 0; z < n; z++ {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				p := Point{x, y, z}
				if !grid.At(p).Traversable() {
					continue
				}
				// Only look forward so each edge counts once
				for _, d := range neighbours {
					if d.X < 0 || d.Y < 0 || d.Z < 0 {
						continue
					}
					if c, ok := grid.Lookup(p.Add(d)); ok && c.Traversable() {
						edges++
					}
				}
			}
		}
	}
	return edges
}
