package nav

import (
	"container/heap"
	"math"

	"github.com/milk9111/wildlife/common"
)

const (
	// gridCell is the planner's cell size in world units.
	gridCell = 1.0
	// maxPlanNodes bounds one A* search.
	maxPlanNodes = 20000
)

type cell struct {
	X int
	Z int
}

// plan returns the waypoints from a to b for a body of the given radius. The
// last waypoint is b. A clear straight line is a single waypoint; otherwise
// an A* route over the walkable grid is shortened by line of sight. nil means
// b is unreachable.
func (s *Surface) plan(a, b common.Vec3, radius float64) []common.Vec3 {
	a, b = a.Flat(), b.Flat()
	if s.Clear(a, b, radius) {
		return []common.Vec3{b}
	}
	if !s.Walkable(b, radius) {
		return nil
	}

	cols, rows := s.gridSize()
	goal := s.cellOf(b)
	cells := aStar(s.cellOf(a), goal, cols, rows, func(c cell) bool {
		return c != goal && !s.Walkable(s.cellCenter(c), radius)
	}, maxPlanNodes)
	if cells == nil {
		return nil
	}
	if len(cells) < 2 {
		return []common.Vec3{b}
	}

	points := make([]common.Vec3, 0, len(cells))
	for _, c := range cells[1 : len(cells)-1] {
		points = append(points, s.cellCenter(c))
	}
	points = append(points, b)
	return s.smooth(a, points, radius)
}

// smooth drops every waypoint that can be skipped with a clear straight
// line.
func (s *Surface) smooth(from common.Vec3, points []common.Vec3, radius float64) []common.Vec3 {
	out := make([]common.Vec3, 0, len(points))
	cur := from
	for i := 0; i < len(points); {
		j := len(points) - 1
		for j > i && !s.Clear(cur, points[j], radius) {
			j--
		}
		out = append(out, points[j])
		cur = points[j]
		i = j + 1
	}
	return out
}

func (s *Surface) gridSize() (cols, rows int) {
	cols = int(math.Ceil((s.bounds.Max.X - s.bounds.Min.X) / gridCell))
	rows = int(math.Ceil((s.bounds.Max.Z - s.bounds.Min.Z) / gridCell))
	return max(cols, 1), max(rows, 1)
}

func (s *Surface) cellOf(p common.Vec3) cell {
	cols, rows := s.gridSize()
	x := int(math.Floor((p.X - s.bounds.Min.X) / gridCell))
	z := int(math.Floor((p.Z - s.bounds.Min.Z) / gridCell))
	return cell{X: min(max(x, 0), cols-1), Z: min(max(z, 0), rows-1)}
}

func (s *Surface) cellCenter(c cell) common.Vec3 {
	return common.Vec3{
		X: s.bounds.Min.X + (float64(c.X)+0.5)*gridCell,
		Z: s.bounds.Min.Z + (float64(c.Z)+0.5)*gridCell,
	}
}

// aStar finds a 4-way path from start to goal on a cols x rows grid,
// inclusive of both ends. The start cell is never tested for blocking.
func aStar(start, goal cell, cols, rows int, blocked func(cell) bool, maxNodes int) []cell {
	if start == goal {
		return []cell{start}
	}
	if goal.X < 0 || goal.Z < 0 || goal.X >= cols || goal.Z >= rows {
		return nil
	}

	open := &openSet{}
	heap.Push(open, node{c: start, f: manhattan(start, goal)})
	cameFrom := make(map[cell]cell, 256)
	gScore := map[cell]float64{start: 0}
	closed := make(map[cell]bool, 256)

	for iterations := 0; open.Len() > 0 && iterations < maxNodes; iterations++ {
		current := heap.Pop(open).(node).c
		if current == goal {
			return reconstruct(cameFrom, start, goal)
		}
		if closed[current] {
			continue
		}
		closed[current] = true

		for _, d := range [4]cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			next := cell{X: current.X + d.X, Z: current.Z + d.Z}
			if next.X < 0 || next.Z < 0 || next.X >= cols || next.Z >= rows || closed[next] {
				continue
			}
			if blocked != nil && blocked(next) {
				continue
			}
			tentative := gScore[current] + 1
			if prev, seen := gScore[next]; seen && tentative >= prev {
				continue
			}
			cameFrom[next] = current
			gScore[next] = tentative
			heap.Push(open, node{c: next, f: tentative + manhattan(next, goal), h: manhattan(next, goal)})
		}
	}
	return nil
}

func reconstruct(cameFrom map[cell]cell, start, goal cell) []cell {
	path := []cell{goal}
	for c := goal; c != start; {
		prev, ok := cameFrom[c]
		if !ok {
			return nil
		}
		path = append(path, prev)
		c = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func manhattan(a, b cell) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Z-b.Z))
}

type node struct {
	c cell
	f float64
	h float64
}

// openSet is a min-heap on f, preferring nodes nearer the goal on ties.
type openSet []node

func (o openSet) Len() int { return len(o) }
func (o openSet) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}
	return o[i].h < o[j].h
}
func (o openSet) Swap(i, j int) { o[i], o[j] = o[j], o[i] }
func (o *openSet) Push(x any)   { *o = append(*o, x.(node)) }
func (o *openSet) Pop() any {
	old := *o
	n := old[len(old)-1]
	*o = old[:len(old)-1]
	return n
}

// pathLength is the walking distance from p through every waypoint.
func pathLength(p common.Vec3, waypoints []common.Vec3) float64 {
	total := 0.0
	for _, w := range waypoints {
		total += common.HorizontalDistance(p, w)
		p = w
	}
	return total
}
