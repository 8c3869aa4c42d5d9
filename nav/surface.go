// Package nav is a small navigation surface for headless runs. The ground
// plane X/Z maps onto chipmunk's X/Y; obstacles are static boxes and agents
// are kinematic circles.
package nav

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/wildlife/common"
)

var ErrInvalidBounds = errors.New("nav: invalid bounds")

const (
	catObstacle uint = 1 << iota
	catAnimal
)

var (
	obstacleFilter = cp.NewShapeFilter(cp.NO_GROUP, catObstacle, cp.ALL_CATEGORIES)
	animalFilter   = cp.NewShapeFilter(cp.NO_GROUP, catAnimal, cp.ALL_CATEGORIES)

	queryObstacles = cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, catObstacle)
	queryAnimals   = cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, catAnimal)
)

// sampleDirections is how many headings are tried on each search ring.
const sampleDirections = 16

// Box is an axis-aligned rectangle on the ground plane. Y is ignored.
type Box struct {
	Min common.Vec3 `yaml:"min"`
	Max common.Vec3 `yaml:"max"`
}

func (b Box) valid() bool {
	return b.Max.X > b.Min.X && b.Max.Z > b.Min.Z
}

func (b Box) contains(p common.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

func (b Box) clamp(p common.Vec3) common.Vec3 {
	return common.Vec3{
		X: math.Min(math.Max(p.X, b.Min.X), b.Max.X),
		Y: p.Y,
		Z: math.Min(math.Max(p.Z, b.Min.Z), b.Max.Z),
	}
}

func (b Box) bb() cp.BB {
	return cp.BB{L: b.Min.X, B: b.Min.Z, R: b.Max.X, T: b.Max.Z}
}

// Surface is the walkable ground: everything inside bounds that no obstacle
// covers.
type Surface struct {
	bounds Box
	space  *cp.Space
	agents []*Agent
}

// NewSurface builds the static collision geometry.
func NewSurface(bounds Box, obstacles []Box) (*Surface, error) {
	if !bounds.valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBounds, bounds)
	}

	s := &Surface{bounds: bounds, space: cp.NewSpace()}
	for i, o := range obstacles {
		if !o.valid() {
			return nil, fmt.Errorf("%w: obstacle %d %v", ErrInvalidBounds, i, o)
		}
		shape := cp.NewBox2(s.space.StaticBody, o.bb(), 0)
		shape.SetFilter(obstacleFilter)
		s.space.AddShape(shape)
	}
	return s, nil
}

func (s *Surface) Bounds() Box { return s.bounds }

// Walkable reports whether a body of the given clearance fits at p.
func (s *Surface) Walkable(p common.Vec3, clearance float64) bool {
	if !s.bounds.contains(p) {
		return false
	}
	hit := s.space.PointQueryNearest(toCP(p), math.Max(clearance, 0), queryObstacles)
	return hit.Shape == nil
}

// SampleNearestWalkable searches outward from p in rings up to radius and
// returns the first walkable ground point.
func (s *Surface) SampleNearestWalkable(p common.Vec3, radius, clearance float64) (common.Vec3, bool) {
	p = p.Flat()
	if s.Walkable(p, clearance) {
		return p, true
	}
	if c := s.bounds.clamp(p); common.HorizontalDistance(c, p) <= radius && s.Walkable(c, clearance) {
		return c, true
	}
	if radius <= 0 {
		return common.Vec3{}, false
	}

	step := math.Max(radius/8, 0.25)
	for r := step; r <= radius+1e-9; r += step {
		for k := range sampleDirections {
			angle := 2 * math.Pi * float64(k) / sampleDirections
			c := common.Vec3{X: p.X + r*math.Cos(angle), Z: p.Z + r*math.Sin(angle)}
			if s.Walkable(c, clearance) {
				return c, true
			}
		}
	}
	return common.Vec3{}, false
}

// Clear reports whether a body of the given radius can travel straight from
// a to b without touching an obstacle.
func (s *Surface) Clear(a, b common.Vec3, radius float64) bool {
	if !s.bounds.contains(b) {
		return false
	}
	hit := s.space.SegmentQueryFirst(toCP(a), toCP(b), radius, queryObstacles)
	return hit.Shape == nil
}

// Step advances every agent then refreshes the collision index.
func (s *Surface) Step(dt float64) {
	if dt <= 0 {
		return
	}
	for _, a := range s.agents {
		a.step(dt)
	}
	s.space.Step(dt)
}

// Contacts returns the agents whose body touches a circle of radius r at p.
func (s *Surface) Contacts(p common.Vec3, r float64) []*Agent {
	var out []*Agent
	at := toCP(p)
	s.space.BBQuery(cp.NewBBForCircle(at, r), queryAnimals, func(shape *cp.Shape, _ interface{}) {
		a, ok := shape.UserData.(*Agent)
		if !ok || a.removed {
			return
		}
		if shape.PointQuery(at).Distance <= r {
			out = append(out, a)
		}
	}, nil)
	return out
}

// Nearby returns the agents whose center lies within r of p on the ground
// plane.
func (s *Surface) Nearby(p common.Vec3, r float64) []*Agent {
	var out []*Agent
	s.space.BBQuery(cp.NewBBForCircle(toCP(p), r), queryAnimals, func(shape *cp.Shape, _ interface{}) {
		a, ok := shape.UserData.(*Agent)
		if !ok || a.removed {
			return
		}
		if common.HorizontalDistance(a.pos, p) <= r {
			out = append(out, a)
		}
	}, nil)
	return out
}

func (s *Surface) remove(a *Agent) {
	for i, other := range s.agents {
		if other == a {
			s.agents = append(s.agents[:i], s.agents[i+1:]...)
			break
		}
	}
	s.space.RemoveShape(a.shape)
	s.space.RemoveBody(a.body)
}

func toCP(p common.Vec3) cp.Vector {
	return cp.Vector{X: p.X, Y: p.Z}
}
