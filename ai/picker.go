package ai

import "github.com/milk9111/wildlife/common"

// Sampler finds walkable points on a navigation surface.
type Sampler interface {
	SampleNearestWalkable(p common.Vec3, radius float64) (common.Vec3, bool)
}

// PickParams bounds one destination search.
type PickParams struct {
	Territory   Territory
	MinDistance float64
	MaxDistance float64
	MaxAttempts int
	Timeout     float64
}

// Destination is a confirmed roam target. Fallback marks the unconditional
// center fallback, which may lie outside the interior.
type Destination struct {
	Point    common.Vec3
	Timeout  float64
	Fallback bool
}

// request is one candidate under evaluation.
type request struct {
	point    common.Vec3
	radius   float64
	interior bool
}

// PickDestination samples up to MaxAttempts candidates in the annulus
// [MinDistance, MaxDistance] around from, redirecting out-of-territory
// candidates toward the center. It falls back to the walkable point nearest
// the center and returns false only when that fails too.
func PickDestination(s Sampler, rng Random, from common.Vec3, p PickParams) (Destination, bool) {
	t := p.Territory
	for range p.MaxAttempts {
		dist := randRange(rng, p.MinDistance, p.MaxDistance)
		req := request{
			point:  from.Add(randDirection(rng).Scale(dist)),
			radius: p.MaxDistance,
		}
		if !t.IsInterior(req.point) {
			req.point = from.Add(t.DirectionToCenter(from).Scale(dist))
		}

		walkable, ok := s.SampleNearestWalkable(req.point, req.radius)
		if !ok {
			continue
		}
		req.interior = t.IsInterior(walkable)
		if req.interior {
			return Destination{Point: walkable, Timeout: p.Timeout}, true
		}
	}

	center, ok := s.SampleNearestWalkable(t.Center, t.Radius)
	if !ok {
		return Destination{}, false
	}
	return Destination{Point: center, Timeout: p.Timeout, Fallback: true}, true
}
