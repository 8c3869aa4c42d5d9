package ai

import "github.com/milk9111/wildlife/common"

// Territory is a circular region on the ground plane. Points closer than
// Radius-Buffer are interior; points farther are near the edge. A point
// exactly on that circle is neither.
type Territory struct {
	Center common.Vec3
	Radius float64
	Buffer float64
}

func (t Territory) limit() float64 {
	return t.Radius - t.Buffer
}

func (t Territory) IsInterior(p common.Vec3) bool {
	return common.HorizontalDistance(p, t.Center) < t.limit()
}

func (t Territory) IsNearEdge(p common.Vec3) bool {
	return common.HorizontalDistance(p, t.Center) > t.limit()
}

// DirectionToCenter is the flat unit vector from p toward the center, zero
// at the center itself.
func (t Territory) DirectionToCenter(p common.Vec3) common.Vec3 {
	return t.Center.Sub(p).Flat().Normalize()
}
