package common

import "math"

// Vec3 is a world-space point or direction. Y is the vertical axis; the
// ground plane is X/Z.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns the unit vector, or the zero vector when v is too short
// to have a direction.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < 1e-9 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Flat drops the vertical component.
func (v Vec3) Flat() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

func Distance(a, b Vec3) float64 {
	return a.Sub(b).Len()
}

// HorizontalDistance measures on the ground plane only.
func HorizontalDistance(a, b Vec3) float64 {
	return math.Hypot(a.X-b.X, a.Z-b.Z)
}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func LerpVec(a, b Vec3, t float64) Vec3 {
	return Vec3{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t), Z: Lerp(a.Z, b.Z, t)}
}
