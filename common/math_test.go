package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHorizontalDistanceIgnoresHeight(t *testing.T) {
	cases := []struct {
		name string
		a, b Vec3
		want float64
	}{
		{"same_point", Vec3{1, 2, 3}, Vec3{1, 2, 3}, 0},
		{"height_only", Vec3{0, 0, 0}, Vec3{0, 10, 0}, 0},
		{"three_four_five", Vec3{0, 5, 0}, Vec3{3, -2, 4}, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, HorizontalDistance(c.a, c.b), 1e-9)
		})
	}
}

func TestNormalize(t *testing.T) {
	n := Vec3{X: 3, Z: 4}.Normalize()
	assert.InDelta(t, 1.0, n.Len(), 1e-9)
	assert.InDelta(t, 0.6, n.X, 1e-9)

	assert.True(t, Vec3{}.Normalize().IsZero(), "zero vector has no direction")
}

func TestLerpVec(t *testing.T) {
	a := Vec3{X: 0, Y: 0, Z: 0}
	b := Vec3{X: 10, Y: -4, Z: 2}
	assert.Equal(t, a, LerpVec(a, b, 0))
	assert.Equal(t, b, LerpVec(a, b, 1))
	mid := LerpVec(a, b, 0.5)
	assert.InDelta(t, 5, mid.X, 1e-9)
	assert.InDelta(t, -2, mid.Y, 1e-9)
	assert.False(t, math.IsNaN(mid.Z))
}
