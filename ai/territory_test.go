package ai

import (
	"testing"

	"github.com/milk9111/wildlife/common"
	"github.com/stretchr/testify/assert"
)

func TestTerritoryPredicates(t *testing.T) {
	terr := Territory{Radius: 40, Buffer: 5}

	tests := []struct {
		name     string
		p        common.Vec3
		interior bool
		nearEdge bool
	}{
		{"center", common.Vec3{}, true, false},
		{"just inside", common.Vec3{X: 34.9}, true, false},
		{"on the limit", common.Vec3{X: 35}, false, false},
		{"just outside", common.Vec3{X: 36}, false, true},
		{"diagonal outside", common.Vec3{X: 25, Z: 25}, false, true},
		{"height ignored", common.Vec3{Y: 100, Z: 30}, true, false},
		{"beyond radius", common.Vec3{Z: -50}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.interior, terr.IsInterior(tt.p))
			assert.Equal(t, tt.nearEdge, terr.IsNearEdge(tt.p))
		})
	}
}

func TestTerritoryOffsetCenter(t *testing.T) {
	terr := Territory{Center: common.Vec3{X: 100, Y: 3, Z: -20}, Radius: 10, Buffer: 2}

	assert.True(t, terr.IsInterior(common.Vec3{X: 107, Z: -20}))
	assert.True(t, terr.IsNearEdge(common.Vec3{X: 100, Z: -11}))

	dir := terr.DirectionToCenter(common.Vec3{X: 100, Y: 50, Z: -30})
	assert.InDelta(t, 0, dir.X, 1e-9)
	assert.InDelta(t, 0, dir.Y, 1e-9)
	assert.InDelta(t, 1, dir.Z, 1e-9)

	assert.True(t, terr.DirectionToCenter(terr.Center).IsZero())
}
