package ai

import (
	"testing"

	"github.com/milk9111/wildlife/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identitySampler() *fakeNav { return newFakeNav(common.Vec3{}) }

func TestPickDestinationStaysInterior(t *testing.T) {
	params := PickParams{
		Territory:   Territory{Radius: 40, Buffer: 5},
		MinDistance: 3,
		MaxDistance: 10,
		MaxAttempts: 10,
		Timeout:     15,
	}
	starts := []common.Vec3{{}, {X: 20}, {X: -30, Z: 10}, {X: 34}, {Z: 34.9}}
	rng := NewRandom(42)

	for _, from := range starts {
		for range 200 {
			dest, ok := PickDestination(identitySampler(), rng, from, params)
			require.True(t, ok)
			assert.Equal(t, 15.0, dest.Timeout)
			if dest.Fallback {
				continue
			}
			assert.True(t, params.Territory.IsInterior(dest.Point), "from %v got %v", from, dest.Point)

			d := common.HorizontalDistance(from, dest.Point)
			assert.GreaterOrEqual(t, d, params.MinDistance-1e-9)
			assert.LessOrEqual(t, d, params.MaxDistance+1e-9)
		}
	}
}

func TestPickDestinationRedirectsTowardCenter(t *testing.T) {
	params := PickParams{
		Territory:   Territory{Radius: 40, Buffer: 5},
		MinDistance: 5,
		MaxDistance: 5,
		MaxAttempts: 1,
	}
	// angle 0 points along +X, straight out of the territory.
	dest, ok := PickDestination(identitySampler(), constRandom(0), common.Vec3{X: 33}, params)
	require.True(t, ok)
	assert.False(t, dest.Fallback)
	assert.InDelta(t, 28, dest.Point.X, 1e-9)
	assert.InDelta(t, 0, dest.Point.Z, 1e-9)
}

func TestPickDestinationFallback(t *testing.T) {
	center := common.Vec3{X: 5, Z: 5}
	params := PickParams{
		Territory:   Territory{Center: center, Radius: 40, Buffer: 5},
		MinDistance: 3,
		MaxDistance: 10,
		MaxAttempts: 10,
		Timeout:     15,
	}

	tests := []struct {
		name      string
		sample    func(p common.Vec3, r float64) (common.Vec3, bool)
		wantOK    bool
		wantPoint common.Vec3
		wantCalls int
	}{
		{
			name: "samples land outside",
			sample: func(p common.Vec3, r float64) (common.Vec3, bool) {
				if r == 40 {
					return center, true
				}
				return common.Vec3{X: 100}, true
			},
			wantOK:    true,
			wantPoint: center,
			wantCalls: 11,
		},
		{
			name: "nothing walkable",
			sample: func(common.Vec3, float64) (common.Vec3, bool) {
				return common.Vec3{}, false
			},
			wantOK:    false,
			wantCalls: 11,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			nav := identitySampler()
			nav.sample = func(p common.Vec3, r float64) (common.Vec3, bool) {
				calls++
				return tt.sample(p, r)
			}

			dest, ok := PickDestination(nav, NewRandom(1), common.Vec3{}, params)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantOK {
				assert.True(t, dest.Fallback)
				assert.Equal(t, tt.wantPoint, dest.Point)
			}
		})
	}
}
