package ai

import (
	"math"
	"math/rand/v2"

	"github.com/milk9111/wildlife/common"
)

// Random is the only source of randomness an agent uses. Float64 returns a
// value in [0,1).
type Random interface {
	Float64() float64
}

// NewRandom returns a seeded source so runs can be replayed.
func NewRandom(seed uint64) Random {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func randRange(r Random, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

// randDirection is a uniformly random unit vector on the ground plane.
func randDirection(r Random) common.Vec3 {
	angle := r.Float64() * 2 * math.Pi
	return common.Vec3{X: math.Cos(angle), Z: math.Sin(angle)}
}
