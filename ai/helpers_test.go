package ai

import (
	"image/color"
	"math"

	"github.com/milk9111/wildlife/common"
	"github.com/milk9111/wildlife/logger"
)

// fakeNav is a scripted navigator. It never moves on its own; tests move it
// with arrive or by setting pos.
type fakeNav struct {
	pos       common.Vec3
	dest      common.Vec3
	hasPath   bool
	pending   bool
	remaining float64
	onSurface bool
	speed     float64
	stopped   bool

	sample       func(p common.Vec3, r float64) (common.Vec3, bool)
	destinations []common.Vec3
	warps        []common.Vec3
}

func newFakeNav(pos common.Vec3) *fakeNav {
	return &fakeNav{pos: pos, onSurface: true, remaining: math.Inf(1)}
}

func (f *fakeNav) SampleNearestWalkable(p common.Vec3, r float64) (common.Vec3, bool) {
	if f.sample != nil {
		return f.sample(p, r)
	}
	return p, true
}

func (f *fakeNav) SetDestination(p common.Vec3) bool {
	f.dest = p
	f.hasPath = true
	f.remaining = common.HorizontalDistance(f.pos, p)
	f.destinations = append(f.destinations, p)
	return true
}

func (f *fakeNav) PathPending() bool          { return f.pending }
func (f *fakeNav) HasPath() bool              { return f.hasPath }
func (f *fakeNav) RemainingDistance() float64 { return f.remaining }
func (f *fakeNav) OnSurface() bool            { return f.onSurface }
func (f *fakeNav) SetSpeed(v float64)         { f.speed = v }
func (f *fakeNav) Stop()                      { f.stopped = true }
func (f *fakeNav) Resume()                    { f.stopped = false }
func (f *fakeNav) Position() common.Vec3      { return f.pos }
func (f *fakeNav) SetPosition(p common.Vec3)  { f.pos = p }

func (f *fakeNav) Warp(p common.Vec3) bool {
	f.pos = p
	f.onSurface = true
	f.warps = append(f.warps, p)
	return true
}

// arrive teleports to the current destination.
func (f *fakeNav) arrive() {
	f.pos = f.dest
	f.remaining = 0
}

type constRandom float64

func (c constRandom) Float64() float64 { return float64(c) }

type movingTarget struct {
	pos     common.Vec3
	present bool
}

func (m *movingTarget) TargetPosition() (common.Vec3, bool) { return m.pos, m.present }

type damageLog struct{ hits []int }

func (d *damageLog) ApplyDamage(n int) { d.hits = append(d.hits, n) }

type collectLog struct {
	names  []string
	counts []int
}

func (c *collectLog) RegisterCollected(name string, n int) {
	c.names = append(c.names, name)
	c.counts = append(c.counts, n)
}

type highlightLog struct {
	set    []color.Color
	resets int
}

func (h *highlightLog) SetHighlight(c color.Color) { h.set = append(h.set, c) }
func (h *highlightLog) ResetHighlight()            { h.resets++ }

func origin() *common.Vec3 { return &common.Vec3{} }

func quiet() Option { return WithLogger(logger.Discard()) }
