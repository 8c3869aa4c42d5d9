package nav

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/wildlife/common"
)

// Agent follows planned paths across a Surface. Destinations resolve on the
// next Step, so a path is pending for exactly one step.
type Agent struct {
	surface  *Surface
	body     *cp.Body
	shape    *cp.Shape
	radius   float64
	stopping float64

	pos       common.Vec3
	dest      common.Vec3
	waypoints []common.Vec3
	speed     float64
	remaining float64
	pending   bool
	hasPath   bool
	stopped   bool
	onSurface bool
	removed   bool

	// Data is an opaque owner handle, usually an entity.
	Data any
}

// NewAgent places a body of the given radius at pos. stopping is how close
// the agent gets to its destination before it stops.
func (s *Surface) NewAgent(pos common.Vec3, radius, stopping float64) *Agent {
	a := &Agent{
		surface:   s,
		radius:    radius,
		stopping:  stopping,
		pos:       pos,
		remaining: math.Inf(1),
	}
	a.body = s.space.AddBody(cp.NewKinematicBody())
	a.body.SetPosition(toCP(pos))
	a.shape = cp.NewCircle(a.body, radius, cp.Vector{})
	a.shape.SetFilter(animalFilter)
	a.shape.UserData = a
	s.space.AddShape(a.shape)
	a.onSurface = s.Walkable(pos, 0)

	s.agents = append(s.agents, a)
	return a
}

func (a *Agent) SampleNearestWalkable(p common.Vec3, radius float64) (common.Vec3, bool) {
	return a.surface.SampleNearestWalkable(p, radius, a.radius)
}

func (a *Agent) SetDestination(p common.Vec3) bool {
	if a.removed {
		return false
	}
	a.dest = p.Flat()
	a.pending = true
	a.hasPath = false
	a.waypoints = nil
	return true
}

func (a *Agent) PathPending() bool          { return a.pending }
func (a *Agent) HasPath() bool              { return a.hasPath }
func (a *Agent) RemainingDistance() float64 { return a.remaining }
func (a *Agent) OnSurface() bool            { return a.onSurface }
func (a *Agent) Speed() float64             { return a.speed }
func (a *Agent) SetSpeed(v float64)         { a.speed = v }
func (a *Agent) Stop()                      { a.stopped = true }
func (a *Agent) Resume()                    { a.stopped = false }
func (a *Agent) Position() common.Vec3      { return a.pos }
func (a *Agent) Destination() common.Vec3   { return a.dest }

// Warp teleports onto walkable ground and drops the current path.
func (a *Agent) Warp(p common.Vec3) bool {
	if a.removed || !a.surface.Walkable(p, 0) {
		return false
	}
	a.place(p)
	a.onSurface = true
	a.pending = false
	a.hasPath = false
	a.waypoints = nil
	a.remaining = math.Inf(1)
	return true
}

func (a *Agent) SetPosition(p common.Vec3) {
	a.place(p)
}

// Remove takes the agent off the surface. It is idempotent.
func (a *Agent) Remove() {
	if a.removed {
		return
	}
	a.removed = true
	a.surface.remove(a)
}

func (a *Agent) place(p common.Vec3) {
	a.pos = p
	a.body.SetPosition(toCP(p))
}

func (a *Agent) step(dt float64) {
	a.onSurface = a.surface.Walkable(a.pos.Flat(), 0)

	if a.pending {
		a.pending = false
		a.waypoints = a.surface.plan(a.pos, a.dest, a.radius)
		a.hasPath = a.waypoints != nil
		a.remaining = math.Inf(1)
		if a.hasPath {
			a.remaining = pathLength(a.pos, a.waypoints)
		}
	}
	if !a.hasPath || a.stopped || !a.onSurface {
		return
	}

	pos := a.pos
	budget := a.speed * dt
	for budget > 0 && len(a.waypoints) > 0 {
		to := a.waypoints[0].Sub(pos).Flat()
		dist := to.Len()
		last := len(a.waypoints) == 1
		if last {
			dist -= a.stopping
			if dist <= 0 {
				break
			}
		} else if budget >= dist {
			pos.X, pos.Z = a.waypoints[0].X, a.waypoints[0].Z
			a.waypoints = a.waypoints[1:]
			budget -= dist
			continue
		}
		travel := math.Min(budget, dist)
		next := pos.Add(to.Normalize().Scale(travel))
		next.Y = pos.Y
		pos = next
		break
	}
	if pos != a.pos {
		a.place(a.surface.bounds.clamp(pos))
	}
	a.remaining = pathLength(a.pos, a.waypoints)
}
