package ai

import (
	"image/color"

	"github.com/milk9111/wildlife/common"
)

// Navigator is the pathfinding handle an agent drives. The agent owns no
// pathfinding state; everything path related is delegated here.
type Navigator interface {
	// SampleNearestWalkable returns the closest walkable point within radius.
	SampleNearestWalkable(p common.Vec3, radius float64) (common.Vec3, bool)
	SetDestination(p common.Vec3) bool
	PathPending() bool
	HasPath() bool
	RemainingDistance() float64
	OnSurface() bool
	Warp(p common.Vec3) bool
	SetSpeed(v float64)
	Stop()
	Resume()
	Position() common.Vec3
	// SetPosition moves the body directly while path following is stopped.
	SetPosition(p common.Vec3)
}

// TargetProvider reports the tracked entity's position, if it exists.
type TargetProvider interface {
	TargetPosition() (common.Vec3, bool)
}

// DamageSink receives strikes that land on the target.
type DamageSink interface {
	ApplyDamage(amount int)
}

// CollectionSink is notified once when an agent dies.
type CollectionSink interface {
	RegisterCollected(name string, count int)
}

// FeedbackSink shows a highlight colour. Calls are fire-and-forget.
type FeedbackSink interface {
	SetHighlight(c color.Color)
	ResetHighlight()
}

// TargetFunc adapts a function to TargetProvider.
type TargetFunc func() (common.Vec3, bool)

func (f TargetFunc) TargetPosition() (common.Vec3, bool) { return f() }

// DamageFunc adapts a function to DamageSink.
type DamageFunc func(amount int)

func (f DamageFunc) ApplyDamage(amount int) { f(amount) }
