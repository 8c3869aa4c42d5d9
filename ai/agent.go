package ai

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/milk9111/wildlife/common"
	"github.com/milk9111/wildlife/component"
	"github.com/milk9111/wildlife/logger"
	"github.com/sirupsen/logrus"
)

// Mode is a coarse summary of what an agent is doing.
type Mode int

const (
	ModeRoaming Mode = iota
	ModeWaiting
	ModeFleeing
	ModeCharging
	ModeJumping
	ModeReturning
	ModeRemoved
)

func (m Mode) String() string {
	switch m {
	case ModeRoaming:
		return "roaming"
	case ModeWaiting:
		return "waiting"
	case ModeFleeing:
		return "fleeing"
	case ModeCharging:
		return "charging"
	case ModeJumping:
		return "jumping"
	case ModeReturning:
		return "returning"
	case ModeRemoved:
		return "removed"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// State is the mutable runtime state of an agent.
type State struct {
	Position common.Vec3
	Facing   common.Vec3
	Speed    float64
	// RoamSpeed is the speed of the current roam tier.
	RoamSpeed float64

	Destination        common.Vec3
	DestinationTimeout float64

	Waiting   bool
	WaitTimer float64
	Returning bool

	Fleeing   bool
	FleeTimer float64

	Aggro       bool
	StrikeTimer float64
	Jump        *JumpState

	StuckTimer   float64
	LastPosition common.Vec3

	FlashTimer float64
	Removed    bool
}

// Agent is one roaming animal. It is driven by Tick and is not safe for
// concurrent use.
type Agent struct {
	id        string
	cfg       Config
	territory Territory
	state     State
	health    *component.Health

	nav       Navigator
	target    TargetProvider
	damage    DamageSink
	collector CollectionSink
	feedback  FeedbackSink
	rng       Random
	base      *logrus.Logger
	log       *logrus.Entry
}

// Option customizes an Agent in New.
type Option func(*Agent)

// WithTarget sets the tracked target. Without one threat response is off.
func WithTarget(t TargetProvider) Option {
	return func(a *Agent) { a.target = t }
}

// WithDamageSink sets where strike damage goes.
func WithDamageSink(d DamageSink) Option {
	return func(a *Agent) { a.damage = d }
}

// WithCollector sets the sink notified when the agent dies.
func WithCollector(c CollectionSink) Option {
	return func(a *Agent) { a.collector = c }
}

// WithFeedback sets the damage highlight sink.
func WithFeedback(f FeedbackSink) Option {
	return func(a *Agent) { a.feedback = f }
}

// WithRandom replaces the time-seeded random source. nil is ignored.
func WithRandom(r Random) Option {
	return func(a *Agent) {
		if r != nil {
			a.rng = r
		}
	}
}

// WithLogger replaces the shared logger. nil is ignored.
func WithLogger(l *logrus.Logger) Option {
	return func(a *Agent) {
		if l != nil {
			a.base = l
		}
	}
}

// WithID replaces the generated uuid. An empty id is ignored.
func WithID(id string) Option {
	return func(a *Agent) {
		if id != "" {
			a.id = id
		}
	}
}

// New spawns an agent at the navigator's current position and issues its
// first roam destination.
func New(cfg Config, nav Navigator, opts ...Option) (*Agent, error) {
	if nav == nil {
		return nil, ErrNilNavigator
	}
	cfg = cfg.withPolicy()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Agent{
		id:   uuid.NewString(),
		cfg:  cfg,
		nav:  nav,
		rng:  NewRandom(uint64(time.Now().UnixNano())),
		base: logger.Log,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log = a.base.WithFields(logrus.Fields{"animal": cfg.Name, "id": a.id})

	spawn := nav.Position()
	a.territory = cfg.territoryAt(spawn)
	a.state.Position = spawn
	a.state.LastPosition = spawn

	a.health = component.NewHealth(cfg.MaxHealth)
	a.health.OnDeath = func(*component.Health) { a.collect() }

	if a.target == nil {
		a.log.Warn("no target found, threat response disabled")
	}

	a.pickDestination()
	return a, nil
}

func (a *Agent) ID() string { return a.id }
func (a *Agent) Name() string { return a.cfg.Name }
func (a *Agent) Config() Config { return a.cfg }
func (a *Agent) Territory() Territory { return a.territory }
func (a *Agent) Removed() bool { return a.state.Removed }
func (a *Agent) Position() common.Vec3 { return a.state.Position }
func (a *Agent) Health() (current, max int) { return a.health.Current, a.health.Max }

// State returns a copy of the runtime state.
func (a *Agent) State() State {
	s := a.state
	if s.Jump != nil {
		j := *s.Jump
		s.Jump = &j
	}
	return s
}

func (a *Agent) Mode() Mode {
	s := a.state
	switch {
	case s.Removed:
		return ModeRemoved
	case s.Jump != nil:
		return ModeJumping
	case s.Aggro:
		return ModeCharging
	case s.Fleeing:
		return ModeFleeing
	case s.Returning:
		return ModeReturning
	case s.Waiting:
		return ModeWaiting
	default:
		return ModeRoaming
	}
}

// Tick advances the agent by dt seconds.
func (a *Agent) Tick(dt float64) {
	if a.state.Removed || dt < 0 {
		return
	}
	if !a.nav.OnSurface() {
		a.recoverSurface()
		return
	}
	a.observe(a.nav.Position())

	switch a.cfg.Variant {
	case Aggressive:
		a.tickAggressive(dt)
	default:
		a.tickPassive(dt)
	}

	a.tickFlash(dt)
}

// tickPassive runs stuck and edge overrides before the flee/roam decision.
func (a *Agent) tickPassive(dt float64) {
	if a.checkStuck(dt) {
		return
	}
	if a.territory.IsNearEdge(a.state.Position) {
		a.turnBack()
		return
	}
	if a.state.FleeTimer > 0 {
		a.state.FleeTimer -= dt
	}

	dist, targetPos := a.targetDistance()
	if dist < a.cfg.DetectionRadius {
		a.flee(targetPos)
		return
	}
	a.roam(dt)
}

// tickAggressive lets an active jump own the tick and folds the edge check
// into roaming.
func (a *Agent) tickAggressive(dt float64) {
	if a.state.Jump != nil {
		a.updateJump(dt)
		return
	}
	if a.checkStuck(dt) {
		return
	}
	if a.state.StrikeTimer > 0 {
		a.state.StrikeTimer -= dt
	}

	dist, targetPos := a.targetDistance()
	if dist < a.cfg.DetectionRadius {
		a.charge(dist, targetPos)
		return
	}
	if a.state.Aggro {
		a.state.Aggro = false
		a.setSpeed(a.state.RoamSpeed)
	}
	if a.territory.IsNearEdge(a.state.Position) {
		a.turnBack()
		return
	}
	a.roam(dt)
}

// Reconfigure swaps in new tuning and keeps runtime state. A nil Center
// keeps the current territory center.
func (a *Agent) Reconfigure(cfg Config) error {
	cfg = cfg.withPolicy()
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Variant != a.cfg.Variant {
		return fmt.Errorf("%w: cannot change %s agent to %s", ErrInvalidThreat, a.cfg.Variant, cfg.Variant)
	}

	center := a.territory.Center
	if cfg.Center != nil {
		center = *cfg.Center
	}
	a.cfg = cfg
	a.territory = Territory{Center: center, Radius: cfg.TerritoryRadius, Buffer: cfg.EdgeBuffer}

	a.health.Max = cfg.MaxHealth
	if a.health.Current > a.health.Max {
		a.health.Current = a.health.Max
	}

	switch {
	case a.state.Fleeing || a.state.Aggro:
		a.setSpeed(cfg.ThreatSpeed)
	default:
		a.pickRoamSpeed()
		a.setSpeed(a.state.RoamSpeed)
	}
	a.log.Info("reconfigured")
	return nil
}

// observe records the navigator's position and updates facing from
// horizontal motion.
func (a *Agent) observe(pos common.Vec3) {
	if step := pos.Sub(a.state.Position).Flat(); step.Len() > 1e-6 {
		a.state.Facing = step.Normalize()
	}
	a.state.Position = pos
}

// recoverSurface tries once per tick to put the agent back on the surface.
func (a *Agent) recoverSurface() {
	p, ok := a.nav.SampleNearestWalkable(a.nav.Position(), a.cfg.WarpRadius)
	if !ok {
		return
	}
	if a.nav.Warp(p) {
		a.state.Position = p
		a.state.LastPosition = p
	}
}

// targetDistance is +Inf when there is no target.
func (a *Agent) targetDistance() (float64, common.Vec3) {
	if a.target == nil {
		return math.Inf(1), common.Vec3{}
	}
	p, ok := a.target.TargetPosition()
	if !ok {
		return math.Inf(1), common.Vec3{}
	}
	return common.Distance(a.state.Position, p), p
}

func (a *Agent) setSpeed(v float64) {
	a.state.Speed = v
	a.nav.SetSpeed(v)
}

// pickRoamSpeed rolls a speed tier. Chances accumulate in order and the last
// tier is the default.
func (a *Agent) pickRoamSpeed() {
	tiers := a.cfg.SpeedTiers
	speed := tiers[len(tiers)-1].Speed
	if len(tiers) > 1 {
		roll := a.rng.Float64()
		cum := 0.0
		for _, tier := range tiers[:len(tiers)-1] {
			cum += tier.Chance
			if roll < cum {
				speed = tier.Speed
				break
			}
		}
	}
	a.state.RoamSpeed = speed
}
