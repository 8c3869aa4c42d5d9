package ai

import "github.com/milk9111/wildlife/common"

// flee runs away from the target. When straight away would leave the
// interior it blends in a pull toward the center, and failing that heads for
// the center itself. The cooldown is re-armed every tick the threat persists.
func (a *Agent) flee(target common.Vec3) {
	s := &a.state
	if !s.Fleeing {
		s.Fleeing = true
		s.Waiting = false
		s.Returning = false
	}
	if s.Speed != a.cfg.ThreatSpeed {
		a.setSpeed(a.cfg.ThreatSpeed)
	}
	s.FleeTimer = a.cfg.Cooldown

	away := s.Position.Sub(target).Flat().Normalize()
	fleePoint := s.Position.Add(away.Scale(a.cfg.FleeDistance))
	if a.territory.IsInterior(fleePoint) {
		if p, ok := a.nav.SampleNearestWalkable(fleePoint, a.cfg.FleeDistance); ok {
			a.goTo(p)
		}
		return
	}

	safe := away.Add(a.territory.DirectionToCenter(s.Position).Scale(2)).Normalize()
	p, ok := a.nav.SampleNearestWalkable(s.Position.Add(safe.Scale(a.cfg.FleeDistance)), a.cfg.FleeDistance)
	if !ok || !a.territory.IsInterior(p) {
		p = a.territory.Center
	}
	a.goTo(p)
}

// charge paths straight at the target every tick and launches a jump attack
// once in strike range with the strike cooldown spent.
func (a *Agent) charge(dist float64, target common.Vec3) {
	s := &a.state
	if !s.Aggro {
		s.Aggro = true
		s.Waiting = false
		s.Returning = false
	}
	if s.Speed != a.cfg.ThreatSpeed {
		a.setSpeed(a.cfg.ThreatSpeed)
	}
	a.goTo(target)

	if dist <= a.cfg.StrikeDistance && s.StrikeTimer <= 0 {
		a.launchJump(target)
	}
}

// OnContact handles a collision with the target. Charging aggressive agents
// deal strike damage on contact; it reports whether damage was issued.
func (a *Agent) OnContact() bool {
	if a.state.Removed || a.cfg.Variant != Aggressive || !a.state.Aggro {
		return false
	}
	return a.strike()
}

// strike sends strike damage to the damage sink.
func (a *Agent) strike() bool {
	if a.damage == nil {
		a.log.Warn("no damage sink, strike skipped")
		return false
	}
	a.damage.ApplyDamage(a.cfg.StrikeDamage)
	a.log.WithField("damage", a.cfg.StrikeDamage).Debug("attacked the target")
	return true
}

func (a *Agent) goTo(p common.Vec3) {
	a.nav.SetDestination(p)
	a.state.Destination = p
}
