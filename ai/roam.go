package ai

// roam alternates between moving to a destination and waiting there. A
// fleeing agent keeps fleeing until its cooldown has run out.
func (a *Agent) roam(dt float64) {
	s := &a.state
	if s.Fleeing {
		if s.FleeTimer > 0 {
			return
		}
		s.Fleeing = false
		a.pickRoamSpeed()
		a.setSpeed(s.RoamSpeed)
	}

	s.DestinationTimeout -= dt

	needsDestination := false
	switch {
	case !a.nav.PathPending() && a.nav.RemainingDistance() <= a.cfg.StoppingDistance+arrivalSlack:
		if !s.Waiting {
			s.Waiting = true
			s.Returning = false
			s.WaitTimer = randRange(a.rng, a.cfg.MinWait, a.cfg.MaxWait)
			break
		}
		s.WaitTimer -= dt
		if s.WaitTimer <= 0 {
			s.Waiting = false
			needsDestination = true
		}
	case !a.nav.HasPath() && !a.nav.PathPending():
		needsDestination = true
	case s.DestinationTimeout <= 0:
		needsDestination = true
	}

	if needsDestination {
		a.pickDestination()
	}
}

// pickDestination ends any wait, re-rolls the roam speed and sends the agent
// to a fresh destination. A fleeing or charging agent keeps its threat speed.
// Without a destination the agent holds position.
func (a *Agent) pickDestination() {
	a.state.Waiting = false
	a.pickRoamSpeed()
	if !a.state.Fleeing && !a.state.Aggro {
		a.setSpeed(a.state.RoamSpeed)
	}

	dest, ok := PickDestination(a.nav, a.rng, a.state.Position, PickParams{
		Territory:   a.territory,
		MinDistance: a.cfg.MinRoamDistance,
		MaxDistance: a.cfg.MaxRoamDistance,
		MaxAttempts: a.cfg.MaxAttempts,
		Timeout:     a.cfg.DestinationTimeout,
	})
	if !ok {
		a.log.Debug("no walkable destination, holding position")
		return
	}
	if dest.Fallback {
		a.log.Debug("destination search exhausted, heading to territory center")
	}
	a.nav.SetDestination(dest.Point)
	a.state.Destination = dest.Point
	a.state.DestinationTimeout = dest.Timeout
	a.state.Returning = false
}

// turnBack heads back toward the territory center with a little lateral
// jitter. It clears waiting and threat flags.
func (a *Agent) turnBack() {
	s := &a.state
	s.Waiting = false
	s.Fleeing = false
	s.Aggro = false
	a.pickRoamSpeed()
	a.setSpeed(s.RoamSpeed)

	j := a.cfg.EdgeJitter
	dir := a.territory.DirectionToCenter(s.Position)
	dir.X += randRange(a.rng, -j, j)
	dir.Z += randRange(a.rng, -j, j)
	dir = dir.Normalize()

	dist := randRange(a.rng, a.cfg.MinRoamDistance, a.cfg.MaxRoamDistance)
	p, ok := a.nav.SampleNearestWalkable(s.Position.Add(dir.Scale(dist)), a.cfg.MaxRoamDistance)
	if !ok {
		return
	}
	a.nav.SetDestination(p)
	s.Destination = p
	s.DestinationTimeout = a.cfg.DestinationTimeout
	s.Returning = true
	a.log.WithField("destination", p).Debug("near territory edge, turning back")
}
