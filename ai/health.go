package ai

import "github.com/sirupsen/logrus"

// TakeDamage subtracts amount from health and flashes the highlight. At zero
// health the agent is collected once and removed; later damage is ignored.
// Non-positive amounts are ignored.
func (a *Agent) TakeDamage(amount int) {
	if a.state.Removed || amount <= 0 {
		return
	}

	s := &a.state
	s.FlashTimer = a.cfg.FlashDuration
	if a.feedback != nil {
		a.feedback.SetHighlight(a.cfg.FlashColor)
	}

	if !a.health.ApplyDamage(amount) {
		return
	}
	a.log.WithFields(logrus.Fields{
		"damage": amount,
		"health": a.health.Current,
	}).Infof("took %d damage, health %d", amount, a.health.Current)
}

// collect notifies the collection sink and removes the agent. It runs from
// the health death hook, which fires once.
func (a *Agent) collect() {
	if a.collector != nil {
		a.collector.RegisterCollected(a.cfg.Name, 1)
		a.log.Infof("%s collected", a.cfg.Name)
	} else {
		a.log.Warn("no collection sink, removing without collecting")
	}

	a.state.Removed = true
	a.state.Jump = nil
	a.nav.Stop()
	if a.feedback != nil {
		a.feedback.ResetHighlight()
	}
}

// tickFlash restores the base appearance once the flash runs out.
func (a *Agent) tickFlash(dt float64) {
	s := &a.state
	if s.FlashTimer <= 0 {
		return
	}
	s.FlashTimer -= dt
	if s.FlashTimer <= 0 && a.feedback != nil {
		a.feedback.ResetHighlight()
	}
}
