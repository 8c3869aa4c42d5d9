package ai

import "github.com/milk9111/wildlife/common"

// checkStuck accumulates time spent barely moving outside of waiting and
// jumping. Past the threshold it forces a new destination and reports true.
func (a *Agent) checkStuck(dt float64) bool {
	s := &a.state
	moved := common.Distance(s.Position, s.LastPosition)
	s.LastPosition = s.Position

	if moved >= a.cfg.StuckEpsilon || s.Waiting || s.Jump != nil {
		s.StuckTimer = 0
		return false
	}

	s.StuckTimer += dt
	if s.StuckTimer <= a.cfg.StuckThreshold {
		return false
	}
	s.StuckTimer = 0
	a.log.Debug("stuck, picking a new destination")
	a.pickDestination()
	return true
}
