package ai

import "github.com/milk9111/wildlife/common"

// JumpState is an in-flight jump attack. Target is captured at launch and not
// re-tracked.
type JumpState struct {
	Start    common.Vec3
	Target   common.Vec3
	Elapsed  float64
	Duration float64
	Height   float64
	GroundY  float64
}

// Progress is elapsed/duration; the jump completes at 1.
func (j JumpState) Progress() float64 {
	return j.Elapsed / j.Duration
}

// JumpOffset is the height above ground at progress p of a jump peaking at h.
func JumpOffset(p, h float64) float64 {
	q := 2*p - 1
	return h * (1 - q*q)
}

func (a *Agent) launchJump(target common.Vec3) {
	s := &a.state
	s.Jump = &JumpState{
		Start:    s.Position,
		Target:   target,
		Duration: a.cfg.JumpDuration,
		Height:   a.cfg.JumpHeight,
		GroundY:  s.Position.Y,
	}
	s.StrikeTimer = a.cfg.Cooldown
	a.nav.Stop()
	a.log.WithField("target", target).Debug("jump attack")
}

// updateJump moves the agent along the arc. On landing it resumes path
// following and damages the target only if it is still close.
func (a *Agent) updateJump(dt float64) {
	s := &a.state
	j := s.Jump
	j.Elapsed += dt
	p := j.Progress()

	if dir := j.Target.Sub(j.Start).Flat().Normalize(); !dir.IsZero() {
		s.Facing = dir
	}

	if p >= 1 {
		landed := j.Target
		landed.Y = j.GroundY
		s.Jump = nil
		a.nav.SetPosition(landed)
		a.nav.Resume()
		s.Position = landed
		s.LastPosition = landed

		dist, _ := a.targetDistance()
		if dist < a.cfg.JumpHitRange {
			a.strike()
			return
		}
		a.log.Debug("jump attack missed")
		return
	}

	pos := common.LerpVec(j.Start, j.Target, p)
	pos.Y = j.GroundY + JumpOffset(p, j.Height)
	a.nav.SetPosition(pos)
	s.Position = pos
	s.LastPosition = pos
}
