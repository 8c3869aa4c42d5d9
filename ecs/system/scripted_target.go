package system

import (
	"github.com/sirupsen/logrus"

	"github.com/milk9111/wildlife/ecs"
	"github.com/milk9111/wildlife/ecs/component"
	"github.com/milk9111/wildlife/logger"
)

// ScriptedTargetSystem steps every route script and moves its entity. The
// player's Target is refreshed so agents see this tick's position.
type ScriptedTargetSystem struct {
	log *logrus.Logger
}

func NewScriptedTargetSystem(log *logrus.Logger) *ScriptedTargetSystem {
	if log == nil {
		log = logger.Log
	}
	return &ScriptedTargetSystem{log: log}
}

func (s *ScriptedTargetSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.ScriptedMoverComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, sm *component.ScriptedMover, t *component.Transform) {
		if sm.Mover == nil || sm.Failed {
			return
		}
		pos, err := sm.Mover.Step(dt)
		if err != nil {
			sm.Failed = true
			s.log.WithError(err).WithField("entity", e.String()).Error("route script stopped")
			return
		}
		t.Position = pos
		present := sm.Mover.Present()

		if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
			p.Present = present
		}
		if target, ok := ecs.Get(w, e, component.TargetComponent.Kind()); ok {
			target.Position = pos
			target.Present = present
		}
	})
}
