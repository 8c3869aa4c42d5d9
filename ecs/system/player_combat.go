package system

import (
	"github.com/sirupsen/logrus"

	"github.com/milk9111/wildlife/ecs"
	"github.com/milk9111/wildlife/ecs/component"
	"github.com/milk9111/wildlife/logger"
	"github.com/milk9111/wildlife/nav"
)

// PlayerCombatSystem hits every animal within range of the player whenever
// the attack cooldown is clear, then restarts the cooldown.
type PlayerCombatSystem struct {
	surface *nav.Surface
	log     *logrus.Logger
}

func NewPlayerCombatSystem(surface *nav.Surface, log *logrus.Logger) *PlayerCombatSystem {
	if log == nil {
		log = logger.Log
	}
	return &PlayerCombatSystem{surface: surface, log: log}
}

func (s *PlayerCombatSystem) Update(w *ecs.World, _ float64) {
	if w == nil || s.surface == nil {
		return
	}

	ecs.ForEach3(w, component.PlayerCombatComponent.Kind(), component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pc *component.PlayerCombat, p *component.Player, t *component.Transform) {
		if !p.Present || ecs.Has(w, e, component.CooldownComponent.Kind()) {
			return
		}

		hits := 0
		for _, body := range s.surface.Nearby(t.Position, pc.Range) {
			target, ok := body.Data.(ecs.Entity)
			if !ok {
				continue
			}
			animal, ok := ecs.Get(w, target, component.AnimalComponent.Kind())
			if !ok || animal.Agent == nil || animal.Agent.Removed() {
				continue
			}
			animal.Agent.TakeDamage(pc.Damage)
			w.Events().Push(ecs.Event{Type: ecs.EventAnimalHit, Data: ecs.AnimalHit{Entity: target, Amount: pc.Damage}})
			hits++
		}
		if hits > 0 {
			s.log.WithField("hits", hits).Debug("proximity attack")
		}

		if pc.Interval > 0 {
			_ = ecs.Add(w, e, component.CooldownComponent.Kind(), &component.Cooldown{Remaining: pc.Interval})
		}
	})
}
