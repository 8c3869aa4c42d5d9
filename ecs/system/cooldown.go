package system

import (
	"github.com/milk9111/wildlife/ecs"
	"github.com/milk9111/wildlife/ecs/component"
)

// CooldownSystem counts cooldowns down and removes the finished ones.
type CooldownSystem struct{}

func NewCooldownSystem() *CooldownSystem {
	return &CooldownSystem{}
}

func (s *CooldownSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.CooldownComponent.Kind(), func(e ecs.Entity, cd *component.Cooldown) {
		cd.Remaining -= dt
		if cd.Remaining <= 0 {
			_ = ecs.Remove(w, e, component.CooldownComponent.Kind())
		}
	})
}
