package system

import (
	"github.com/milk9111/wildlife/ecs"
	"github.com/milk9111/wildlife/ecs/component"
	"github.com/milk9111/wildlife/nav"
)

// ContactSystem reports new player/animal collisions to the animal's agent.
// A contact fires once when it starts, not every tick it lasts.
type ContactSystem struct {
	surface *nav.Surface
}

func NewContactSystem(surface *nav.Surface) *ContactSystem {
	return &ContactSystem{surface: surface}
}

func (s *ContactSystem) Update(w *ecs.World, _ float64) {
	if w == nil || s.surface == nil {
		return
	}

	player, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	seen := make(map[uint64]bool)
	if p.Present {
		for _, body := range s.surface.Contacts(t.Position, p.Radius) {
			e, ok := body.Data.(ecs.Entity)
			if !ok {
				continue
			}
			animal, ok := ecs.Get(w, e, component.AnimalComponent.Kind())
			if !ok || animal.Agent == nil {
				continue
			}
			if p.Touch(uint64(e), seen) {
				animal.Agent.OnContact()
			}
		}
	}
	p.EndContacts(seen)
}
