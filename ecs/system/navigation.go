package system

import (
	"github.com/milk9111/wildlife/ecs"
	"github.com/milk9111/wildlife/ecs/component"
	"github.com/milk9111/wildlife/nav"
)

// NavigationSystem advances the surface and copies body positions back to
// transforms.
type NavigationSystem struct {
	surface *nav.Surface
}

func NewNavigationSystem(surface *nav.Surface) *NavigationSystem {
	return &NavigationSystem{surface: surface}
}

func (s *NavigationSystem) Update(w *ecs.World, dt float64) {
	if w == nil || s.surface == nil {
		return
	}

	s.surface.Step(dt)

	ecs.ForEach2(w, component.NavBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, body *component.NavBody, t *component.Transform) {
		if body.Agent != nil {
			t.Position = body.Agent.Position()
		}
	})
}
