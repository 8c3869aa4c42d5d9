package system

import (
	"github.com/sirupsen/logrus"

	"github.com/milk9111/wildlife/ecs"
	"github.com/milk9111/wildlife/ecs/component"
	"github.com/milk9111/wildlife/logger"
)

// AnimalAISystem ticks every agent and destroys the entities of collected
// animals.
type AnimalAISystem struct {
	log *logrus.Logger
}

func NewAnimalAISystem(log *logrus.Logger) *AnimalAISystem {
	if log == nil {
		log = logger.Log
	}
	return &AnimalAISystem{log: log}
}

func (s *AnimalAISystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.AnimalComponent.Kind(), func(e ecs.Entity, a *component.Animal) {
		if a.Agent == nil {
			return
		}
		a.Agent.Tick(dt)
		if !a.Agent.Removed() {
			return
		}

		if body, ok := ecs.Get(w, e, component.NavBodyComponent.Kind()); ok && body.Agent != nil {
			body.Agent.Remove()
		}
		w.Events().Push(ecs.Event{
			Type: ecs.EventAnimalRemoved,
			Data: ecs.AnimalRemoved{Entity: e, Species: a.Species, Name: a.Agent.Name()},
		})
		s.log.WithFields(logrus.Fields{"entity": e.String(), "species": a.Species}).Debug("animal removed")
		ecs.DestroyEntity(w, e)
	})
}
