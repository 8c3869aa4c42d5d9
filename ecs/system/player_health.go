package system

import (
	"github.com/sirupsen/logrus"

	"github.com/milk9111/wildlife/ecs"
	"github.com/milk9111/wildlife/ecs/component"
	"github.com/milk9111/wildlife/logger"
)

// PlayerHealthSystem reports the hits the player took this tick, flashes
// its highlight and runs down the damage cooldown.
type PlayerHealthSystem struct {
	log *logrus.Logger
}

func NewPlayerHealthSystem(log *logrus.Logger) *PlayerHealthSystem {
	if log == nil {
		log = logger.Log
	}
	return &PlayerHealthSystem{log: log}
}

func (s *PlayerHealthSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.PlayerHealthComponent.Kind(), func(e ecs.Entity, ph *component.PlayerHealth) {
		hl, hasHighlight := ecs.Get(w, e, component.HighlightComponent.Kind())

		for _, hit := range ph.DrainHits() {
			s.log.WithFields(logrus.Fields{"damage": hit.Amount, "health": hit.Health, "fraction": hit.Fraction}).
				Infof("player took %d damage, health %d/%d", hit.Amount, hit.Health, ph.Pool.Max)
			w.Events().Push(ecs.Event{Type: ecs.EventPlayerHit, Data: ecs.PlayerHit{Amount: hit.Amount, Health: hit.Health}})
			if hit.Fatal {
				s.log.Info("player died, health restored")
				w.Events().Push(ecs.Event{Type: ecs.EventPlayerDied})
			}
			if hasHighlight {
				hl.Flash(ph.FlashColor, ph.FlashDuration)
			}
		}

		ph.Pool.Tick(dt)

		if hasHighlight && hl.Remaining > 0 {
			hl.Remaining -= dt
			if hl.Remaining <= 0 {
				hl.ResetHighlight()
			}
		}
	})
}
