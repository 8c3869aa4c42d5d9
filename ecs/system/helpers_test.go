package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/wildlife/ai"
	"github.com/milk9111/wildlife/common"
	"github.com/milk9111/wildlife/ecs"
	"github.com/milk9111/wildlife/ecs/component"
	"github.com/milk9111/wildlife/logger"
	"github.com/milk9111/wildlife/nav"
)

func newSurface(t *testing.T) *nav.Surface {
	t.Helper()
	s, err := nav.NewSurface(nav.Box{
		Min: common.Vec3{X: -30, Z: -30},
		Max: common.Vec3{X: 30, Z: 30},
	}, nil)
	require.NoError(t, err)
	return s
}

type animalOpts struct {
	target    ai.TargetProvider
	damage    ai.DamageSink
	collector ai.CollectionSink
}

func spawnAnimal(t *testing.T, w *ecs.World, s *nav.Surface, cfg ai.Config, pos common.Vec3, o animalOpts) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	body := s.NewAgent(pos, 0.6, 0.5)
	body.Data = e

	hl := &component.Highlight{}
	opts := []ai.Option{
		ai.WithRandom(ai.NewRandom(7)),
		ai.WithLogger(logger.Discard()),
		ai.WithFeedback(hl),
	}
	if o.target != nil {
		opts = append(opts, ai.WithTarget(o.target))
	}
	if o.damage != nil {
		opts = append(opts, ai.WithDamageSink(o.damage))
	}
	if o.collector != nil {
		opts = append(opts, ai.WithCollector(o.collector))
	}
	agent, err := ai.New(cfg, body, opts...)
	require.NoError(t, err)

	require.NoError(t, ecs.Add(w, e, component.AnimalComponent.Kind(), &component.Animal{Agent: agent, Species: cfg.Name}))
	require.NoError(t, ecs.Add(w, e, component.NavBodyComponent.Kind(), &component.NavBody{Agent: body}))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos}))
	require.NoError(t, ecs.Add(w, e, component.HighlightComponent.Kind(), hl))
	return e
}

func spawnPlayer(t *testing.T, w *ecs.World, pos common.Vec3) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{Radius: 0.6, Present: true}))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos}))
	require.NoError(t, ecs.Add(w, e, component.TargetComponent.Kind(), &component.Target{Position: pos, Present: true}))
	return e
}

func eventsOfType(evts []ecs.Event, typ string) []ecs.Event {
	var out []ecs.Event
	for _, e := range evts {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

type collected map[string]int

func (c collected) RegisterCollected(name string, n int) { c[name] += n }
