package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"

	"github.com/milk9111/wildlife/ai"
	"github.com/milk9111/wildlife/common"
	"github.com/milk9111/wildlife/ecs"
	"github.com/milk9111/wildlife/ecs/component"
	"github.com/milk9111/wildlife/prefabs"
	"github.com/milk9111/wildlife/script"
)

const (
	defaultPlayerHealth = 100
	defaultPlayerRadius = 0.5
)

// loadLevel builds the surface, the player and every spawn of the scene.
func (g *Game) loadLevel(scene prefabs.SceneSpec) error {
	surface, err := scene.Surface()
	if err != nil {
		return err
	}
	g.surface = surface

	if err := g.spawnPlayer(scene.Player); err != nil {
		return err
	}

	for _, sp := range scene.Spawns {
		spec, err := g.loadSpecies(sp.Species)
		if err != nil {
			return err
		}
		count := sp.Count
		if count <= 0 {
			count = 1
		}
		for i := 0; i < count; i++ {
			pos := ringPosition(sp.Position, sp.Spread, i, count)
			if err := g.spawnAnimal(sp.Species, spec, pos); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Game) loadSpecies(name string) (prefabs.SpeciesSpec, error) {
	if spec, ok := g.species[name]; ok {
		return spec, nil
	}
	spec, err := prefabs.LoadSpecies(name)
	if err != nil {
		return prefabs.SpeciesSpec{}, fmt.Errorf("load species %s: %w", name, err)
	}
	g.species[name] = spec
	return spec, nil
}

func (g *Game) spawnPlayer(spec prefabs.PlayerSpec) error {
	w := g.world
	e := ecs.CreateEntity(w)
	g.player = e

	radius := spec.Radius
	if radius <= 0 {
		radius = defaultPlayerRadius
	}
	health := spec.Health
	if health <= 0 {
		health = defaultPlayerHealth
	}
	var flash color.Color = colornames.Red
	if spec.Flash.Color != nil && spec.Flash.Color.Color != nil {
		flash = spec.Flash.Color.Color
	}

	g.target = &component.Target{Position: spec.Start, Present: true}
	g.health = component.NewPlayerHealth(health, spec.DamageCooldown, spec.Flash.Duration, flash)

	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{Radius: radius, Present: true}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: spec.Start}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.TargetComponent.Kind(), g.target); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.PlayerHealthComponent.Kind(), g.health); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.HighlightComponent.Kind(), &component.Highlight{}); err != nil {
		return err
	}
	if spec.Attack.Range > 0 && spec.Attack.Damage > 0 {
		combat := &component.PlayerCombat{Range: spec.Attack.Range, Damage: spec.Attack.Damage, Interval: spec.Attack.Interval}
		if err := ecs.Add(w, e, component.PlayerCombatComponent.Kind(), combat); err != nil {
			return err
		}
	}

	if spec.Script == "" {
		return nil
	}
	g.playerScript = spec.Script
	return g.loadPlayerScript()
}

func (g *Game) loadPlayerScript() error {
	src, err := prefabs.LoadScript(g.playerScript)
	if err != nil {
		return err
	}
	mover, err := script.NewMover(src)
	if err != nil {
		return fmt.Errorf("player script %s: %w", g.playerScript, err)
	}
	return ecs.Add(g.world, g.player, component.ScriptedMoverComponent.Kind(), &component.ScriptedMover{Mover: mover})
}

func (g *Game) spawnAnimal(species string, spec prefabs.SpeciesSpec, pos common.Vec3) error {
	cfg, err := spec.Config()
	if err != nil {
		return err
	}

	placed, ok := g.surface.SampleNearestWalkable(pos, spec.BodyRadius()*4+1, spec.BodyRadius())
	if !ok {
		g.log.WithFields(logrus.Fields{"species": species, "x": pos.X, "z": pos.Z}).Warn("no walkable spawn point, skipped")
		return nil
	}

	w := g.world
	e := ecs.CreateEntity(w)
	body := g.surface.NewAgent(placed, spec.BodyRadius(), spec.StoppingDistance())
	body.Data = e

	hl := &component.Highlight{}
	g.spawned++
	agent, err := ai.New(cfg, body,
		ai.WithTarget(g.target),
		ai.WithDamageSink(g.health),
		ai.WithCollector(g.inventory),
		ai.WithFeedback(hl),
		ai.WithRandom(ai.NewRandom(g.seed+uint64(g.spawned))),
		ai.WithLogger(g.log),
	)
	if err != nil {
		body.Remove()
		ecs.DestroyEntity(w, e)
		return fmt.Errorf("spawn %s: %w", species, err)
	}

	if err := ecs.Add(w, e, component.AnimalComponent.Kind(), &component.Animal{Agent: agent, Species: species}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.NavBodyComponent.Kind(), &component.NavBody{Agent: body}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: placed}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.HighlightComponent.Kind(), hl)
}

// ringPosition spreads count spawns evenly on a circle of radius spread.
func ringPosition(center common.Vec3, spread float64, i, count int) common.Vec3 {
	if count <= 1 || spread <= 0 {
		return center
	}
	angle := 2 * math.Pi * float64(i) / float64(count)
	return center.Add(common.Vec3{X: math.Cos(angle) * spread, Z: math.Sin(angle) * spread})
}
