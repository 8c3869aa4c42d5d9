package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/milk9111/wildlife/ai"
	"github.com/milk9111/wildlife/ecs"
	"github.com/milk9111/wildlife/ecs/component"
	"github.com/milk9111/wildlife/ecs/system"
	"github.com/milk9111/wildlife/inventory"
	"github.com/milk9111/wildlife/logger"
	"github.com/milk9111/wildlife/nav"
	"github.com/milk9111/wildlife/prefabs"
)

// Options configures a headless run.
type Options struct {
	Scene string
	Seed  uint64
	// Watch reloads edited prefabs from ./prefabs while running.
	Watch bool
	Log   *logrus.Logger
}

// Game is one loaded scene and the systems that advance it.
type Game struct {
	frames int

	world     *ecs.World
	scheduler *ecs.Scheduler
	surface   *nav.Surface
	inventory *inventory.Inventory
	watcher   *prefabs.Watcher
	log       *logrus.Logger

	species      map[string]prefabs.SpeciesSpec
	player       ecs.Entity
	playerScript string
	target       *component.Target
	health       *component.PlayerHealth

	seed    uint64
	spawned int
	stats   Stats
}

// Stats counts what happened during a run.
type Stats struct {
	Frames       int
	Entities     int
	Spawned      int
	Removed      map[string]int
	AnimalHits   int
	PlayerHits   int
	PlayerDeaths int
	Reloads      int
}

func NewGame(opts Options) (*Game, error) {
	log := opts.Log
	if log == nil {
		log = logger.Log
	}
	scene, err := prefabs.LoadScene(opts.Scene)
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", opts.Scene, err)
	}

	g := &Game{
		world:     ecs.NewWorld(),
		inventory: inventory.New(),
		log:       log,
		species:   make(map[string]prefabs.SpeciesSpec),
		seed:      opts.Seed,
		stats:     Stats{Removed: make(map[string]int)},
	}
	if err := g.loadLevel(scene); err != nil {
		return nil, fmt.Errorf("scene %s: %w", scene.Name, err)
	}
	g.stats.Spawned = g.spawned

	g.scheduler = ecs.NewScheduler(
		system.NewScriptedTargetSystem(log),
		system.NewAnimalAISystem(log),
		system.NewNavigationSystem(g.surface),
		system.NewContactSystem(g.surface),
		system.NewPlayerCombatSystem(g.surface, log),
		system.NewPlayerHealthSystem(log),
		system.NewCooldownSystem(),
	)

	if opts.Watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.WithError(err).Warn("prefab watcher disabled")
		} else {
			g.watcher = w
		}
	}

	log.WithFields(logrus.Fields{"scene": scene.Name, "animals": g.spawned}).Info("scene loaded")
	return g, nil
}

// Update advances the simulation one tick of dt seconds.
func (g *Game) Update(dt float64) error {
	if dt <= 0 {
		return errors.New("dt must be positive")
	}
	g.frames++
	g.pollWatcher()
	g.scheduler.Update(g.world, dt)
	g.handleEvents()
	return nil
}

// Run advances ticks ticks, stopping early once every animal is gone.
func (g *Game) Run(ticks int, dt float64) error {
	for i := 0; i < ticks; i++ {
		if err := g.Update(dt); err != nil {
			return err
		}
		if g.AnimalCount() == 0 {
			g.log.WithField("frame", g.frames).Info("every animal collected")
			break
		}
	}
	return nil
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Inventory() *inventory.Inventory { return g.inventory }

func (g *Game) Stats() Stats {
	s := g.stats
	s.Frames = g.frames
	s.Entities = len(ecs.Entities(g.world))
	s.Removed = make(map[string]int, len(g.stats.Removed))
	for k, v := range g.stats.Removed {
		s.Removed[k] = v
	}
	return s
}

// AnimalCount is the number of animals not yet collected.
func (g *Game) AnimalCount() int {
	n := 0
	ecs.ForEach(g.world, component.AnimalComponent.Kind(), func(_ ecs.Entity, a *component.Animal) {
		if !a.Agent.Removed() {
			n++
		}
	})
	return n
}

// Modes counts live animals per behavior mode.
func (g *Game) Modes() map[ai.Mode]int {
	out := make(map[ai.Mode]int)
	ecs.ForEach(g.world, component.AnimalComponent.Kind(), func(_ ecs.Entity, a *component.Animal) {
		out[a.Agent.Mode()]++
	})
	return out
}

func (g *Game) handleEvents() {
	for _, evt := range g.world.Events().Drain() {
		switch evt.Type {
		case ecs.EventAnimalRemoved:
			if data, ok := evt.Data.(ecs.AnimalRemoved); ok {
				g.stats.Removed[data.Species]++
			}
		case ecs.EventAnimalHit:
			g.stats.AnimalHits++
		case ecs.EventPlayerHit:
			g.stats.PlayerHits++
		case ecs.EventPlayerDied:
			g.stats.PlayerDeaths++
		}
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		change, ok := g.watcher.Poll()
		if !ok {
			return
		}
		var err error
		switch change.Kind {
		case prefabs.SpecChange:
			err = g.reloadSpecies(change.Name())
		case prefabs.ScriptChange:
			if prefabs.Name(g.playerScript) == change.Name() {
				err = g.loadPlayerScript()
			}
		}
		if err != nil {
			g.log.WithError(err).WithField("path", change.Path).Error("prefab reload failed")
			continue
		}
		g.stats.Reloads++
	}
}

// reloadSpecies pushes a fresh tuning into every live animal of a species.
// Names that are not a loaded species are ignored.
func (g *Game) reloadSpecies(name string) error {
	if _, ok := g.species[name]; !ok {
		return nil
	}
	spec, err := prefabs.LoadSpecies(name)
	if err != nil {
		return err
	}
	cfg, err := spec.Config()
	if err != nil {
		return err
	}
	g.species[name] = spec

	var errs []error
	n := 0
	ecs.ForEach(g.world, component.AnimalComponent.Kind(), func(_ ecs.Entity, a *component.Animal) {
		if a.Species != name {
			return
		}
		if err := a.Agent.Reconfigure(cfg); err != nil {
			errs = append(errs, err)
			return
		}
		n++
	})
	g.log.WithFields(logrus.Fields{"species": name, "animals": n}).Info("prefab reloaded")
	return errors.Join(errs...)
}

// report writes the end-of-run summary.
func (g *Game) report() {
	s := g.Stats()
	g.log.WithFields(logrus.Fields{
		"frames":        s.Frames,
		"entities":      s.Entities,
		"spawned":       s.Spawned,
		"alive":         g.AnimalCount(),
		"animal_hits":   s.AnimalHits,
		"player_hits":   s.PlayerHits,
		"player_deaths": s.PlayerDeaths,
		"player_health": g.health.Pool.Current,
	}).Info("run finished")

	modes := g.Modes()
	keys := make([]ai.Mode, 0, len(modes))
	for m := range modes {
		keys = append(keys, m)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, m := range keys {
		fmt.Printf("%-10s %d\n", m, modes[m])
	}

	fmt.Println("inventory:")
	for _, item := range g.inventory.Items() {
		fmt.Printf("  %-10s %d\n", item.Name, item.Count)
	}
}
