package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	"github.com/milk9111/wildlife/ai"
	"github.com/milk9111/wildlife/common"
	"github.com/milk9111/wildlife/ecs"
	"github.com/milk9111/wildlife/ecs/component"
	"github.com/milk9111/wildlife/logger"
	"github.com/milk9111/wildlife/script"
)

func TestCooldownSystem(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.CooldownComponent.Kind(), &component.Cooldown{Remaining: 0.3}))

	sys := NewCooldownSystem()
	sys.Update(w, 0.2)
	assert.True(t, ecs.Has(w, e, component.CooldownComponent.Kind()))
	sys.Update(w, 0.2)
	assert.False(t, ecs.Has(w, e, component.CooldownComponent.Kind()))
}

func TestScriptedTargetSystem(t *testing.T) {
	cases := []struct {
		name        string
		src         string
		steps       int
		wantPos     common.Vec3
		wantPresent bool
		wantFailed  bool
	}{
		{"moves", "x = t * 2\nz = 1", 2, common.Vec3{X: 0.4, Z: 1}, true, false},
		{"hides", "x = 1\npresent = t < 0.15", 2, common.Vec3{X: 1}, false, false},
		{"runtime error stops", `x = "a" - 1`, 2, common.Vec3{X: 5}, true, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := script.NewMover([]byte(c.src))
			require.NoError(t, err)

			w := ecs.NewWorld()
			start := common.Vec3{X: 5}
			e := spawnPlayer(t, w, start)
			require.NoError(t, ecs.Add(w, e, component.ScriptedMoverComponent.Kind(), &component.ScriptedMover{Mover: m}))

			sys := NewScriptedTargetSystem(logger.Discard())
			for i := 0; i < c.steps; i++ {
				sys.Update(w, 0.1)
			}

			tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
			assert.InDelta(t, c.wantPos.X, tr.Position.X, 1e-9)
			assert.InDelta(t, c.wantPos.Z, tr.Position.Z, 1e-9)

			p, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
			assert.Equal(t, c.wantPresent, p.Present)
			target, _ := ecs.Get(w, e, component.TargetComponent.Kind())
			_, seen := target.TargetPosition()
			assert.Equal(t, c.wantPresent, seen)

			sm, _ := ecs.Get(w, e, component.ScriptedMoverComponent.Kind())
			assert.Equal(t, c.wantFailed, sm.Failed)
		})
	}
}

func TestNavigationSystemSyncsTransforms(t *testing.T) {
	w := ecs.NewWorld()
	s := newSurface(t)
	e := ecs.CreateEntity(w)
	body := s.NewAgent(common.Vec3{}, 0.5, 0.5)
	body.SetSpeed(2)
	require.True(t, body.SetDestination(common.Vec3{X: 10}))
	require.NoError(t, ecs.Add(w, e, component.NavBodyComponent.Kind(), &component.NavBody{Agent: body}))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}))

	NewNavigationSystem(s).Update(w, 1)

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	assert.InDelta(t, 2, tr.Position.X, 1e-9)
}

func TestAnimalAISystemRemovesCollected(t *testing.T) {
	w := ecs.NewWorld()
	s := newSurface(t)
	inv := collected{}
	deer := spawnAnimal(t, w, s, ai.PassiveDefaults("deer"), common.Vec3{X: 3}, animalOpts{collector: inv})
	other := spawnAnimal(t, w, s, ai.PassiveDefaults("deer"), common.Vec3{X: -3}, animalOpts{collector: inv})

	a, _ := ecs.Get(w, deer, component.AnimalComponent.Kind())
	a.Agent.TakeDamage(5)
	require.True(t, a.Agent.Removed())

	NewAnimalAISystem(logger.Discard()).Update(w, 0.1)

	assert.False(t, ecs.IsAlive(w, deer))
	assert.True(t, ecs.IsAlive(w, other))
	assert.Equal(t, 1, inv["deer"])
	assert.Empty(t, s.Nearby(common.Vec3{X: 3}, 1), "nav body removed")

	removed := eventsOfType(w.Events().Drain(), ecs.EventAnimalRemoved)
	require.Len(t, removed, 1)
	assert.Equal(t, deer, removed[0].Data.(ecs.AnimalRemoved).Entity)
}

func TestPlayerCombatSweep(t *testing.T) {
	w := ecs.NewWorld()
	s := newSurface(t)
	near := spawnAnimal(t, w, s, ai.PassiveDefaults("deer"), common.Vec3{X: 3}, animalOpts{})
	far := spawnAnimal(t, w, s, ai.AggressiveDefaults("wolf"), common.Vec3{X: 20}, animalOpts{})

	player := spawnPlayer(t, w, common.Vec3{})
	require.NoError(t, ecs.Add(w, player, component.PlayerCombatComponent.Kind(), &component.PlayerCombat{Range: 8, Damage: 100, Interval: 0.3}))

	sys := NewPlayerCombatSystem(s, logger.Discard())
	sys.Update(w, 0.1)

	nearAnimal, _ := ecs.Get(w, near, component.AnimalComponent.Kind())
	farAnimal, _ := ecs.Get(w, far, component.AnimalComponent.Kind())
	assert.True(t, nearAnimal.Agent.Removed())
	assert.False(t, farAnimal.Agent.Removed())
	assert.True(t, ecs.Has(w, player, component.CooldownComponent.Kind()))

	hits := eventsOfType(w.Events().Drain(), ecs.EventAnimalHit)
	require.Len(t, hits, 1)
	assert.Equal(t, near, hits[0].Data.(ecs.AnimalHit).Entity)

	// cooling down
	sys.Update(w, 0.1)
	assert.Zero(t, w.Events().Len())
}

func TestPlayerCombatSkipsHiddenPlayer(t *testing.T) {
	w := ecs.NewWorld()
	s := newSurface(t)
	deer := spawnAnimal(t, w, s, ai.PassiveDefaults("deer"), common.Vec3{X: 3}, animalOpts{})
	player := spawnPlayer(t, w, common.Vec3{})
	require.NoError(t, ecs.Add(w, player, component.PlayerCombatComponent.Kind(), &component.PlayerCombat{Range: 8, Damage: 100, Interval: 0.3}))
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	p.Present = false

	NewPlayerCombatSystem(s, logger.Discard()).Update(w, 0.1)

	a, _ := ecs.Get(w, deer, component.AnimalComponent.Kind())
	assert.False(t, a.Agent.Removed())
}

func TestContactSystemFiresOncePerContact(t *testing.T) {
	w := ecs.NewWorld()
	s := newSurface(t)
	player := spawnPlayer(t, w, common.Vec3{})
	ph := component.NewPlayerHealth(100, 0, 0.3, colornames.Red)
	require.NoError(t, ecs.Add(w, player, component.PlayerHealthComponent.Kind(), ph))
	target, _ := ecs.Get(w, player, component.TargetComponent.Kind())

	spawnAnimal(t, w, s, ai.AggressiveDefaults("wolf"), common.Vec3{X: 1}, animalOpts{target: target, damage: ph})

	// charge and launch the jump; no contact damage yet
	NewAnimalAISystem(logger.Discard()).Update(w, 0.01)
	require.Equal(t, 0, ph.Hits)

	contacts := NewContactSystem(s)
	contacts.Update(w, 0.01)
	assert.Equal(t, 1, ph.Hits)
	assert.Equal(t, 90, ph.Pool.Current)

	contacts.Update(w, 0.01)
	assert.Equal(t, 1, ph.Hits, "a lasting contact does not repeat")
}

func TestPlayerHealthSystem(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	ph := component.NewPlayerHealth(15, 0.5, 0.3, colornames.Red)
	hl := &component.Highlight{}
	require.NoError(t, ecs.Add(w, e, component.PlayerHealthComponent.Kind(), ph))
	require.NoError(t, ecs.Add(w, e, component.HighlightComponent.Kind(), hl))
	sys := NewPlayerHealthSystem(logger.Discard())

	ph.ApplyDamage(10)
	ph.ApplyDamage(10)
	assert.Equal(t, 1, ph.Hits, "second hit lands inside the damage cooldown")
	assert.Equal(t, 5, ph.Pool.Current)

	sys.Update(w, 0.1)
	assert.True(t, hl.On)
	require.Len(t, eventsOfType(w.Events().Drain(), ecs.EventPlayerHit), 1)

	sys.Update(w, 0.25)
	assert.False(t, hl.On, "flash over")

	sys.Update(w, 0.2)
	ph.ApplyDamage(10)
	assert.Equal(t, 1, ph.Deaths)
	assert.Equal(t, 15, ph.Pool.Current, "health restored on death")

	sys.Update(w, 0.1)
	assert.Len(t, eventsOfType(w.Events().Drain(), ecs.EventPlayerDied), 1)
}

func TestPlayerHealthRecordsHits(t *testing.T) {
	ph := component.NewPlayerHealth(20, 0, 0.3, colornames.Red)

	ph.ApplyDamage(5)
	ph.ApplyDamage(0)
	ph.ApplyDamage(15)

	hits := ph.DrainHits()
	require.Len(t, hits, 2, "non-positive damage is not recorded")
	assert.Equal(t, component.Hit{Amount: 5, Health: 15, Fraction: 0.75}, hits[0])
	assert.Equal(t, component.Hit{Amount: 15, Health: 0, Fraction: 0, Fatal: true}, hits[1])
	assert.Equal(t, 2, ph.Hits)
	assert.Equal(t, 1, ph.Deaths)
	assert.Equal(t, 20, ph.Pool.Current)
	assert.Empty(t, ph.DrainHits())
}
