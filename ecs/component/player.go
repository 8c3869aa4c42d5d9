package component

import (
	"github.com/milk9111/wildlife/common"
	"github.com/milk9111/wildlife/script"
)

// Player marks the tracked target. Present is false while the route script
// hides it, and animals then see no target.
type Player struct {
	Radius  float64
	Present bool

	// touching holds the entities in contact last tick.
	touching map[uint64]bool
}

var PlayerComponent = NewComponent[Player]()

// Touch records a contact and reports whether it is new this tick.
func (p *Player) Touch(id uint64, seen map[uint64]bool) bool {
	seen[id] = true
	return !p.touching[id]
}

// EndContacts replaces the contact set with the one gathered this tick.
func (p *Player) EndContacts(seen map[uint64]bool) {
	p.touching = seen
}

// ScriptedMover drives an entity's Transform from a tengo route program.
type ScriptedMover struct {
	Mover *script.Mover
	// Failed stops the entity after the first script error.
	Failed bool
}

var ScriptedMoverComponent = NewComponent[ScriptedMover]()

// PlayerCombat sweeps every animal within Range on an interval.
type PlayerCombat struct {
	Range    float64
	Damage   int
	Interval float64
}

var PlayerCombatComponent = NewComponent[PlayerCombat]()

// Target adapts a Player entity's state to ai.TargetProvider.
type Target struct {
	Position common.Vec3
	Present  bool
}

func (t *Target) TargetPosition() (common.Vec3, bool) {
	if t == nil || !t.Present {
		return common.Vec3{}, false
	}
	return t.Position, true
}

var TargetComponent = NewComponent[Target]()
