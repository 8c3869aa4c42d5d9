package ecs

import "github.com/milk9111/wildlife/ecs/component"

// World owns entities and their component stores.
type World struct {
	gens   []generation
	alive  []bool
	free   []entityID
	stores map[component.ComponentID]*SparseSet
	events EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity, reusing freed ids with a bumped
// generation.
func CreateEntity(w *World) Entity {
	var id entityID
	if n := len(w.free); n > 0 {
		id = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		w.gens = append(w.gens, 0)
		w.alive = append(w.alive, false)
		id = entityID(len(w.gens))
	}
	w.alive[id-1] = true
	return makeEntity(id, w.gens[id-1])
}

// DestroyEntity removes e and all its components. It reports false for
// handles that are already dead.
func DestroyEntity(w *World, e Entity) bool {
	if !IsAlive(w, e) {
		return false
	}
	id := e.id()
	for _, s := range w.stores {
		s.Remove(int(id))
	}
	w.alive[id-1] = false
	w.gens[id-1]++
	w.free = append(w.free, id)
	return true
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	id := e.id()
	if id == 0 || int(id) > len(w.gens) {
		return false
	}
	return w.alive[id-1] && w.gens[id-1] == e.generation()
}

// Entities lists every live entity in id order.
func Entities(w *World) []Entity {
	out := make([]Entity, 0, len(w.gens)-len(w.free))
	for i, ok := range w.alive {
		if ok {
			out = append(out, makeEntity(entityID(i+1), w.gens[i]))
		}
	}
	return out
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// handle rebuilds the live handle for a stored id.
func (w *World) handle(id int) (Entity, bool) {
	if id <= 0 || id > len(w.gens) || !w.alive[id-1] {
		return 0, false
	}
	return makeEntity(entityID(id), w.gens[id-1]), true
}
