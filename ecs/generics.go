package ecs

import "github.com/milk9111/wildlife/ecs/component"

func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	w.store(kind.ID(), true).Set(int(e.id()), value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	s := w.store(kind.ID(), false)
	if !s.Has(int(e.id())) {
		return false
	}
	s.Remove(int(e.id()))
	return true
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return IsAlive(w, e) && w.store(kind.ID(), false).Has(int(e.id()))
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	v, ok := w.store(kind.ID(), false).Get(int(e.id())).(*T)
	return v, ok
}

// First returns the first live entity holding kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	s := w.store(kind.ID(), false)
	for _, id := range s.Entities() {
		if e, ok := w.handle(id); ok {
			return e, true
		}
	}
	return 0, false
}

// ForEach visits every entity holding kind. Components may be added or
// removed from inside fn.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := w.store(kind.ID(), false)
	for _, id := range snapshot(s.Entities()) {
		e, ok := w.handle(id)
		if !ok {
			continue
		}
		if v, ok := s.Get(id).(*T); ok {
			fn(e, v)
		}
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa, sb := w.store(ka.ID(), false), w.store(kb.ID(), false)
	for _, id := range IntersectEntities(sa, sb) {
		e, ok := w.handle(id)
		if !ok {
			continue
		}
		a, okA := sa.Get(id).(*A)
		b, okB := sb.Get(id).(*B)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa, sb, sc := w.store(ka.ID(), false), w.store(kb.ID(), false), w.store(kc.ID(), false)
	for _, id := range IntersectEntities(sa, sb, sc) {
		e, ok := w.handle(id)
		if !ok {
			continue
		}
		a, okA := sa.Get(id).(*A)
		b, okB := sb.Get(id).(*B)
		c, okC := sc.Get(id).(*C)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}

func snapshot(ids []int) []int {
	return append([]int(nil), ids...)
}
