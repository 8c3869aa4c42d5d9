package ecs

// SparseSet stores one component kind keyed by entity id. Values are
// component pointers; the typed helpers in generics.go cast them back.
// Removal swaps the last element into the hole, so iteration order is not
// stable across removals.
type SparseSet struct {
	ids    []int
	values []any
	// index maps id-1 to a position in ids, or -1.
	index []int
}

func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

func (s *SparseSet) pos(id int) (int, bool) {
	if s == nil || id <= 0 || id > len(s.index) {
		return 0, false
	}
	i := s.index[id-1]
	return i, i >= 0 && i < len(s.ids) && s.ids[i] == id
}

// Has reports whether id has a value. Safe on a nil set.
func (s *SparseSet) Has(id int) bool {
	_, ok := s.pos(id)
	return ok
}

// Get returns the value for id, or nil. Safe on a nil set.
func (s *SparseSet) Get(id int) any {
	if i, ok := s.pos(id); ok {
		return s.values[i]
	}
	return nil
}

// Set inserts or replaces the value for id.
func (s *SparseSet) Set(id int, v any) {
	if s == nil || id <= 0 {
		return
	}
	if i, ok := s.pos(id); ok {
		s.values[i] = v
		return
	}
	for len(s.index) < id {
		s.index = append(s.index, -1)
	}
	s.index[id-1] = len(s.ids)
	s.ids = append(s.ids, id)
	s.values = append(s.values, v)
}

// Remove deletes the value for id if present.
func (s *SparseSet) Remove(id int) {
	i, ok := s.pos(id)
	if !ok {
		return
	}
	last := len(s.ids) - 1
	moved := s.ids[last]
	s.ids[i], s.values[i] = moved, s.values[last]
	s.index[moved-1] = i

	s.values[last] = nil
	s.ids, s.values = s.ids[:last], s.values[:last]
	s.index[id-1] = -1
}

// Entities returns the dense id list. Callers must not modify it.
func (s *SparseSet) Entities() []int {
	if s == nil {
		return nil
	}
	return s.ids
}
