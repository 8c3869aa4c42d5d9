package ecs

// IntersectEntities returns the ids present in every set, in the order of
// the smallest one. The result is a fresh slice, safe to iterate while the
// sets change. A nil set yields nothing.
func IntersectEntities(sets ...*SparseSet) []int {
	if len(sets) == 0 {
		return nil
	}
	smallest := sets[0]
	for _, s := range sets {
		if s == nil {
			return nil
		}
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}

	out := make([]int, 0, smallest.Len())
	for _, id := range smallest.Entities() {
		inAll := true
		for _, s := range sets {
			if s != smallest && !s.Has(id) {
				inAll = false
				break
			}
		}
		if inAll {
			out = append(out, id)
		}
	}
	return out
}
