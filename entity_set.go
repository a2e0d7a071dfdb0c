package signet

import "slices"

// entitySet is an ordered set of entities. The registry queues pending adds
// and kills in it so reconciliation visits them in ascending id order.
type entitySet struct {
	items []Entity
}

// Insert adds e, returning false if it was already present.
func (s *entitySet) Insert(e Entity) bool {
	i, found := slices.BinarySearchFunc(s.items, e, compareEntities)
	if found {
		return false
	}
	s.items = slices.Insert(s.items, i, e)
	return true
}

// Contains reports whether e is queued.
func (s *entitySet) Contains(e Entity) bool {
	_, found := slices.BinarySearchFunc(s.items, e, compareEntities)
	return found
}

// Len reports how many entities are queued.
func (s *entitySet) Len() int {
	return len(s.items)
}

// Drain returns the queued entities in order and resets the set.
func (s *entitySet) Drain() []Entity {
	drained := s.items
	s.items = nil
	return drained
}

// Snapshot returns a copy of the queued entities in order.
func (s *entitySet) Snapshot() []Entity {
	return slices.Clone(s.items)
}
