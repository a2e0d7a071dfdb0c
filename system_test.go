package signet

import (
	"math/rand"
	"testing"
)

// checkSystemIndex verifies every listed entity is indexed at its slot and
// nothing else is indexed.
func checkSystemIndex(t *testing.T, s *System) {
	t.Helper()
	indexed := 0
	for id, pos := range s.positions {
		if pos == 0 {
			continue
		}
		indexed++
		if got := s.entities[pos-1]; got.ID != uint32(id) {
			t.Fatalf("entity %d indexed at %d, slot holds %d", id, pos-1, got.ID)
		}
	}
	if indexed != len(s.entities) {
		t.Fatalf("index holds %d entities, list holds %d", indexed, len(s.entities))
	}
}

func TestSystemAddRemoveKeepsIndex(t *testing.T) {
	var s System
	for id := uint32(0); id < 10; id++ {
		s.AddEntity(Entity{ID: id})
	}
	s.AddEntity(Entity{ID: 3})
	if s.Len() != 10 {
		t.Fatalf("duplicate add changed len to %d", s.Len())
	}
	checkSystemIndex(t, &s)

	s.RemoveEntity(Entity{ID: 9}) // last slot
	s.RemoveEntity(Entity{ID: 0}) // first slot, swaps in the last
	s.RemoveEntity(Entity{ID: 0})
	s.RemoveEntity(Entity{ID: 500})
	checkSystemIndex(t, &s)
	if s.Len() != 8 || s.Has(Entity{ID: 0}) || s.Has(Entity{ID: 9}) || !s.Has(Entity{ID: 8}) {
		t.Fatalf("unexpected membership %v", s.Entities())
	}

	s.clearEntities()
	checkSystemIndex(t, &s)
	if s.Has(Entity{ID: 4}) {
		t.Error("cleared system should be empty")
	}
	s.AddEntity(Entity{ID: 4})
	checkSystemIndex(t, &s)
}

func TestSystemRandomChurnKeepsIndex(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var s System
	want := map[uint32]bool{}
	for range 5000 {
		id := uint32(rng.Intn(300))
		if rng.Intn(2) == 0 {
			s.AddEntity(Entity{ID: id})
			want[id] = true
		} else {
			s.RemoveEntity(Entity{ID: id})
			delete(want, id)
		}
	}
	checkSystemIndex(t, &s)
	if s.Len() != len(want) {
		t.Fatalf("expected %d entities, got %d", len(want), s.Len())
	}
	for id := range want {
		if !s.Has(Entity{ID: id}) {
			t.Fatalf("entity %d missing", id)
		}
	}
}

func TestRegistryMatchingKeepsIndex(t *testing.T) {
	ResetGlobalRegistry()
	r := NewRegistry()
	m := AddSystem(r, newBenchMovement())
	for i := range 200 {
		e := r.CreateEntity()
		AddComponent(r, e, benchPosition{})
		AddComponent(r, e, benchVelocity{})
		if i%3 == 0 {
			RemoveComponent[benchVelocity](r, e)
		}
		if i%5 == 0 {
			r.KillEntity(e)
		}
	}
	r.Update()
	checkSystemIndex(t, &m.System)

	late := AddSystem(r, newBenchMovement())
	checkSystemIndex(t, &late.System)
	if late.Len() != m.Len() {
		t.Errorf("late system matched %d entities, expected %d", late.Len(), m.Len())
	}
}
