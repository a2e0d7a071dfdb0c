package signet

// System holds the component signature a system requires and the entities
// currently matching it. Game systems embed System and read Entities each
// frame; the logic that consumes the list lives outside the registry.
//
//	type MovementSystem struct {
//	    signet.System
//	}
//
//	func NewMovementSystem() *MovementSystem {
//	    s := &MovementSystem{}
//	    signet.RequireComponent[Position](&s.System)
//	    signet.RequireComponent[Velocity](&s.System)
//	    return s
//	}
type System struct {
	entities []Entity
	// positions maps an entity ID to its index in entities plus one; zero
	// means absent.
	positions []int32
	signature Signature
}

// Systemer is implemented by every pointer to a struct embedding System.
type Systemer interface {
	base() *System
}

func (s *System) base() *System {
	return s
}

// RequireComponent adds T to the components s requires. Call it while
// constructing the system, before it is passed to AddSystem.
//
// Parameters:
//   - s: The System to extend, usually the one embedded in a game system.
func RequireComponent[T any](s *System) {
	s.signature.Set(ComponentIDOf[T]())
}

// Signature returns the required component signature.
func (s *System) Signature() Signature {
	return s.signature
}

// Entities returns the matching entities. The slice is owned by the system
// and only changes through AddEntity/RemoveEntity, which the registry calls
// on component attach/detach and during Update. Removal repacks the slice, so
// callers must not rely on insertion order.
//
// Returns:
//   - The live slice of matching entities; do not modify it.
func (s *System) Entities() []Entity {
	return s.entities
}

// Len returns the number of matching entities.
func (s *System) Len() int {
	return len(s.entities)
}

// Has reports whether e is in the matching list in constant time.
func (s *System) Has(e Entity) bool {
	return int(e.ID) < len(s.positions) && s.positions[e.ID] != 0
}

// AddEntity appends e unless it is already present.
//
// Parameters:
//   - e: The entity to add.
func (s *System) AddEntity(e Entity) {
	if s.Has(e) {
		return
	}
	s.growPositions(int(e.ID) + 1)
	s.entities = append(s.entities, e)
	s.positions[e.ID] = int32(len(s.entities))
}

// RemoveEntity removes e if present, moving the last entity into its slot.
//
// Parameters:
//   - e: The entity to remove. Absent entities are ignored.
func (s *System) RemoveEntity(e Entity) {
	if !s.Has(e) {
		return
	}
	i := int(s.positions[e.ID]) - 1
	last := len(s.entities) - 1
	moved := s.entities[last]
	s.entities[i] = moved
	s.positions[moved.ID] = int32(i + 1)
	s.entities = s.entities[:last]
	s.positions[e.ID] = 0
}

func (s *System) clearEntities() {
	for _, e := range s.entities {
		s.positions[e.ID] = 0
	}
	s.entities = s.entities[:0]
}

func (s *System) growPositions(n int) {
	if n <= len(s.positions) {
		return
	}
	if n <= cap(s.positions) {
		old := len(s.positions)
		s.positions = s.positions[:n]
		clear(s.positions[old:])
		return
	}
	grown := make([]int32, n, max(2*cap(s.positions), n))
	copy(grown, s.positions)
	s.positions = grown
}
