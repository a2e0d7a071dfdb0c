package signet

import "strconv"

// Entity is an opaque handle identifying a row of component data. Two
// entities are equal iff their ids are equal. Entities own nothing; the
// Registry holds all component data.
type Entity struct {
	ID uint32
}

// Less orders entities by id.
func (e Entity) Less(other Entity) bool {
	return e.ID < other.ID
}

// String renders the entity for debugging purposes.
func (e Entity) String() string {
	return "Entity(" + strconv.FormatUint(uint64(e.ID), 10) + ")"
}

func compareEntities(a, b Entity) int {
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	}
	return 0
}
