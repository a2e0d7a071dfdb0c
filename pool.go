package signet

import "fmt"

// defaultPoolCapacity is the slot count a pool starts with.
const defaultPoolCapacity = 100

// storage is the type-erased view the registry keeps of every pool. Typed
// access goes through poolFor, which checks the concrete type.
type storage interface {
	// ComponentID returns the id of the component type the pool was created for.
	ComponentID() ComponentID
	// Len returns the number of addressable slots.
	Len() int
	// Clear drops every slot.
	Clear()
	// reset zeroes a single slot, ignoring indices past the end.
	reset(index int)
}

// Pool is dense, entity-indexed storage for one component type. Slot i holds
// the component of the entity with ID i.
type Pool[T any] struct {
	data []T
	id   ComponentID
}

// NewPool creates a pool for T with capacity addressable slots.
func NewPool[T any](capacity int) *Pool[T] {
	p := &Pool[T]{id: ComponentIDOf[T]()}
	p.EnsureCapacity(capacity)
	return p
}

// ComponentID returns the id of T.
func (p *Pool[T]) ComponentID() ComponentID {
	return p.id
}

// Len returns the number of addressable slots.
func (p *Pool[T]) Len() int {
	return len(p.data)
}

// IsEmpty reports whether the pool has no slots.
func (p *Pool[T]) IsEmpty() bool {
	return len(p.data) == 0
}

// EnsureCapacity grows the pool so that index n-1 is addressable. Existing
// slots are preserved and new slots hold the zero value of T.
func (p *Pool[T]) EnsureCapacity(n int) {
	if n <= len(p.data) {
		return
	}
	if n <= cap(p.data) {
		old := len(p.data)
		p.data = p.data[:n]
		clear(p.data[old:])
		return
	}
	newCap := max(2*cap(p.data), n)
	grown := make([]T, n, newCap)
	copy(grown, p.data)
	p.data = grown
}

// Set stores value at index, growing the pool first if needed.
func (p *Pool[T]) Set(index int, value T) *T {
	p.EnsureCapacity(index + 1)
	p.data[index] = value
	return &p.data[index]
}

// Get returns a pointer to the slot at index, growing the pool first if
// needed so the read never goes out of range. The pointer stays valid until
// the pool next grows.
func (p *Pool[T]) Get(index int) *T {
	p.EnsureCapacity(index + 1)
	return &p.data[index]
}

// Reset zeroes the slot at index.
func (p *Pool[T]) Reset(index int) {
	p.reset(index)
}

func (p *Pool[T]) reset(index int) {
	if index < 0 || index >= len(p.data) {
		return
	}
	var zero T
	p.data[index] = zero
}

// Clear drops every slot.
func (p *Pool[T]) Clear() {
	clear(p.data)
	p.data = p.data[:0]
}

// poolFor recovers the typed pool stored under id. It panics with
// ErrPoolTypeMismatch if the pool was created for a different type, which
// only happens if component ids were assigned inconsistently.
func poolFor[T any](s storage, id ComponentID) *Pool[T] {
	p, ok := s.(*Pool[T])
	if !ok || p.id != id {
		var zero T
		panic(fmt.Errorf("%w: pool %d holds %T, not %T", ErrPoolTypeMismatch, id, s, zero))
	}
	return p
}

var _ storage = (*Pool[struct{}])(nil)
