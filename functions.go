package signet

import (
	"fmt"
	"reflect"
	"slices"
)

// AddComponent stores value as e's component of type T, creating T's pool on
// first use, and immediately re-evaluates e's system membership.
//
// Adding to a dead or unknown entity is logged and ignored. If a
// ComponentAdded handler detaches the component again, the result is nil.
//
// Parameters:
//   - r: The Registry that owns e.
//   - e: The entity to attach the component to.
//   - value: The component data; an existing component of type T is overwritten.
//
// Returns:
//   - A pointer to the stored component, valid until T's pool next grows, or nil.
func AddComponent[T any](r *Registry, e Entity, value T) *T {
	id := ComponentIDOf[T]()
	if !r.Alive(e) {
		r.logger.Error("add component to dead entity", "entity", e.ID, "component", id)
		return nil
	}

	s := r.pools[id]
	if s == nil {
		s = NewPool[T](r.poolCapacity)
		r.pools[id] = s
		r.logger.Info("component pool created", "component", reflect.TypeFor[T]().String(), "id", id)
	}
	p := poolFor[T](s, id)
	p.Set(int(e.ID), value)
	r.signatures[e.ID].Set(id)
	r.AddEntityToSystem(e)

	Publish(r.events, ComponentAdded{Entity: e, Component: id})
	if !r.signatures[e.ID].Test(id) {
		return nil
	}
	return p.Get(int(e.ID))
}

// RemoveComponent detaches T from e, zeroes its slot and immediately removes
// e from systems it no longer matches. Removing a component e does not have
// is a no-op.
//
// Parameters:
//   - r: The Registry that owns e.
//   - e: The entity to detach the component from.
func RemoveComponent[T any](r *Registry, e Entity) {
	id := ComponentIDOf[T]()
	if !r.Alive(e) || !r.signatures[e.ID].Test(id) {
		return
	}
	r.signatures[e.ID].Unset(id)
	if s := r.pools[id]; s != nil {
		s.reset(int(e.ID))
	}
	r.AddEntityToSystem(e)

	Publish(r.events, ComponentRemoved{Entity: e, Component: id})
}

// HasComponent reports whether e currently owns a component of type T. It
// only reads e's signature and never touches a pool.
//
// Parameters:
//   - r: The Registry that owns e.
//   - e: The entity to check. Dead and unknown entities own nothing.
//
// Returns:
//   - true if e owns a T, false otherwise.
func HasComponent[T any](r *Registry, e Entity) bool {
	return r.Signature(e).Test(ComponentIDOf[T]())
}

// GetComponent returns e's component of type T. It panics with
// ErrComponentMissing if e does not own one; use TryGetComponent when the
// component is optional.
//
// Parameters:
//   - r: The Registry that owns e.
//   - e: The entity whose component to fetch.
//
// Returns:
//   - A pointer to the stored component, valid until T's pool next grows.
func GetComponent[T any](r *Registry, e Entity) *T {
	c, ok := TryGetComponent[T](r, e)
	if !ok {
		err := fmt.Errorf("%w: %s has no %s", ErrComponentMissing, e, reflect.TypeFor[T]())
		r.logger.Error("get missing component", "entity", e.ID, "err", err)
		panic(err)
	}
	return c
}

// TryGetComponent returns e's component of type T and whether e owns one.
//
// Parameters:
//   - r: The Registry that owns e.
//   - e: The entity whose component to fetch.
//
// Returns:
//   - A pointer to the stored component, or nil.
//   - true if e owns a T, false otherwise.
func TryGetComponent[T any](r *Registry, e Entity) (*T, bool) {
	id := ComponentIDOf[T]()
	if !r.Signature(e).Test(id) {
		return nil, false
	}
	return poolFor[T](r.pools[id], id).Get(int(e.ID)), true
}

// AddSystem registers sys under its type and matches every live entity
// against it. A system already registered under the same type is replaced.
// It panics with ErrNilSystem if sys is nil.
//
// Example:
//
//	movement := signet.AddSystem(registry, NewMovementSystem())
//	for _, e := range movement.Entities() {
//	    // ... process entity
//	}
//
// Parameters:
//   - r: The Registry to register with.
//   - sys: A concrete pointer type embedding System, such as *MovementSystem.
//
// Returns:
//   - sys, for chaining.
func AddSystem[T Systemer](r *Registry, sys T) T {
	v := reflect.ValueOf(sys)
	if !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil()) {
		panic(ErrNilSystem)
	}
	t := v.Type()
	if _, exists := r.systems[t]; exists {
		r.logger.Info("system replaced", "system", t.String())
	} else {
		r.systemOrder = append(r.systemOrder, t)
		r.logger.Info("system added", "system", t.String())
	}
	r.systems[t] = sys
	r.matchAll(sys.base())
	return sys
}

// RemoveSystem unregisters the system of type T. The removed system's entity
// list is emptied.
//
// Parameters:
//   - r: The Registry to unregister from.
//
// Returns:
//   - true if a system of type T was registered, false otherwise.
func RemoveSystem[T Systemer](r *Registry) bool {
	t := reflect.TypeFor[T]()
	sys, ok := r.systems[t]
	if !ok {
		return false
	}
	delete(r.systems, t)
	if i := slices.Index(r.systemOrder, t); i >= 0 {
		r.systemOrder = slices.Delete(r.systemOrder, i, i+1)
	}
	sys.base().clearEntities()
	r.logger.Info("system removed", "system", t.String())
	return true
}

// HasSystem reports whether a system of type T is registered.
func HasSystem[T Systemer](r *Registry) bool {
	_, ok := r.systems[reflect.TypeFor[T]()]
	return ok
}

// GetSystem returns the registered system of type T. It panics with
// ErrSystemNotRegistered if there is none.
//
// Parameters:
//   - r: The Registry to look in.
//
// Returns:
//   - The registered system instance.
func GetSystem[T Systemer](r *Registry) T {
	sys, ok := TryGetSystem[T](r)
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrSystemNotRegistered, reflect.TypeFor[T]()))
	}
	return sys
}

// TryGetSystem returns the registered system of type T, if any.
//
// Returns:
//   - The registered system, or the zero value of T.
//   - true if a system of type T is registered, false otherwise.
func TryGetSystem[T Systemer](r *Registry) (T, bool) {
	sys, ok := r.systems[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return sys.(T), true
}
