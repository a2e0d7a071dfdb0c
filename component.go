// Package signet provides a signature-matched Entity-Component-System registry.
//
// Components are plain Go values stored in dense, entity-indexed pools.
// Systems declare the component types they require and the registry keeps
// each system's entity list in sync with entity signatures. Entity creation
// and destruction are deferred until Registry.Update so that systems can
// iterate their entity lists while gameplay code spawns and kills entities.
package signet

import (
	"fmt"
	"reflect"
	"sync"
)

// ComponentID is a small, stable integer identifying a component type.
type ComponentID uint8

// MaxComponents is the maximum number of distinct component types a process
// may use. It equals the bit width of Signature; widen both together.
const MaxComponents = 32

// componentTypes assigns ids to component types in first-use order. The
// table is process-wide so every Registry agrees on the id of a type.
var componentTypes = newComponentTable()

type componentTable struct {
	mu     sync.RWMutex
	byType map[reflect.Type]ComponentID
	types  [MaxComponents]reflect.Type
	next   int
}

func newComponentTable() *componentTable {
	return &componentTable{byType: make(map[reflect.Type]ComponentID, MaxComponents)}
}

func (c *componentTable) id(t reflect.Type) ComponentID {
	c.mu.RLock()
	id, ok := c.byType[t]
	c.mu.RUnlock()
	if ok {
		return id
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if id, ok := c.byType[t]; ok {
		return id
	}
	if c.next >= MaxComponents {
		panic(fmt.Errorf("%w: cannot register %s, limit is %d", ErrTooManyComponents, t, MaxComponents))
	}
	id = ComponentID(c.next)
	c.byType[t] = id
	c.types[id] = t
	c.next++
	return id
}

func (c *componentTable) lookup(t reflect.Type) (ComponentID, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, ok := c.byType[t]
	return id, ok
}

// ComponentIDOf returns the id of component type T, assigning the next free
// id the first time T is seen. It panics with ErrTooManyComponents once more
// than MaxComponents distinct types have been used.
func ComponentIDOf[T any]() ComponentID {
	return componentTypes.id(reflect.TypeFor[T]())
}

// TryComponentID returns the id of T without assigning one.
func TryComponentID[T any]() (ComponentID, bool) {
	return componentTypes.lookup(reflect.TypeFor[T]())
}

// ComponentTypeOf returns the Go type registered under id.
func ComponentTypeOf(id ComponentID) (reflect.Type, bool) {
	componentTypes.mu.RLock()
	defer componentTypes.mu.RUnlock()
	if int(id) >= componentTypes.next {
		return nil, false
	}
	return componentTypes.types[id], true
}

// RegisteredComponents reports how many component types have an id.
func RegisteredComponents() int {
	componentTypes.mu.RLock()
	defer componentTypes.mu.RUnlock()
	return componentTypes.next
}

// ResetGlobalRegistry forgets every component id. Registries created before
// the reset must not be used afterwards. Intended for tests.
func ResetGlobalRegistry() {
	componentTypes.mu.Lock()
	defer componentTypes.mu.Unlock()
	componentTypes.byType = make(map[reflect.Type]ComponentID, MaxComponents)
	componentTypes.types = [MaxComponents]reflect.Type{}
	componentTypes.next = 0
}
