package signet

import "reflect"

// MaxEventTypes is the maximum number of distinct event types an EventBus
// can carry.
const MaxEventTypes = 64

// EventBus delivers typed events to subscribed handlers. Handlers run
// synchronously on the publishing goroutine in subscription order. A nil
// *EventBus accepts Publish and drops the event.
type EventBus struct {
	eventTypeMap    map[reflect.Type]uint8
	handlers        [MaxEventTypes][]any
	nextEventTypeID uint8
}

// NewEventBus returns an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe registers handler for events of type T.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	id := bus.eventTypeID(reflect.TypeFor[T]())
	bus.handlers[id] = append(bus.handlers[id], handler)
}

// Publish sends event to every handler subscribed to T.
func Publish[T any](bus *EventBus, event T) {
	if bus == nil {
		return
	}
	id, ok := bus.eventTypeMap[reflect.TypeFor[T]()]
	if !ok {
		return
	}
	for _, h := range bus.handlers[id] {
		h.(func(T))(event)
	}
}

// Subscribers reports how many handlers are subscribed to T.
func Subscribers[T any](bus *EventBus) int {
	if bus == nil {
		return 0
	}
	id, ok := bus.eventTypeMap[reflect.TypeFor[T]()]
	if !ok {
		return 0
	}
	return len(bus.handlers[id])
}

func (bus *EventBus) eventTypeID(t reflect.Type) uint8 {
	if bus.eventTypeMap == nil {
		bus.eventTypeMap = make(map[reflect.Type]uint8)
	}
	if id, ok := bus.eventTypeMap[t]; ok {
		return id
	}
	if int(bus.nextEventTypeID) >= MaxEventTypes {
		panic("signet: too many event types")
	}
	id := bus.nextEventTypeID
	bus.nextEventTypeID++
	bus.eventTypeMap[t] = id
	return id
}

// EntityCreated is published by CreateEntity.
type EntityCreated struct {
	Entity Entity
}

// EntityAdded is published by Update when a pending entity is matched
// against the registered systems.
type EntityAdded struct {
	Entity Entity
}

// EntityKilled is published by Update once a killed entity has been removed
// from every system and pool.
type EntityKilled struct {
	Entity Entity
}

// ComponentAdded is published by AddComponent.
type ComponentAdded struct {
	Entity    Entity
	Component ComponentID
}

// ComponentRemoved is published by RemoveComponent when the entity owned
// the component.
type ComponentRemoved struct {
	Entity    Entity
	Component ComponentID
}
