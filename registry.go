package signet

import (
	"reflect"
)

// Registry owns every component pool, entity signature and system, and the
// queues of entities awaiting reconciliation.
//
// Entity creation and destruction are deferred: CreateEntity and KillEntity
// only queue the entity, and Update applies the queues. Call Update once per
// frame at a point where no system is iterating its entity list, typically
// between input handling and running systems. Component attach and detach
// take effect immediately, so do not attach or detach components on an
// entity while a system whose membership could change is iterating.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	logger Logger
	events *EventBus
	name   string

	signatures []Signature
	alive      []bool
	pools      [MaxComponents]storage

	systems     map[reflect.Type]Systemer
	systemOrder []reflect.Type

	pendingAdd  entitySet
	pendingKill entitySet

	numEntities     uint32
	live            int
	initialCapacity int
	poolCapacity    int
}

// NewRegistry constructs an empty registry. Every log line it writes carries
// a "registry" key naming it.
//
// Parameters:
//   - opts: Options such as WithLogger, WithName or WithInitialCapacity.
//
// Returns:
//   - The newly created Registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		logger:          noopLogger{},
		name:            defaultRegistryName,
		systems:         make(map[reflect.Type]Systemer),
		initialCapacity: defaultInitialCapacity,
		poolCapacity:    defaultPoolCapacity,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("registry", r.name)
	r.signatures = make([]Signature, 0, r.initialCapacity)
	r.alive = make([]bool, 0, r.initialCapacity)
	return r
}

// CreateEntity issues the next entity id and queues the entity for matching
// on the next Update. Components may be attached right away, and systems see
// the entity as soon as an attached component makes it match.
//
// Returns:
//   - The new Entity. Ids start at 0, increase by one and are never reused.
func (r *Registry) CreateEntity() Entity {
	e := Entity{ID: r.numEntities}
	r.numEntities++
	r.growEntities(int(r.numEntities))
	r.signatures[e.ID].Reset()
	r.alive[e.ID] = true
	r.live++
	r.pendingAdd.Insert(e)

	r.logger.Info("entity created", "entity", e.ID)
	Publish(r.events, EntityCreated{Entity: e})
	return e
}

// KillEntity queues e for destruction on the next Update. Until then e keeps
// its components and stays in every system it matches, so a system iterating
// its entity list is never disturbed.
//
// Parameters:
//   - e: The entity to kill. Dead and unknown entities are ignored, and
//     killing twice before Update is the same as killing once.
func (r *Registry) KillEntity(e Entity) {
	if !r.Alive(e) {
		return
	}
	if r.pendingKill.Insert(e) {
		r.logger.Info("entity killed", "entity", e.ID)
	}
}

// Update reconciles queued structural changes: pending entities are matched
// against every system, then killed entities are removed from every system,
// their component slots are zeroed and their signatures cleared.
func (r *Registry) Update() {
	added := r.pendingAdd.Drain()
	for _, e := range added {
		if !r.Alive(e) {
			continue
		}
		r.AddEntityToSystem(e)
		Publish(r.events, EntityAdded{Entity: e})
	}

	killed := r.pendingKill.Drain()
	for _, e := range killed {
		if !r.Alive(e) {
			continue
		}
		r.removeEntity(e)
		Publish(r.events, EntityKilled{Entity: e})
	}

	if len(added) > 0 || len(killed) > 0 {
		r.logger.Info("registry reconciled", "added", len(added), "killed", len(killed))
	}
}

// AddEntityToSystem re-evaluates e against every system: e is added to each
// system whose signature its own signature contains and removed from the rest.
// Each system check is constant time.
//
// Parameters:
//   - e: The entity to match. Dead and unknown entities are ignored.
func (r *Registry) AddEntityToSystem(e Entity) {
	if !r.Alive(e) {
		return
	}
	sig := r.signatures[e.ID]
	for _, t := range r.systemOrder {
		s := r.systems[t].base()
		if sig.Contains(s.signature) {
			s.AddEntity(e)
		} else {
			s.RemoveEntity(e)
		}
	}
}

// Alive reports whether e has been created and not yet reconciled as killed.
func (r *Registry) Alive(e Entity) bool {
	return int(e.ID) < len(r.alive) && r.alive[e.ID]
}

// Signature returns the component signature of e.
//
// Parameters:
//   - e: The entity to inspect.
//
// Returns:
//   - The set of component ids e owns; empty for dead and unknown entities.
func (r *Registry) Signature(e Entity) Signature {
	if int(e.ID) >= len(r.signatures) {
		return 0
	}
	return r.signatures[e.ID]
}

// EntityCount returns the number of live entities, including those pending
// a kill that has not been reconciled.
func (r *Registry) EntityCount() int {
	return r.live
}

// PendingAdds returns the entities awaiting matching, in id order.
func (r *Registry) PendingAdds() []Entity {
	return r.pendingAdd.Snapshot()
}

// PendingKills returns the entities awaiting destruction, in id order.
func (r *Registry) PendingKills() []Entity {
	return r.pendingKill.Snapshot()
}

// Systems returns the registered systems in registration order.
func (r *Registry) Systems() []Systemer {
	out := make([]Systemer, 0, len(r.systemOrder))
	for _, t := range r.systemOrder {
		out = append(out, r.systems[t])
	}
	return out
}

func (r *Registry) removeEntity(e Entity) {
	for _, t := range r.systemOrder {
		r.systems[t].base().RemoveEntity(e)
	}
	sig := r.signatures[e.ID]
	for id, p := range r.pools {
		if p != nil && sig.Test(ComponentID(id)) {
			p.reset(int(e.ID))
		}
	}
	r.signatures[e.ID].Reset()
	r.alive[e.ID] = false
	r.live--
}

func (r *Registry) growEntities(n int) {
	if n <= len(r.signatures) {
		return
	}
	r.signatures = append(r.signatures, make([]Signature, n-len(r.signatures))...)
	r.alive = append(r.alive, make([]bool, n-len(r.alive))...)
}

// matchAll fills s with every live entity whose signature contains its own.
func (r *Registry) matchAll(s *System) {
	s.clearEntities()
	for id, ok := range r.alive {
		if ok && r.signatures[id].Contains(s.signature) {
			s.AddEntity(Entity{ID: uint32(id)})
		}
	}
}
