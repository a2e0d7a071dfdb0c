package signet

const defaultInitialCapacity = 64

// Option configures a Registry.
type Option func(*Registry)

// WithLogger routes registry logging to l.
func WithLogger(l Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithInitialCapacity pre-sizes per-entity bookkeeping for n entities.
func WithInitialCapacity(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.initialCapacity = n
		}
	}
}

// WithPoolCapacity sets the slot count of every newly created component pool.
func WithPoolCapacity(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.poolCapacity = n
		}
	}
}

// WithEventBus publishes lifecycle events to bus.
func WithEventBus(bus *EventBus) Option {
	return func(r *Registry) {
		r.events = bus
	}
}

const defaultRegistryName = "default"

// WithName sets the name the registry logs under the "registry" key.
func WithName(name string) Option {
	return func(r *Registry) {
		if name != "" {
			r.name = name
		}
	}
}
