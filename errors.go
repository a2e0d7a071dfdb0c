package signet

import "errors"

var (
	// ErrTooManyComponents indicates more than MaxComponents distinct component types were used.
	ErrTooManyComponents = errors.New("signet: too many component types")
	// ErrComponentMissing signals GetComponent on an entity lacking the component.
	ErrComponentMissing = errors.New("signet: entity does not have component")
	// ErrPoolTypeMismatch indicates a pool was accessed as the wrong component type.
	ErrPoolTypeMismatch = errors.New("signet: component pool type mismatch")
	// ErrSystemNotRegistered signals GetSystem for a system type that was never added.
	ErrSystemNotRegistered = errors.New("signet: system not registered")
	// ErrNilSystem is raised when AddSystem receives a nil system.
	ErrNilSystem = errors.New("signet: nil system")
)
