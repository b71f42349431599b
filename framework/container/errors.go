package container

import "errors"

var (
	// ErrInvalidName is returned when a registration has no usable string
	// name. Nothing is registered.
	ErrInvalidName = errors.New("container: invalid name(s)")

	// ErrInvalidFactory is returned when a registration carries no callable
	// factory. Nothing is registered.
	ErrInvalidFactory = errors.New("container: invalid factory")

	// ErrUnresolvableConstructor is returned by Invoke when none of its
	// arguments is callable.
	ErrUnresolvableConstructor = errors.New("container: can't resolve without a factory")

	// ErrArgumentType is returned when a resolved dependency cannot be passed
	// to the matching parameter of a typed factory.
	ErrArgumentType = errors.New("container: dependency not assignable to parameter")

	// ErrNotRegistered is returned by ResolveAs when nothing answers to the
	// requested name.
	ErrNotRegistered = errors.New("container: nothing registered")

	// ErrTypeMismatch is returned by ResolveAs when the resolved value is not
	// of the requested type.
	ErrTypeMismatch = errors.New("container: type mismatch")

	// ErrCircularDependency is the panic value (wrapped) raised when a
	// registration depends on itself, directly or transitively. The message
	// includes the full chain.
	ErrCircularDependency = errors.New("container: circular dependency")
)
