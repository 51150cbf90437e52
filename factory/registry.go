package factory

import (
	"errors"
	"fmt"
	"strconv"
)

// Tag identifies a concrete variant in a Registry.
//
// Tags are typically defined as package-level constants to avoid typos.
//
// Example:
//
//	const (
//	  TagCircle factory.Tag = "circle"
//	  TagSquare factory.Tag = "square"
//	)
type Tag string

// ErrConstructorPanic is returned by Make if a registered constructor panics.
var ErrConstructorPanic = errors.New("factory: panic during Make")

// UnknownTagError is returned by Make when no constructor is registered
// under the requested tag.
type UnknownTagError struct{ Tag Tag }

// Error implements the error interface.
func (e UnknownTagError) Error() string {
	// Example: factory: unknown variant tag "circle"
	return "factory: unknown variant tag " + strconv.Quote(string(e.Tag))
}

// Registry maps variant tags to constructor functions for T.
//
// Registration (Provide) is a composition-root concern; dispatch
// (Lookup/Make/MustMake) is read-only and side effect free.
type Registry[T any] struct {
	ctors map[Tag]func() T
}

// New returns an empty Registry for T.
func New[T any]() *Registry[T] {
	return &Registry[T]{ctors: map[Tag]func() T{}}
}

// Provide registers a constructor under a tag and returns the registry for chaining.
//
// Providing the same tag again replaces the earlier constructor.
func (r *Registry[T]) Provide(tag Tag, ctor func() T) *Registry[T] {
	r.ctors[tag] = ctor
	return r
}

// Lookup returns the constructor if present (no panic, no construction).
func (r *Registry[T]) Lookup(tag Tag) (func() T, bool) {
	c, ok := r.ctors[tag]
	return c, ok
}

// Make constructs the variant registered under tag.
//
// It returns UnknownTagError if no constructor is registered, and
// defensively converts a panicking constructor into ErrConstructorPanic.
func (r *Registry[T]) Make(tag Tag) (val T, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			var zero T
			val = zero
			err = fmt.Errorf("%w: %v", ErrConstructorPanic, rec)
		}
	}()

	ctor, ok := r.ctors[tag]
	if !ok {
		return val, UnknownTagError{Tag: tag}
	}
	return ctor(), nil
}

// MustMake constructs the variant or panics with a helpful message.
//
// Useful in examples/tests where a missing variant should fail fast.
func (r *Registry[T]) MustMake(tag Tag) T {
	ctor, ok := r.ctors[tag]
	if !ok {
		panic(fmt.Errorf("factory: no constructor for tag %q", tag))
	}
	return ctor()
}
