// Package box provides an immutable generic container for exactly one value.
//
// A Box is fixed at construction and read any number of times; there is no
// mutation operation, so construction and Get are both total. Type safety is
// carried by the type parameter, not by runtime checks.
package box

// Box holds exactly one value of type T, fixed at construction.
type Box[T any] struct {
	value T
}

// Of returns a Box containing v.
func Of[T any](v T) Box[T] { return Box[T]{value: v} }

// Get returns the contained value. Repeated calls return the same value.
func (b Box[T]) Get() T { return b.value }

// Map returns a new Box holding fn applied to the contents of b.
//
// b itself is never modified.
func Map[T, U any](b Box[T], fn func(T) U) Box[U] {
	return Of(fn(b.value))
}
