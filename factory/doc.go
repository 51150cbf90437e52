// Package factory associates named constructors with a type and dispatches
// them by variant tag.
//
// A Registry[T] is the explicit alternative to attaching construction
// behavior to instances: each concrete variant registers a constructor under
// a Tag, and callers construct by tag without knowing the variant's concrete
// shape ahead of time.
//
// Expected usage:
//
//	reg := factory.New[Shape]().
//		Provide("circle", func() Shape { return &Circle{} }).
//		Provide("square", func() Shape { return &Square{} })
//
//	s, err := reg.Make("circle")
//
// Registration happens once, in the composition root; dispatch is read-only
// and side effect free. A Registry is not safe for concurrent registration.
package factory
