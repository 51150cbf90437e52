package hold

import "strconv"

// Real is the set of built-in numeric kinds a Holder can store.
//
// Unsigned kinds are excluded: they cannot represent the invalid (negative)
// input the guard exists for.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// NegativeValueError is returned when a Holder is given a negative value,
// either at construction or through Write.
type NegativeValueError[T Real] struct {
	// Value is the rejected input.
	Value T
}

// Error implements the error interface.
func (e NegativeValueError[T]) Error() string {
	// Example: hold: negative value -10
	return "hold: negative value " + strconv.FormatFloat(float64(e.Value), 'g', -1, 64)
}

// Holder is a guarded numeric cell.
//
// The stored value is never negative: New and Write reject negative input,
// and Reset stores zero. A Holder persists for its owner's lifetime and has
// no terminal state.
type Holder[T Real] struct {
	value T
}

// New constructs a Holder storing initial.
//
// A negative initial value is rejected with NegativeValueError, so the
// non-negative invariant holds from construction onward.
func New[T Real](initial T) (*Holder[T], error) {
	if initial < 0 {
		return nil, NegativeValueError[T]{Value: initial}
	}
	return &Holder[T]{value: initial}, nil
}

// MustNew constructs a Holder or panics on a negative initial value.
//
// Useful in examples/tests where a bad literal should fail fast.
func MustNew[T Real](initial T) *Holder[T] {
	h, err := New(initial)
	if err != nil {
		panic(err)
	}
	return h
}

// Read returns the stored value.
func (h *Holder[T]) Read() T { return h.value }

// Write stores v.
//
// A negative v is rejected with NegativeValueError and the stored value is
// left unchanged; there is no partial mutation on failure.
func (h *Holder[T]) Write(v T) error {
	if v < 0 {
		return NegativeValueError[T]{Value: v}
	}
	h.value = v
	return nil
}

// Reset stores zero. It always succeeds.
func (h *Holder[T]) Reset() { h.value = 0 }
