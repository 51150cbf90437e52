// Package hold provides a guarded numeric cell.
//
// A Holder stores one numeric value behind explicit accessor and mutator
// operations, each enforcing its own precondition:
//
//   - Read returns the current value with no side effects.
//   - Write rejects negative input with a typed error and commits nothing on
//     failure; valid input replaces the stored value.
//   - Reset unconditionally stores zero and always succeeds.
//
// The invariant is that the stored value is never negative. New enforces it
// at construction as well, so it holds at every point in a Holder's life.
//
// A Holder is exclusively owned by its creator and is not safe for concurrent
// use.
package hold
