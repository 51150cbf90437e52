// Package stow provides a set of small, explicit state-and-scope primitives for Go.
//
// This repository collects a handful of single-purpose building blocks:
//
//   - scope: wall-clock timing of a bounded block, finalized on every exit path
//   - box: an immutable generic container for exactly one value
//   - hold: a guarded numeric cell with validated writes and an unconditional reset
//   - factory: named constructors dispatched by variant tag
//
// The goal is to keep each primitive exclusively owned by its creator, free of
// hidden state, and small enough to read in one sitting. None of the packages
// depend on each other; compose them in your own code as needed.
//
// Start with the examples in the repo for end-to-end usage.
//
// Package stow See subpackages:
//   - scope, box, hold, factory: the library packages
//   - examples/*: runnable examples for each primitive
package stow
