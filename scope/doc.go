// Package scope times bounded blocks of code against wall-clock time.
//
// The central record is Timer: Start at block entry, End at block exit, and
// Interval = End - Start. The package guarantees that once a block is entered,
// End and Interval are finalized on every exit path:
//
//   - Time runs a closure and finalizes the record after the closure exits,
//     whether it returns normally or with an error. Errors pass through
//     unchanged; the package never suppresses or transforms them.
//   - Begin/Stop cover code that cannot be expressed as a closure. Pair Begin
//     with a deferred Stop and the record is finalized even when the
//     surrounding function panics.
//
// Timing is read through a Clock, so tests can drive time deterministically.
// A Timer is owned by the scope that produced it; nothing here is shared or
// safe for concurrent use.
package scope
