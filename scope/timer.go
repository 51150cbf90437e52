package scope

import "time"

// Clock abstracts wall-clock reads so scopes can be timed deterministically in tests.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

// Now implements Clock.
func (RealClock) Now() time.Time { return time.Now() }

// Timer is the record of one timed scope.
//
// Start is captured at block entry. End and Interval are finalized at block
// exit on every exit path, including error returns and panics (see Time and
// Running.Stop for how each form delivers that guarantee).
type Timer struct {
	Start    time.Time
	End      time.Time
	Interval time.Duration
}

// Stopwatch times scopes against a Clock.
//
// Construct with New or NewWithClock; the zero value has no clock.
type Stopwatch struct {
	clock Clock
}

// New returns a Stopwatch backed by the system clock.
func New() *Stopwatch { return NewWithClock(RealClock{}) }

// NewWithClock returns a Stopwatch backed by c.
//
// A nil c falls back to the system clock.
func NewWithClock(c Clock) *Stopwatch {
	if c == nil {
		c = RealClock{}
	}
	return &Stopwatch{clock: c}
}

// Time runs fn as a timed scope and returns the finalized record.
//
// Start is captured before fn runs. End and Interval are captured after fn
// exits — normally, with an error, or by panicking — via a deferred finalizer.
// fn's error is returned unchanged; a panic in fn propagates to the caller
// after the record is finalized.
func (s *Stopwatch) Time(fn func() error) (tm Timer, err error) {
	tm.Start = s.clock.Now()
	defer func() {
		tm.End = s.clock.Now()
		tm.Interval = tm.End.Sub(tm.Start)
	}()
	err = fn()
	return tm, err
}

// Time runs fn as a timed scope against the system clock.
//
// It is shorthand for New().Time(fn).
func Time(fn func() error) (Timer, error) {
	return New().Time(fn)
}

// Running is a scope that has been entered but not yet exited.
//
// Pair Begin with a deferred Stop so the record is finalized on every exit
// path of the surrounding function.
type Running struct {
	clock Clock
	tm    Timer
	done  bool
}

// Begin enters a timed scope, capturing Start immediately.
func (s *Stopwatch) Begin() *Running {
	return &Running{clock: s.clock, tm: Timer{Start: s.clock.Now()}}
}

// Stop exits the scope and returns the finalized record.
//
// The first call captures End and computes Interval; later calls return the
// already-finalized record unchanged, so a deferred Stop and an explicit Stop
// may coexist.
func (r *Running) Stop() Timer {
	if !r.done {
		r.tm.End = r.clock.Now()
		r.tm.Interval = r.tm.End.Sub(r.tm.Start)
		r.done = true
	}
	return r.tm
}

// Record returns the record as captured so far.
//
// Before Stop, only Start is set.
func (r *Running) Record() Timer { return r.tm }
