// Package motion implements the two timed motion primitives: engine move
// (change row) and fork move (change fork side). Both are modeled as a
// start instant plus a fixed duration, polled once per tick via a
// clock-driven Done check rather than driven by an internal goroutine or
// timer, since the Sequencer that owns these primitives never suspends
// mid-tick.
package motion

import "time"

// OffsetMode shifts an engine move's final row by one unit to simulate
// lowering/raising the fork onto or off a tray.
type OffsetMode int

const (
	OffsetExact OffsetMode = iota
	OffsetPickup
	OffsetPlace
)

// Primitive is a single in-flight timed sub-operation.
type Primitive struct {
	active    bool
	start     time.Time
	duration  time.Duration
	timedOut  bool
}

// Start begins the primitive. Calling Start while already active is a
// programming error and panics: "this should never legitimately happen"
// faults are surfaced loudly rather than swallowed.
func (p *Primitive) Start(clock time.Time, duration time.Duration) {
	if p.active {
		panic("motion: Start called while primitive already in progress")
	}
	p.active = true
	p.timedOut = false
	p.start = clock
	p.duration = duration
}

// Poll reports whether the primitive has completed by clock, and whether it
// has exceeded twice its nominal duration (a motion timeout).
// Once either completion or timeout is observed the primitive is no longer
// active.
func (p *Primitive) Poll(clock time.Time) (done bool, timedOut bool) {
	if !p.active {
		return true, false
	}
	elapsed := clock.Sub(p.start)
	if elapsed >= 2*p.duration {
		p.active = false
		p.timedOut = true
		return true, true
	}
	if elapsed >= p.duration {
		p.active = false
		return true, false
	}
	return false, false
}

// Active reports whether the primitive is currently in progress.
func (p *Primitive) Active() bool { return p.active }

// EngineMove is an in-progress row change, optionally with a pickup/place
// offset applied to the final resting row.
type EngineMove struct {
	Primitive
	TargetRow int
	Offset    OffsetMode
}

// Start begins an engine move toward targetRow.
func (m *EngineMove) Start(clock time.Time, duration time.Duration, targetRow int, offset OffsetMode) {
	m.Primitive.Start(clock, duration)
	m.TargetRow = targetRow
	m.Offset = offset
}

// FinalRow is TargetRow adjusted by the offset mode: pickup/place legs land
// one unit short/past the nominal row to simulate lowering onto or lifting
// off a tray, exact lands exactly on TargetRow.
func (m *EngineMove) FinalRow() int {
	switch m.Offset {
	case OffsetPickup:
		return m.TargetRow - 1
	case OffsetPlace:
		return m.TargetRow + 1
	default:
		return m.TargetRow
	}
}

// ForkMove is an in-progress fork-side change.
type ForkMove struct {
	Primitive
	TargetSide int
}

// Start begins a fork move toward targetSide.
func (m *ForkMove) Start(clock time.Time, duration time.Duration, targetSide int) {
	m.Primitive.Start(clock, duration)
	m.TargetSide = targetSide
}
