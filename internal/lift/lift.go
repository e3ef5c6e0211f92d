// Package lift holds per-lift physical state and the reach computation the
// Validator consults to avoid collisions between the two lifts sharing one
// shaft.
package lift

import "liftcell/internal/wire"

// Lift is one of the two carriages sharing the shaft.
type Lift struct {
	ID LiftID

	Row         int
	ForkSide    wire.ForkSide
	TrayPresent bool
	ErrorCode   int
	SeqComment  string
	Cycle       int
	CancelReason wire.CancelCode

	// ReachMin/ReachMax is the closed row interval this lift currently
	// occupies or may occupy before next yielding control to the
	// Validator. Recomputed once per tick by the Cell
	// Supervisor via Reach.
	ReachMin int
	ReachMax int

	// RowMin/RowMax is this lift's physical range, from configuration.
	RowMin int
	RowMax int

	// activeOrigin/activeDestination track the accepted job's endpoints,
	// used by Reach while a flow is in progress. Zero means "none."
	ActiveOrigin      int
	ActiveDestination int
	HasActiveJob      bool
}

// LiftID identifies a lift; re-exported from wire for convenience at call
// sites that only import lift.
type LiftID = wire.LiftID

// Lift1 identifies the first lift; re-exported from wire for convenience.
const Lift1 = wire.Lift1

// New constructs a lift parked at row 0 (undefined) with forks middle.
func New(id LiftID, rowMin, rowMax int) *Lift {
	return &Lift{
		ID:       id,
		Row:      0,
		ForkSide: wire.ForkMiddle,
		RowMin:   rowMin,
		RowMax:   rowMax,
	}
}

// InPhysicalRange reports whether row falls within this lift's configured
// physical range.
func (l *Lift) InPhysicalRange(row int) bool {
	return row >= l.RowMin && row <= l.RowMax
}

// Reach recomputes ReachMin/ReachMax: in Ready it degenerates
// to [row, row]; with an active job it is the min/max over current row and
// the job's origin/destination, matching original_source/PLCSim_Pi.py's
// _calculate_movement_range (current-position-inclusive, ignoring
// non-positive/unset endpoints).
func (l *Lift) Reach() (min, max int) {
	positions := []int{l.Row}
	if l.HasActiveJob {
		if l.ActiveOrigin > 0 {
			positions = append(positions, l.ActiveOrigin)
		}
		if l.ActiveDestination > 0 {
			positions = append(positions, l.ActiveDestination)
		}
	}
	min, max = positions[0], positions[0]
	for _, p := range positions[1:] {
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}
	l.ReachMin, l.ReachMax = min, max
	return min, max
}

// View is the read-only snapshot of a lift the Validator consults about the
// *peer* lift. Exposing a narrow View rather than *Lift avoids giving the
// Validator (or one lift) a mutable handle on the other lift; peer state is
// resolved through the Cell each tick rather than a direct lift-to-lift
// reference.
type View struct {
	TrayPresent  bool
	HasActiveJob bool
	ReachMin     int
	ReachMax     int
	ErrorCode    int
	RowMin       int
	RowMax       int
}

// Snapshot produces the View peers see of this lift.
func (l *Lift) Snapshot() View {
	return View{
		TrayPresent:  l.TrayPresent,
		HasActiveJob: l.HasActiveJob,
		ReachMin:     l.ReachMin,
		ReachMax:     l.ReachMax,
		ErrorCode:    l.ErrorCode,
		RowMin:       l.RowMin,
		RowMax:       l.RowMax,
	}
}

// RangesOverlap reports whether two closed intervals intersect, per
// original_source/PLCSim_Pi.py's _check_lift_ranges_overlap. A [0,0]
// interval (degenerate/unset) never overlaps anything.
func RangesOverlap(aMin, aMax, bMin, bMax int) bool {
	if aMin == 0 && aMax == 0 {
		return false
	}
	if bMin == 0 && bMax == 0 {
		return false
	}
	return !(aMax < bMin || aMin > bMax)
}
