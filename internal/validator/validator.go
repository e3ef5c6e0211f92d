// Package validator implements the pure admission check: given
// a job request and the current state of both lifts, decide accept or a
// cancel reason code. The seven checks run in a fixed order; the first
// failure wins and no further checks run.
package validator

import (
	"liftcell/internal/lift"
	"liftcell/internal/wire"
)

// Job is the admission-time view of a requested job: its inputs,
// narrowed to what the Validator needs.
type Job struct {
	TaskType    wire.TaskType
	Origin      int
	Destination int
}

// Self is the admission-time view of the lift the job is addressed to.
type Self struct {
	TrayPresent bool
	RowMin      int
	RowMax      int
	Reach       [2]int // [min, max] of the job's own prospective movement range
}

// Validate runs the seven ordered checks and returns whether
// the job is accepted, and if not, the cancel code.
func Validate(job Job, self Self, peer lift.View) (accepted bool, reason wire.CancelCode) {
	// 1. Cross-lift collision: the peer has an active job and the union of
	// reach intervals requires crossing.
	if peer.HasActiveJob && lift.RangesOverlap(self.Reach[0], self.Reach[1], peer.ReachMin, peer.ReachMax) {
		return false, wire.CancelLiftsCross
	}

	// 2. Invalid zero position, per task type.
	switch job.TaskType {
	case wire.TaskFull:
		if job.Origin == 0 || job.Destination == 0 {
			return false, wire.CancelInvalidZeroPos
		}
	case wire.TaskMoveTo, wire.TaskPreparePickup, wire.TaskBringAway:
		if job.Origin == 0 {
			return false, wire.CancelInvalidZeroPos
		}
	}

	// 3. Pickup-with-tray: any pickup-bearing task rejected if the target
	// lift already has a tray aboard at admission time.
	if isPickupBearing(job.TaskType) && self.TrayPresent {
		return false, wire.CancelPickupWithTray
	}

	// 4. Destination out of physical reach.
	if job.Destination > 0 && !inRange(job.Destination, self.RowMin, self.RowMax) {
		return false, wire.CancelDestOutOfReach
	}

	// 5. Invalid assignment: destination required but not given.
	if requiresDestination(job.TaskType) && job.Destination <= 0 {
		return false, wire.CancelInvalidAssignment
	}

	// 6. Origin out of physical reach.
	if job.Origin > 0 && !inRange(job.Origin, self.RowMin, self.RowMax) {
		return false, wire.CancelOriginOutOfReach
	}

	// 7. Accepted.
	return true, wire.CancelNone
}

// ValidateCancel checks a supervisor-driven cancel request, which can occur
// at any time during an active flow.
func ValidateCancel(cancelRequested bool) (canceled bool, reason wire.CancelCode) {
	if cancelRequested {
		return true, wire.CancelByEcoSystem
	}
	return false, wire.CancelNone
}

func isPickupBearing(t wire.TaskType) bool {
	switch t {
	case wire.TaskFull, wire.TaskPreparePickup:
		return true
	default:
		return false
	}
}

// requiresDestination names the flows whose target row travels in the
// Destination field. MoveTo's target travels in Origin instead (the field
// naming check 2 implies and original_source/PLCSim_Pi.py's
// MoveToAssignment branch confirms: it validates iOrigination only and
// never assigns a destination to the active job), so MoveTo is excluded
// here even though MoveTo's target is often described as a "destination."
func requiresDestination(t wire.TaskType) bool {
	switch t {
	case wire.TaskFull, wire.TaskBringAway:
		return true
	default:
		return false
	}
}

func inRange(row, min, max int) bool {
	return row >= min && row <= max
}
