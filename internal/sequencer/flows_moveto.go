package sequencer

import (
	"time"

	"liftcell/internal/lift"
	"liftcell/internal/motion"
)

// stepMoveTo drives the MoveTo flow (300-399): move to ActiveOrigin (the
// field MoveTo's target travels in, see validator's requiresDestination),
// re-checking the peer's reach each tick before committing to the move
// since the peer's state can change between acceptance and dispatch.
func (s *Sequencer) stepMoveTo(clock time.Time, in Inputs, peer lift.View) Result {
	switch s.Lift.Cycle {
	case 300:
		if s.Lift.Row == s.Lift.ActiveOrigin {
			s.Lift.Cycle = 399
			return s.snapshotWithComment("Already at target row.")
		}
		if peer.HasActiveJob && lift.RangesOverlap(s.Lift.ReachMin, s.Lift.ReachMax, peer.ReachMin, peer.ReachMax) {
			return s.snapshotWithComment("Waiting for shaft to clear.")
		}
		s.engine.Start(clock, s.cfg.Engine, s.Lift.ActiveOrigin, motion.OffsetExact)
		s.Lift.Cycle = 310
		return s.snapshotWithComment("Moving to target row.")

	case 310:
		// The primitive resolves at the top of Tick; reaching this case
		// means it has already completed and Row was updated there.
		s.Lift.Cycle = 399
		return s.snapshotWithComment("Arrived at target row.")

	case 399:
		return s.snapshotWithComment("Move complete, awaiting clear.")

	default:
		return s.enterError(9, "Unknown MoveTo cycle", "Internal fault; cycle value out of range.")
	}
}
