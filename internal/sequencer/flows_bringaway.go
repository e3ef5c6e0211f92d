package sequencer

import (
	"time"

	"liftcell/internal/motion"
	"liftcell/internal/wire"
)

// stepBringAway drives the BringAway flow (500-599): it describes
// this as "a variant of Full starting from the lift's current tray
// state" without naming sub-cycle numbers, so this flow mirrors only
// Full's place leg (it assumes a tray is already aboard, checked at
// dispatch time by stepAccepted, which rejects BringAway without a tray,
// and ActiveOrigin was seeded from the current row rather than from an
// origin field) under a 500-based range of my own numbering, documented
// as an open-question resolution.
func (s *Sequencer) stepBringAway(clock time.Time, ackEdge bool) Result {
	switch s.Lift.Cycle {
	case 500:
		s.handshakeJobType = wire.HandshakeSetTray
		if ackEdge {
			s.Lift.Cycle = 501
			return s.snapshotWithComment("SetTray acknowledged.")
		}
		return s.snapshotWithComment("Waiting for SetTray acknowledgement.")

	case 501, 502, 503, 504:
		return s.runEngineMove4(clock, 501, s.Lift.ActiveDestination, motion.OffsetExact, 550, "Moving to destination row.")

	case 550, 551, 552, 553:
		return s.runForkMove4(clock, 550, wire.ForkRight, 555, "Extending forks to place side.")

	case 555:
		if s.Lift.Row == s.Lift.ActiveDestination {
			s.engine.Start(clock, s.cfg.Engine, s.Lift.ActiveDestination, motion.OffsetPlace)
			return s.snapshotWithComment("Placing tray.")
		}
		s.engine.Start(clock, s.cfg.Engine, s.Lift.ActiveDestination, motion.OffsetExact)
		s.Lift.Cycle = 556
		return s.snapshotWithComment("Settling after place.")

	case 556:
		s.Lift.TrayPresent = false
		s.Lift.Cycle = 560
		return s.snapshotWithComment("Tray placed.")

	case 560, 561, 562, 563:
		return s.runForkMove4(clock, 560, wire.ForkMiddle, 599, "Retracting forks after place.")

	case 599:
		return s.snapshotWithComment("Job complete, awaiting clear.")

	default:
		return s.enterError(9, "Unknown BringAway cycle", "Internal fault; cycle value out of range.")
	}
}
