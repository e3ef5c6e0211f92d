package sequencer

import (
	"time"

	"liftcell/internal/motion"
	"liftcell/internal/wire"
)

// stepFull drives the Full flow (100-299): pickup at origin, then place at
// destination. The exact cycle numbers are the external wire contract and
// are reproduced literally rather than computed, since the two-hundred-wide
// range is not a uniform repeat of a single pattern (pickup and place use
// mirrored but not identical sub-ranges).
func (s *Sequencer) stepFull(clock time.Time, ackEdge bool) Result {
	switch s.Lift.Cycle {
	case 100:
		s.handshakeJobType = wire.HandshakeGetTray
		if ackEdge {
			s.Lift.Cycle = 101
			return s.snapshotWithComment("GetTray acknowledged.")
		}
		return s.snapshotWithComment("Waiting for GetTray acknowledgement.")

	case 101:
		if s.Lift.ForkSide != wire.ForkMiddle {
			s.fork.Start(clock, s.cfg.Fork, int(wire.ForkMiddle))
			return s.snapshotWithComment("Centering forks before pickup move.")
		}
		s.Lift.Cycle = 102
		return s.snapshotWithComment("Forks centered.")

	case 102, 103, 104, 105:
		return s.runEngineMove4(clock, 102, s.Lift.ActiveOrigin, motion.OffsetExact, 150, "Moving to pickup row.")

	case 150, 151, 152, 153:
		return s.runForkMove4(clock, 150, wire.ForkLeft, 155, "Extending forks to pickup side.")

	case 155:
		// Two physical moves share this one cycle number: approach with the
		// pickup offset, then settle exactly on the origin row. The second
		// move is kicked off here too (advancing to 156 only once it has
		// started) because a just-finished primitive falls through to this
		// same dispatch within the same tick (see Tick's primitive
		// resolution), so the offset leg's completion is observed here.
		if s.Lift.Row == s.Lift.ActiveOrigin {
			s.engine.Start(clock, s.cfg.Engine, s.Lift.ActiveOrigin, motion.OffsetPickup)
			return s.snapshotWithComment("Lowering onto tray.")
		}
		s.engine.Start(clock, s.cfg.Engine, s.Lift.ActiveOrigin, motion.OffsetExact)
		s.Lift.Cycle = 156
		return s.snapshotWithComment("Settling with tray.")

	case 156:
		s.Lift.TrayPresent = true
		s.Lift.Cycle = 160
		return s.snapshotWithComment("Tray picked up.")

	case 160, 161, 162, 163:
		return s.runForkMove4(clock, 160, wire.ForkMiddle, 199, "Retracting forks after pickup.")

	case 199:
		s.Lift.Cycle = 201
		return s.snapshotWithComment("Pickup complete, moving to destination.")

	case 201:
		s.handshakeJobType = wire.HandshakeSetTray
		if ackEdge {
			s.Lift.Cycle = 202
			return s.snapshotWithComment("SetTray acknowledged.")
		}
		return s.snapshotWithComment("Waiting for SetTray acknowledgement.")

	case 202, 203, 204, 205:
		return s.runEngineMove4(clock, 202, s.Lift.ActiveDestination, motion.OffsetExact, 250, "Moving to destination row.")

	case 250, 251, 252, 253:
		return s.runForkMove4(clock, 250, wire.ForkRight, 255, "Extending forks to place side.")

	case 255:
		if s.Lift.Row == s.Lift.ActiveDestination {
			s.engine.Start(clock, s.cfg.Engine, s.Lift.ActiveDestination, motion.OffsetPlace)
			return s.snapshotWithComment("Placing tray.")
		}
		s.engine.Start(clock, s.cfg.Engine, s.Lift.ActiveDestination, motion.OffsetExact)
		s.Lift.Cycle = 256
		return s.snapshotWithComment("Settling after place.")

	case 256:
		s.Lift.TrayPresent = false
		s.Lift.Cycle = 260
		return s.snapshotWithComment("Tray placed.")

	case 260, 261, 262, 263:
		return s.runForkMove4(clock, 260, wire.ForkMiddle, 299, "Retracting forks after place.")

	case 299:
		return s.snapshotWithComment("Job complete, awaiting clear.")

	default:
		return s.enterError(9, "Unknown Full cycle", "Internal fault; cycle value out of range.")
	}
}
