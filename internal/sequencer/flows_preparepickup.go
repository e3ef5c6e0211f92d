package sequencer

import (
	"time"

	"liftcell/internal/motion"
	"liftcell/internal/wire"
)

// stepPreparePickup drives the PreparePickup flow (400-499): stage the
// lift at the origin row with forks extended to the pickup side, without
// actually taking the tray aboard. Used by the supervisor to position a
// lift ahead of a tray becoming available.
func (s *Sequencer) stepPreparePickup(clock time.Time, ackEdge bool) Result {
	switch s.Lift.Cycle {
	case 400:
		s.handshakeJobType = wire.HandshakeGetTray
		if ackEdge {
			s.Lift.Cycle = 410
			return s.snapshotWithComment("GetTray acknowledged.")
		}
		return s.snapshotWithComment("Waiting for GetTray acknowledgement.")

	case 410, 411, 412, 413:
		return s.runEngineMove4(clock, 410, s.Lift.ActiveOrigin, motion.OffsetExact, 450, "Moving to pickup row.")

	case 450, 451, 452, 453:
		return s.runForkMove4(clock, 450, wire.ForkLeft, 499, "Extending forks to pickup side.")

	case 499:
		return s.snapshotWithComment("Staged for pickup, awaiting clear.")

	default:
		return s.enterError(9, "Unknown PreparePickup cycle", "Internal fault; cycle value out of range.")
	}
}
