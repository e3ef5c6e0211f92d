// Package cell implements the Cell Supervisor: the fixed per-tick pipeline
// that samples EcoToPlc, advances both lifts' sequencers in a fixed order,
// recomputes reach, publishes PlcToEco, and services the watchdog. Grounded
// on a plain select loop over a ticker, but the tick body itself is a
// synchronous, lock-free function so no ordering guarantee depends on
// goroutine scheduling.
package cell

import (
	"log/slog"
	"time"

	"liftcell/internal/config"
	"liftcell/internal/lift"
	"liftcell/internal/sequencer"
	"liftcell/internal/varspace"
	"liftcell/internal/wire"
)

const watchdogFaultCode = 99

// Cell owns the Variable Space and both lifts' sequencers, and runs the
// fixed tick pipeline.
type Cell struct {
	Space *varspace.Space
	log   *slog.Logger
	cfg   config.Config

	lift1 *lift.Lift
	lift2 *lift.Lift
	seq1  *sequencer.Sequencer
	seq2  *sequencer.Sequencer
	pub   *publisher

	watchdogLastSeen time.Time
	watchdogArmed    bool
}

// New builds a Cell from cfg, with a fresh Variable Space and both lifts
// parked in Init.
func New(cfg config.Config, log *slog.Logger) *Cell {
	space := varspace.New()
	if alias, ok := wire.CancelAssignmentAliasPath(wire.Lift1); ok {
		space.Alias(alias, wire.CancelAssignmentPath(wire.Lift1))
	}

	l1 := lift.New(wire.Lift1, cfg.Lift1.RowMin, cfg.Lift1.RowMax)
	l2 := lift.New(wire.Lift2, cfg.Lift2.RowMin, cfg.Lift2.RowMax)
	durations := sequencer.Durations{Fork: cfg.ForkMoveDuration, Engine: cfg.EngineMoveDuration}

	return &Cell{
		Space: space,
		log:   log,
		cfg:   cfg,
		lift1: l1,
		lift2: l2,
		seq1:  sequencer.New(l1, durations),
		seq2:  sequencer.New(l2, durations),
		pub:   newPublisher(),
	}
}

// Tick runs one pass of the fixed pipeline: sample, advance lift 1, advance
// lift 2, recompute reach, publish, service watchdog.
func (c *Cell) Tick(clock time.Time) {
	in1 := sampleInputs(c.Space, wire.Lift1)
	in2 := sampleInputs(c.Space, wire.Lift2)

	res1 := c.seq1.Tick(clock, in1, c.lift2.Snapshot())
	res2 := c.seq2.Tick(clock, in2, c.lift1.Snapshot())

	c.lift1.Reach()
	c.lift2.Reach()

	publishLift(c.pub, c.Space, wire.Lift1, res1)
	publishLift(c.pub, c.Space, wire.Lift2, res2)
	publishAggregate(c.pub, c.Space, worstStatus(res1.StationStatus, res2.StationStatus))

	c.serviceWatchdog(clock)
}

func sampleInputs(space *varspace.Space, id wire.LiftID) sequencer.Inputs {
	// iCancelAssignment is int64 on the wire, nonzero meaning abort (the
	// nonzero value is itself a CancelCode); it is not a bool cell.
	cancel := space.ReadInt(wire.CancelAssignmentPath(id)) != 0
	return sequencer.Inputs{
		TaskType:        wire.TaskType(space.ReadInt(wire.TaskTypePath(id))),
		Origin:          int(space.ReadInt(wire.OriginationPath(id))),
		Destination:     int(space.ReadInt(wire.DestinationPath(id))),
		Ack:             space.ReadBool(wire.AckMovementPath(id)),
		CancelRequested: cancel,
		ClearError:      space.ReadBool(wire.ClearErrorPath(id)),
	}
}

func worstStatus(a, b wire.StationStatus) wire.StationStatus {
	rank := func(s wire.StationStatus) int {
		switch s {
		case wire.StatusErr:
			return 4
		case wire.StatusWarn:
			return 3
		case wire.StatusNotif:
			return 2
		default:
			return 1
		}
	}
	if rank(a) >= rank(b) {
		return a
	}
	return b
}

// serviceWatchdog implements the toggle-and-reset-on-observe pattern of
// original_source/PLCSim_Pi.py: every tick the supervisor holds xWatchDog
// true resets the window; if the window lapses with no observed true, both
// lifts are forced to Error, same as a detected motion fault.
func (c *Cell) serviceWatchdog(clock time.Time) {
	if c.Space.ReadBool(wire.WatchDogPath()) {
		c.watchdogLastSeen = clock
		c.watchdogArmed = true
		c.Space.Write(wire.WatchDogPath(), varspace.Bool(false))
		return
	}
	if !c.watchdogArmed {
		return
	}
	if clock.Sub(c.watchdogLastSeen) <= c.cfg.WatchdogWindow {
		return
	}
	c.log.Warn("watchdog window lapsed, forcing both lifts to error")
	res1 := c.seq1.ForceFault(watchdogFaultCode, "Watchdog timeout", "Check supervisor connection, then clear error.")
	res2 := c.seq2.ForceFault(watchdogFaultCode, "Watchdog timeout", "Check supervisor connection, then clear error.")
	publishLift(c.pub, c.Space, wire.Lift1, res1)
	publishLift(c.pub, c.Space, wire.Lift2, res2)
	c.watchdogArmed = false
}
