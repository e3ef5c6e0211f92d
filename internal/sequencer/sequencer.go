// Package sequencer implements the per-lift job lifecycle state machine.
// The cycle code IS the state (no coroutines, no continuations) by
// design. Tick is a pure function of (state, inputs, clock) ->
// (state', publications), safe to call without any wall-clock sleeping,
// which is what makes it testable without time.
package sequencer

import (
	"time"

	"liftcell/internal/lift"
	"liftcell/internal/motion"
	"liftcell/internal/validator"
	"liftcell/internal/wire"
)

// Cycle codes are the external wire contract; supervisor
// UIs display these numbers directly.
const (
	CycleInit       = -10
	CycleIdle       = 0
	CycleReady      = 10
	CycleValidation = 25
	CycleAccepted   = 30
	CycleRejected   = 650
	CycleError      = 888

	FullBase          = 100
	MoveToBase        = 300
	PreparePickupBase = 400
	BringAwayBase     = 500
)

// Inputs is the per-tick sample of this lift's EcoToPlc cells (the
// Job fields, plus the two standalone handshake/error bits).
type Inputs struct {
	TaskType        wire.TaskType
	Origin          int
	Destination     int
	Ack             bool
	CancelRequested bool
	ClearError      bool
}

// Result is everything this tick publishes to PlcToEco for this lift.
type Result struct {
	Cycle                    int
	StationStatus            wire.StationStatus
	CancelReason             wire.CancelCode
	SeqComment               string
	ErrorCode                int
	ShortAlarmDescription    string
	AlarmSolution            string
	StationStateDescription  string
	HandshakeJobType         wire.HandshakeJobType
	HandshakeRowNr           int
	RowLocation              int
	TrayPresent              bool
	ForkSide                 wire.ForkSide
}

type activeJob struct {
	taskType    wire.TaskType
	origin      int
	destination int
}

// Durations bundles the two motion primitives' nominal durations.
type Durations struct {
	Fork   time.Duration
	Engine time.Duration
}

// Sequencer drives one Lift through its job lifecycle. It never mutates
// the peer lift; peer state is only ever consulted through a borrowed
// lift.View, resolved through the Cell each tick rather than a direct
// lift-to-lift reference.
type Sequencer struct {
	Lift *lift.Lift
	cfg  Durations

	engine motion.EngineMove
	fork   motion.ForkMove

	prevAck bool
	job     activeJob

	handshakeJobType wire.HandshakeJobType
	cancelReason     wire.CancelCode
}

// New constructs a Sequencer for l, starting at cycle -10 (Init).
func New(l *lift.Lift, d Durations) *Sequencer {
	l.Cycle = CycleInit
	return &Sequencer{Lift: l, cfg: d}
}

// Tick advances the Sequencer by one step.
func (s *Sequencer) Tick(clock time.Time, in Inputs, peer lift.View) Result {
	ackEdge := in.Ack && !s.prevAck
	s.prevAck = in.Ack

	// Resolve any in-progress primitive before anything else. If it is
	// still moving, every other concern (cancel, clear-error, cycle
	// dispatch) waits — this is what makes a cancel mid-motion "wait for
	// the primitive to finish, then transition" instead of
	// interrupting it.
	if s.engine.Active() {
		done, timedOut := s.engine.Poll(clock)
		if timedOut {
			return s.enterError(1, "Engine motion timeout", "Check lift drive, then clear error.")
		}
		if !done {
			return s.snapshot()
		}
		s.Lift.Row = s.engine.FinalRow()
	}
	if s.fork.Active() {
		done, timedOut := s.fork.Poll(clock)
		if timedOut {
			return s.enterError(2, "Fork motion timeout", "Check fork drive, then clear error.")
		}
		if !done {
			return s.snapshot()
		}
		s.Lift.ForkSide = wire.ForkSide(s.fork.TargetSide)
	}

	// A peer stuck in Error holds us only if our current reach overlaps
	// its last-known reach.
	if peer.ErrorCode != 0 && lift.RangesOverlap(s.Lift.ReachMin, s.Lift.ReachMax, peer.ReachMin, peer.ReachMax) {
		return s.snapshot()
	}

	if in.ClearError && s.Lift.Cycle == CycleError {
		s.Lift.ErrorCode = 0
		s.Lift.Cycle = CycleInit
		return s.snapshotWithComment("Error cleared, reinitializing.")
	}

	if canceled, reason := validator.ValidateCancel(in.CancelRequested); canceled && s.cancelable() {
		return s.reject(reason, "Job cancelled by supervisor.")
	}

	if isTerminal(s.Lift.Cycle) && in.TaskType == 0 {
		s.clearJob()
		s.Lift.Cycle = CycleReady
		return s.snapshotWithComment("Ready for job.")
	}

	switch {
	case s.Lift.Cycle == CycleInit:
		return s.stepInit(clock)
	case s.Lift.Cycle == CycleIdle:
		return s.stepIdle()
	case s.Lift.Cycle == CycleReady:
		return s.stepReady(in)
	case s.Lift.Cycle == CycleValidation:
		return s.stepValidation(peer)
	case s.Lift.Cycle == CycleAccepted:
		return s.stepAccepted()
	case s.Lift.Cycle == CycleRejected:
		return s.stepRejected(in)
	case s.Lift.Cycle == CycleError:
		return s.snapshotWithComment("Awaiting xClearError.")
	case s.Lift.Cycle >= FullBase && s.Lift.Cycle < FullBase+200:
		return s.stepFull(clock, ackEdge)
	case s.Lift.Cycle >= MoveToBase && s.Lift.Cycle < MoveToBase+100:
		return s.stepMoveTo(clock, in, peer)
	case s.Lift.Cycle >= PreparePickupBase && s.Lift.Cycle < PreparePickupBase+100:
		return s.stepPreparePickup(clock, ackEdge)
	case s.Lift.Cycle >= BringAwayBase && s.Lift.Cycle < BringAwayBase+100:
		return s.stepBringAway(clock, ackEdge)
	default:
		return s.enterError(9, "Unknown cycle", "Internal fault; cycle value out of range.")
	}
}

// isTerminal reports whether cycle is one of the four flows' successful
// end states, which all wait for the supervisor to clear task_type to 0
// before returning to Ready.
func isTerminal(cycle int) bool {
	switch cycle {
	case 299, 399, 499, 599:
		return true
	default:
		return false
	}
}

// ForceFault drives this lift straight into Error, for faults the Cell
// Supervisor detects outside of any single lift's own tick (the watchdog
// timeout).
func (s *Sequencer) ForceFault(code int, shortDesc, solution string) Result {
	return s.enterError(code, shortDesc, solution)
}

// cancelable reports whether the current cycle has an active job that a
// supervisor cancel can actually abort. Ready/Idle/Init/Rejected/Error have
// no in-flight job to cancel.
func (s *Sequencer) cancelable() bool {
	switch s.Lift.Cycle {
	case CycleInit, CycleIdle, CycleReady, CycleRejected, CycleError:
		return false
	default:
		return !isTerminal(s.Lift.Cycle)
	}
}

func (s *Sequencer) stepInit(clock time.Time) Result {
	if s.Lift.ForkSide != wire.ForkMiddle && !s.fork.Active() {
		s.fork.Start(clock, s.cfg.Fork, int(wire.ForkMiddle))
		return s.snapshotWithComment("Initializing: centering forks.")
	}
	s.Lift.Row = 0
	s.Lift.TrayPresent = false
	s.Lift.ErrorCode = 0
	s.Lift.CancelReason = wire.CancelNone
	s.Lift.HasActiveJob = false
	s.job = activeJob{}
	s.Lift.Cycle = CycleIdle
	return s.snapshotWithComment("Initialized.")
}

func (s *Sequencer) stepIdle() Result {
	// Auto-mode enable/disable is an operator-workflow concern of the
	// supervisor's GUI, explicitly out of scope; this core
	// always proceeds straight to Ready.
	s.Lift.Cycle = CycleReady
	return s.snapshotWithComment("Idle.")
}

func (s *Sequencer) stepReady(in Inputs) Result {
	if in.TaskType > 0 {
		origin := in.Origin
		// MoveTo's single target row travels in Origin (see
		// requiresDestination's doc comment), but a supervisor may write it
		// in Destination instead since both fields name the same one row
		// for this task type; accept either so the row isn't lost to a
		// spurious zero-position rejection.
		if in.TaskType == wire.TaskMoveTo && origin == 0 {
			origin = in.Destination
		}
		s.job = activeJob{taskType: in.TaskType, origin: origin, destination: in.Destination}
		s.Lift.Cycle = CycleValidation
		return s.snapshotWithComment("Job received, validating.")
	}
	return s.snapshotWithComment("Ready for job.")
}

func (s *Sequencer) stepValidation(peer lift.View) Result {
	self := validator.Self{
		TrayPresent: s.Lift.TrayPresent,
		RowMin:      s.Lift.RowMin,
		RowMax:      s.Lift.RowMax,
		Reach:       s.prospectiveReach(),
	}
	job := validator.Job{TaskType: s.job.taskType, Origin: s.job.origin, Destination: s.job.destination}

	accepted, reason := validator.Validate(job, self, peer)
	if !accepted {
		return s.reject(reason, "Job rejected by validator.")
	}
	s.Lift.Cycle = CycleAccepted
	return s.snapshotWithComment("Job accepted.")
}

// prospectiveReach computes the [min,max] the job under validation would
// occupy, following the "Full/MoveTo flows with an accepted job" rule,
// evaluated ahead of acceptance so the Validator's cross-lift check can
// use it.
func (s *Sequencer) prospectiveReach() [2]int {
	positions := []int{s.Lift.Row}
	if s.job.origin > 0 {
		positions = append(positions, s.job.origin)
	}
	if s.job.destination > 0 {
		positions = append(positions, s.job.destination)
	}
	min, max := positions[0], positions[0]
	for _, p := range positions[1:] {
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}
	return [2]int{min, max}
}

func (s *Sequencer) stepAccepted() Result {
	s.Lift.HasActiveJob = true
	switch s.job.taskType {
	case wire.TaskFull:
		s.Lift.ActiveOrigin, s.Lift.ActiveDestination = s.job.origin, s.job.destination
		s.Lift.Cycle = FullBase
	case wire.TaskMoveTo:
		// MoveTo's target travels in Origin; see validator's
		// requiresDestination doc comment for the grounding.
		s.Lift.ActiveOrigin, s.Lift.ActiveDestination = s.job.origin, 0
		s.Lift.Cycle = MoveToBase
	case wire.TaskPreparePickup:
		s.Lift.ActiveOrigin, s.Lift.ActiveDestination = s.job.origin, s.job.destination
		s.Lift.Cycle = PreparePickupBase
	case wire.TaskBringAway:
		// BringAway assumes a tray already aboard; the Validator's seven
		// ordered checks have no dedicated case for this, so it is
		// enforced here instead, with the same effect as a rejection at
		// Validation.
		if !s.Lift.TrayPresent {
			return s.reject(wire.CancelInvalidAssignment, "BringAway requested without a tray aboard.")
		}
		s.Lift.ActiveOrigin, s.Lift.ActiveDestination = s.Lift.Row, s.job.destination
		s.Lift.Cycle = BringAwayBase
	}
	s.Lift.Reach()
	return s.snapshotWithComment("Dispatching job.")
}

func (s *Sequencer) stepRejected(in Inputs) Result {
	if in.TaskType == 0 {
		s.clearJob()
		s.Lift.Cycle = CycleReady
		return s.snapshotWithComment("Ready for job.")
	}
	return s.snapshotWithComment("Rejected, awaiting clear.")
}

func (s *Sequencer) reject(reason wire.CancelCode, comment string) Result {
	s.Lift.CancelReason = reason
	s.Lift.HasActiveJob = false
	s.job = activeJob{}
	s.Lift.Cycle = CycleRejected
	r := s.snapshotWithComment(comment)
	r.StationStatus = wire.StatusWarn
	r.CancelReason = reason
	return r
}

func (s *Sequencer) enterError(code int, shortDesc, solution string) Result {
	s.Lift.ErrorCode = code
	s.Lift.Cycle = CycleError
	r := s.snapshotWithComment(shortDesc)
	r.StationStatus = wire.StatusErr
	r.ErrorCode = code
	r.ShortAlarmDescription = shortDesc
	r.AlarmSolution = solution
	return r
}

func (s *Sequencer) clearJob() {
	s.Lift.HasActiveJob = false
	s.Lift.ActiveOrigin, s.Lift.ActiveDestination = 0, 0
	s.Lift.CancelReason = wire.CancelNone
	s.job = activeJob{}
	s.handshakeJobType = wire.HandshakeIdle
}

func (s *Sequencer) snapshot() Result {
	return s.snapshotWithComment(currentComment(s.Lift.Cycle))
}

func (s *Sequencer) snapshotWithComment(comment string) Result {
	status := wire.StatusOK
	if s.Lift.Cycle == CycleError {
		status = wire.StatusErr
	} else if s.Lift.Cycle == CycleRejected {
		status = wire.StatusWarn
	}
	return Result{
		Cycle:                    s.Lift.Cycle,
		StationStatus:            status,
		CancelReason:             s.Lift.CancelReason,
		SeqComment:               comment,
		ErrorCode:                s.Lift.ErrorCode,
		StationStateDescription:  comment,
		HandshakeJobType:         s.handshakeJobType,
		HandshakeRowNr:           0,
		RowLocation:              s.Lift.Row,
		TrayPresent:              s.Lift.TrayPresent,
		ForkSide:                 s.Lift.ForkSide,
	}
}

// runEngineMove4 drives a four-slot (start, settle, confirm, proceed) engine
// move beginning at phaseStart. The actual motion happens between the start
// slot and the settle slot, driven by Tick's top-of-function poll; the two
// trailing slots exist purely so the published cycle number visibly steps
// through the named range, matching the four-wide ranges this flow assigns
// to each named phase (e.g. "102-105 move engine to origin").
func (s *Sequencer) runEngineMove4(clock time.Time, phaseStart, targetRow int, offset motion.OffsetMode, nextCycle int, comment string) Result {
	switch s.Lift.Cycle {
	case phaseStart:
		if targetRow == s.Lift.Row && offset == motion.OffsetExact {
			s.Lift.Cycle = nextCycle
			return s.snapshotWithComment(comment)
		}
		s.engine.Start(clock, s.cfg.Engine, targetRow, offset)
		s.Lift.Cycle = phaseStart + 1
	case phaseStart + 1, phaseStart + 2:
		s.Lift.Cycle++
	case phaseStart + 3:
		s.Lift.Cycle = nextCycle
	}
	return s.snapshotWithComment(comment)
}

// runForkMove4 is runEngineMove4's counterpart for fork-side changes.
func (s *Sequencer) runForkMove4(clock time.Time, phaseStart int, targetSide wire.ForkSide, nextCycle int, comment string) Result {
	switch s.Lift.Cycle {
	case phaseStart:
		if s.Lift.ForkSide == targetSide {
			s.Lift.Cycle = nextCycle
			return s.snapshotWithComment(comment)
		}
		s.fork.Start(clock, s.cfg.Fork, int(targetSide))
		s.Lift.Cycle = phaseStart + 1
	case phaseStart + 1, phaseStart + 2:
		s.Lift.Cycle++
	case phaseStart + 3:
		s.Lift.Cycle = nextCycle
	}
	return s.snapshotWithComment(comment)
}

func currentComment(cycle int) string {
	switch cycle {
	case CycleInit:
		return "Initializing."
	case CycleIdle:
		return "Idle."
	case CycleReady:
		return "Ready for job."
	case CycleValidation:
		return "Validating."
	case CycleAccepted:
		return "Dispatching job."
	case CycleRejected:
		return "Rejected, awaiting clear."
	case CycleError:
		return "Awaiting xClearError."
	default:
		return "Busy."
	}
}
