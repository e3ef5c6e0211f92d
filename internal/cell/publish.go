package cell

import (
	"log/slog"

	"liftcell/internal/sequencer"
	"liftcell/internal/varspace"
	"liftcell/internal/wire"
)

// publisher tracks the last value written to each path and suppresses a
// write when the value hasn't changed since last tick, so Variable Space
// listeners only observe real transitions rather than a steady stream of
// identical writes every tick.
type publisher struct {
	last map[string]varspace.Value
}

func newPublisher() *publisher {
	return &publisher{last: make(map[string]varspace.Value)}
}

func (p *publisher) write(space *varspace.Space, path string, value varspace.Value) {
	if prev, ok := p.last[path]; ok && prev == value {
		return
	}
	p.last[path] = value
	space.Write(path, value)
}

// publishLift writes one lift's tick Result into its PlcToEco cells,
// diffed against what was last published.
func publishLift(p *publisher, space *varspace.Space, id wire.LiftID, res sequencer.Result) {
	index := wire.StationIndex(id)

	p.write(space, wire.CyclePath(index), varspace.Int32(int32(res.Cycle)))
	p.write(space, wire.StationStatusPath(index), varspace.Int16(int16(res.StationStatus)))
	p.write(space, wire.StationCancelAssignmentPath(index), varspace.Int16(int16(res.CancelReason)))
	p.write(space, wire.HandshakeJobTypePath(index), varspace.Int16(int16(res.HandshakeJobType)))
	p.write(space, wire.HandshakeRowNrPath(index), varspace.Int32(int32(res.HandshakeRowNr)))
	p.write(space, wire.ShortAlarmDescriptionPath(index), varspace.String(res.ShortAlarmDescription))
	p.write(space, wire.AlarmSolutionPath(index), varspace.String(res.AlarmSolution))
	p.write(space, wire.StationStateDescriptionPath(index), varspace.String(res.StationStateDescription))

	p.write(space, wire.SeqStepCommentPath(id), varspace.String(res.SeqComment))
	p.write(space, wire.RowLocationPath(id), varspace.Int32(int32(res.RowLocation)))
	p.write(space, wire.TrayInElevatorPath(id), varspace.Bool(res.TrayPresent))
	p.write(space, wire.CurrentForkSidePath(id), varspace.Int16(int16(res.ForkSide)))
	p.write(space, wire.ErrorCodePath(id), varspace.Int32(int32(res.ErrorCode)))
}

// publishAggregate writes the two cell-wide StationDataToEco cells, diffed
// against what was last published.
func publishAggregate(p *publisher, space *varspace.Space, worstStatus wire.StationStatus) {
	p.write(space, wire.AmountOfStationsPath(), varspace.Int16(2))
	p.write(space, wire.MainStatusPath(), varspace.Int16(int16(worstStatus)))
}

// IsSupervisorWritablePlcToEcoPath reports whether a write originating from
// the supervisor side (the debug harness standing in for the real
// ecosystem) is allowed to land on a PlcToEco cell. Per the
// ProtocolMisuse policy, PlcToEco is core-owned; the sole exception is
// xTrayInElevator, which the debug harness uses to simulate an operator
// manually loading/unloading a tray outside of a job flow.
func IsSupervisorWritablePlcToEcoPath(path string) bool {
	return path == wire.TrayInElevatorPath(wire.Lift1) || path == wire.TrayInElevatorPath(wire.Lift2)
}

// WriteFromSupervisor performs a supervisor-originated write, dropping it
// with a debug log if it targets a read-only PlcToEco cell.
func WriteFromSupervisor(space *varspace.Space, log *slog.Logger, path string, value varspace.Value) {
	const plcToEcoPrefix = "PlcToEco/"
	isPlcToEco := len(path) >= len(plcToEcoPrefix) && path[:len(plcToEcoPrefix)] == plcToEcoPrefix
	if isPlcToEco && !IsSupervisorWritablePlcToEcoPath(path) {
		log.Debug("dropped supervisor write to read-only cell", "path", path)
		return
	}
	space.Write(path, value)
}
