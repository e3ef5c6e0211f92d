package cell

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"liftcell/internal/config"
	"liftcell/internal/varspace"
	"liftcell/internal/wire"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCell() *Cell {
	cfg := config.Default()
	cfg.ForkMoveDuration = 100 * time.Millisecond
	cfg.EngineMoveDuration = 200 * time.Millisecond
	return New(cfg, testLogger())
}

// settle ticks the cell n times at a fixed clock value, for phases that
// don't depend on elapsed wall-clock time (handshake waits, dispatch hops).
func settle(c *Cell, clock time.Time, n int) {
	for i := 0; i < n; i++ {
		c.Tick(clock)
	}
}

func TestHappyPathFullJob(t *testing.T) {
	c := newTestCell()
	start := time.Unix(0, 0)
	settle(c, start, 6) // drain Init/Idle for both lifts

	c.Space.Write(wire.TaskTypePath(wire.Lift1), varspace.Int32(int32(wire.TaskFull)))
	c.Space.Write(wire.OriginationPath(wire.Lift1), varspace.Int32(5))
	c.Space.Write(wire.DestinationPath(wire.Lift1), varspace.Int32(12))

	settle(c, start, 3) // Ready -> Validation -> Accepted -> 100
	cycle, _ := c.Space.Read(wire.CyclePath(wire.StationIndex(wire.Lift1)))
	require.Equal(t, int64(100), cycle.Int())

	c.Space.Write(wire.AckMovementPath(wire.Lift1), varspace.Bool(true))
	c.Tick(start) // consume GetTray edge -> 101 -> 102 (forks already middle)
	settle(c, start, 1)

	clock := start
	for i := 0; i < 200; i++ {
		clock = clock.Add(50 * time.Millisecond)
		c.Tick(clock)
		cyc, _ := c.Space.Read(wire.CyclePath(wire.StationIndex(wire.Lift1)))
		if cyc.Int() == 199 {
			break
		}
	}
	cyc, _ := c.Space.Read(wire.CyclePath(wire.StationIndex(wire.Lift1)))
	assert.Equal(t, int64(199), cyc.Int())

	// Drop the ack before raising it again for the SetTray point, per the
	// drop-then-rise handshake contract.
	c.Space.Write(wire.AckMovementPath(wire.Lift1), varspace.Bool(false))
	c.Tick(clock) // -> 201
	c.Space.Write(wire.AckMovementPath(wire.Lift1), varspace.Bool(true))
	c.Tick(clock) // consume SetTray edge -> 202

	for i := 0; i < 200; i++ {
		clock = clock.Add(50 * time.Millisecond)
		c.Tick(clock)
		cyc, _ = c.Space.Read(wire.CyclePath(wire.StationIndex(wire.Lift1)))
		if cyc.Int() == 299 {
			break
		}
	}
	assert.Equal(t, int64(299), cyc.Int())

	tray, _ := c.Space.Read(wire.TrayInElevatorPath(wire.Lift1))
	assert.False(t, tray.Bool())

	row, _ := c.Space.Read(wire.RowLocationPath(wire.Lift1))
	assert.Equal(t, int64(12), row.Int())
}

func TestCrossLiftConflictPublishesRejection(t *testing.T) {
	c := newTestCell()
	start := time.Unix(0, 0)
	settle(c, start, 6)

	// Lift 2 takes a job spanning rows 1-8 first.
	c.Space.Write(wire.TaskTypePath(wire.Lift2), varspace.Int32(int32(wire.TaskFull)))
	c.Space.Write(wire.OriginationPath(wire.Lift2), varspace.Int32(1))
	c.Space.Write(wire.DestinationPath(wire.Lift2), varspace.Int32(8))
	settle(c, start, 2)

	// Lift 1 then requests an overlapping job.
	c.Space.Write(wire.TaskTypePath(wire.Lift1), varspace.Int32(int32(wire.TaskFull)))
	c.Space.Write(wire.OriginationPath(wire.Lift1), varspace.Int32(5))
	c.Space.Write(wire.DestinationPath(wire.Lift1), varspace.Int32(12))
	settle(c, start, 2)

	reason, _ := c.Space.Read(wire.StationCancelAssignmentPath(wire.StationIndex(wire.Lift1)))
	assert.Equal(t, int64(wire.CancelLiftsCross), reason.Int())

	status, _ := c.Space.Read(wire.StationStatusPath(wire.StationIndex(wire.Lift1)))
	assert.Equal(t, int64(wire.StatusWarn), status.Int())
}

func TestPickupWithTrayRejected(t *testing.T) {
	c := newTestCell()
	start := time.Unix(0, 0)
	settle(c, start, 6)
	c.lift1.TrayPresent = true

	c.Space.Write(wire.TaskTypePath(wire.Lift1), varspace.Int32(int32(wire.TaskFull)))
	c.Space.Write(wire.OriginationPath(wire.Lift1), varspace.Int32(5))
	c.Space.Write(wire.DestinationPath(wire.Lift1), varspace.Int32(12))
	settle(c, start, 2)

	reason, _ := c.Space.Read(wire.StationCancelAssignmentPath(wire.StationIndex(wire.Lift1)))
	assert.Equal(t, int64(wire.CancelPickupWithTray), reason.Int())
}

func TestWatchdogTimeoutForcesBothLiftsToError(t *testing.T) {
	c := newTestCell()
	c.cfg.WatchdogWindow = 500 * time.Millisecond
	start := time.Unix(0, 0)
	settle(c, start, 6)

	c.Space.Write(wire.WatchDogPath(), varspace.Bool(true))
	c.Tick(start)
	c.Space.Write(wire.WatchDogPath(), varspace.Bool(false))

	c.Tick(start.Add(2 * time.Second))

	status1, _ := c.Space.Read(wire.StationStatusPath(wire.StationIndex(wire.Lift1)))
	status2, _ := c.Space.Read(wire.StationStatusPath(wire.StationIndex(wire.Lift2)))
	assert.Equal(t, int64(wire.StatusErr), status1.Int())
	assert.Equal(t, int64(wire.StatusErr), status2.Int())
}

func TestSupervisorIntCancelAbortsMotion(t *testing.T) {
	c := newTestCell()
	start := time.Unix(0, 0)
	settle(c, start, 6)

	c.Space.Write(wire.TaskTypePath(wire.Lift1), varspace.Int32(int32(wire.TaskFull)))
	c.Space.Write(wire.OriginationPath(wire.Lift1), varspace.Int32(5))
	c.Space.Write(wire.DestinationPath(wire.Lift1), varspace.Int32(12))
	settle(c, start, 3) // Ready -> Validation -> Accepted -> 100

	c.Space.Write(wire.AckMovementPath(wire.Lift1), varspace.Bool(true))
	c.Tick(start)       // consume GetTray edge -> 101
	settle(c, start, 2) // 101 -> 102 -> 103, engine now moving toward origin

	// iCancelAssignment is int64 on the wire; a spec-conforming supervisor
	// writes a nonzero cancel code, never a bool.
	c.Space.Write(wire.CancelAssignmentPath(wire.Lift1), varspace.Int64(int64(wire.CancelByEcoSystem)))

	clock := start
	var reason, status varspace.Value
	for i := 0; i < 200; i++ {
		clock = clock.Add(50 * time.Millisecond)
		c.Tick(clock)
		status, _ = c.Space.Read(wire.StationStatusPath(wire.StationIndex(wire.Lift1)))
		if status.Int() == int64(wire.StatusWarn) {
			break
		}
	}
	reason, _ = c.Space.Read(wire.StationCancelAssignmentPath(wire.StationIndex(wire.Lift1)))
	assert.Equal(t, int64(wire.CancelByEcoSystem), reason.Int())
	assert.Equal(t, int64(wire.StatusWarn), status.Int())
}

func TestCancelAssignmentAliasSharesCell(t *testing.T) {
	c := newTestCell()
	aliasPath, ok := wire.CancelAssignmentAliasPath(wire.Lift1)
	require.True(t, ok)

	c.Space.Write(aliasPath, varspace.Int64(int64(wire.CancelByEcoSystem)))
	v, _ := c.Space.Read(wire.CancelAssignmentPath(wire.Lift1))
	assert.Equal(t, int64(wire.CancelByEcoSystem), v.Int())
}

func TestSupervisorCannotWriteArbitraryPlcToEcoCell(t *testing.T) {
	c := newTestCell()
	WriteFromSupervisor(c.Space, testLogger(), wire.RowLocationPath(wire.Lift1), varspace.Int32(999))
	_, ok := c.Space.Read(wire.RowLocationPath(wire.Lift1))
	assert.False(t, ok)

	WriteFromSupervisor(c.Space, testLogger(), wire.TrayInElevatorPath(wire.Lift1), varspace.Bool(true))
	v, ok := c.Space.Read(wire.TrayInElevatorPath(wire.Lift1))
	require.True(t, ok)
	assert.True(t, v.Bool())
}
