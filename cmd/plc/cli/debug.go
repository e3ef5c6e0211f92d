package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/eiannone/keyboard"
	"github.com/spf13/cobra"

	"liftcell/internal/cell"
	"liftcell/internal/config"
	"liftcell/internal/varspace"
	"liftcell/internal/wire"
)

// NewDebugCommand builds the debug subcommand: a keystroke-driven bench
// harness standing in for the supervisor, adapted from
// original_source/auto_mode.py's manual GUI control, using a single-key
// polling idiom for interactive bench harnesses.
func NewDebugCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "debug",
		Short:         "drive the cell controller interactively from the keyboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDebug(rootOpts, cmd)
		},
	}
	return cmd
}

func runDebug(opts *RootOptions, cmd *cobra.Command) error {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	c := cell.New(cfg, log)

	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(cfg.TickPeriod)
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				c.Tick(now)
			case <-stop:
				return
			}
		}
	}()
	defer close(stop)

	printHelp(cmd)
	printStatus(cmd, c)

	for {
		char, key, err := keyboard.GetSingleKey()
		if err != nil {
			return WrapExitError(ExitFailure, "keyboard read failed", err)
		}
		if key == keyboard.KeyCtrlC {
			return nil
		}

		switch char {
		case '1':
			submitJob(c, log, wire.Lift1, wire.TaskFull, 5, 12)
		case '2':
			submitJob(c, log, wire.Lift1, wire.TaskMoveTo, 8, 0)
		case '3':
			submitJob(c, log, wire.Lift2, wire.TaskFull, 3, 9)
		case 'a':
			pulseAck(c, wire.Lift1)
		case 's':
			pulseAck(c, wire.Lift2)
		case 'c':
			c.Space.Write(wire.CancelAssignmentPath(wire.Lift1), varspace.Int64(int64(wire.CancelByEcoSystem)))
		case 'x':
			c.Space.Write(wire.CancelAssignmentPath(wire.Lift2), varspace.Int64(int64(wire.CancelByEcoSystem)))
		case 'e':
			c.Space.Write(wire.ClearErrorPath(wire.Lift1), varspace.Bool(true))
		case 't':
			cell.WriteFromSupervisor(c.Space, log, wire.TrayInElevatorPath(wire.Lift1), varspace.Bool(true))
		case 'w':
			c.Space.Write(wire.WatchDogPath(), varspace.Bool(true))
		case 'h':
			printHelp(cmd)
		case '?':
			printStatus(cmd, c)
		}
	}
}

func submitJob(c *cell.Cell, log *slog.Logger, id wire.LiftID, taskType wire.TaskType, origin, destination int) {
	log.Debug("submitting job", "lift", id, "taskType", taskType, "origin", origin, "destination", destination)
	c.Space.Write(wire.TaskTypePath(id), varspace.Int32(int32(taskType)))
	c.Space.Write(wire.OriginationPath(id), varspace.Int32(int32(origin)))
	c.Space.Write(wire.DestinationPath(id), varspace.Int32(int32(destination)))
}

// pulseAck writes xAcknowledgeMovement true; the next debug keypress or
// tick boundary is on the operator to drop it again before the next
// handshake point, same as a real supervisor.
func pulseAck(c *cell.Cell, id wire.LiftID) {
	c.Space.Write(wire.AckMovementPath(id), varspace.Bool(true))
}

func printHelp(cmd *cobra.Command) {
	fmt.Fprintln(cmd.OutOrStdout(), `
  1  submit Full job on lift 1 (5 -> 12)     2  submit MoveTo on lift 1 (-> 8)
  3  submit Full job on lift 2 (3 -> 9)
  a  raise ack on lift 1                     s  raise ack on lift 2
  c  cancel lift 1 job                       x  cancel lift 2 job
  e  clear lift 1 error                      t  manually set lift 1 tray present
  w  pulse watchdog                          ?  print status
  h  this help                               Ctrl-C  quit`)
}

func printStatus(cmd *cobra.Command, c *cell.Cell) {
	for _, id := range []wire.LiftID{wire.Lift1, wire.Lift2} {
		idx := wire.StationIndex(id)
		cyc, _ := c.Space.Read(wire.CyclePath(idx))
		row, _ := c.Space.Read(wire.RowLocationPath(id))
		tray, _ := c.Space.Read(wire.TrayInElevatorPath(id))
		fmt.Fprintf(cmd.OutOrStdout(), "%s: cycle=%d row=%d tray=%v\n", id, cyc.Int(), row.Int(), tray.Bool())
	}
}
