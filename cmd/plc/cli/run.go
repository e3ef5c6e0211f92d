package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"liftcell/internal/cell"
	"liftcell/internal/config"
)

// NewRunCommand builds the run subcommand: the cell controller's main
// loop, a select over a tick ticker and a signal channel.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "run",
		Short:         "run the cell controller until interrupted",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCell(rootOpts, cmd)
		},
	}
	return cmd
}

func runCell(opts *RootOptions, cmd *cobra.Command) error {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	log.Info("config loaded", "tickPeriod", cfg.TickPeriod, "watchdogWindow", cfg.WatchdogWindow)

	c := cell.New(cfg, log)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	ticker := time.NewTicker(cfg.TickPeriod)
	defer ticker.Stop()

	fmt.Fprintln(cmd.OutOrStdout(), "Cell controller running. Press Ctrl-C to stop.")
	log.Info("cell controller started")

	for {
		select {
		case now := <-ticker.C:
			c.Tick(now)
		case sig := <-sigCh:
			log.Info("received signal, shutting down", "signal", sig)
			return nil
		}
	}
}
