// Package cli wires the plc binary's subcommands: run starts the cell
// supervisor loop, debug drives it interactively from the keyboard.
package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds flags shared by every subcommand.
type RootOptions struct {
	Verbose    bool
	ConfigPath string
}

// NewRootCommand builds the plc root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "plc",
		Short: "plc runs the dual-lift tray-handling cell controller",
		Long: `plc is the cell controller for a two-lift tray-handling cell: it owns the
shared Variable Space, validates and sequences jobs the supervisor writes
to EcoToPlc, and publishes lift state to PlcToEco on a fixed tick.`,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug-level logging")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to cell config YAML (defaults built in if omitted)")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewDebugCommand(opts))

	return cmd
}
