// Command plc runs the dual-lift tray-handling cell controller.
package main

import (
	"fmt"
	"os"

	"liftcell/cmd/plc/cli"
)

func main() {
	root := cli.NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
