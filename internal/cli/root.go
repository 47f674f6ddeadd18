package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "iobench",
		Short:   "Inspect and exercise storage benchmark run configurations",
		Version: version,
		Long: `iobench describes benchmark runs: how long each run lasts, how often it
repeats, which operations it performs and the throughput cap applied to them.

Throughput caps are written as a byte count ("4096"), a byte rate with an
optional binary scale ("512KBps", "64MBps", "1GBps") or "pass_through" for
no cap.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			// If no subcommand is provided, print help
			cmd.Help()
		},
	}

	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newSpeedCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newCopyCmd())

	return cmd
}

// Execute runs the root command and reports any error on stderr.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
