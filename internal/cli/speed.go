package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iobench/iobench/internal/config"
	"github.com/iobench/iobench/internal/output"
)

func newSpeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "speed VALUE...",
		Short: "Parse throughput caps and show how they are interpreted",
		Example: `  iobench speed 1024 1024Bps 1024KBps pass_through
  iobench speed 1500`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scheme := colorScheme(cmd)
			out := cmd.OutOrStdout()

			failed := 0
			for _, arg := range args {
				s, err := config.ParseSpeed(arg)
				if err != nil {
					failed++
					fmt.Fprintf(out, "%s %s\n", output.ErrorIcon(!colorEnabled(cmd)), output.FormatSpeedError(arg, err, scheme))
					continue
				}
				fmt.Fprintf(out, "%s %s\n", output.SuccessIcon(!colorEnabled(cmd)), output.FormatSpeed(arg, s, scheme))
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d values could not be parsed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().Bool("no-color", false, "Disable colored output")

	return cmd
}
