package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iobench/iobench/internal/config"
	"github.com/iobench/iobench/internal/output"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check run configuration files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noColor := !colorEnabled(cmd)
			scheme := colorScheme(cmd)
			out := cmd.OutOrStdout()

			failed := 0
			for _, path := range args {
				cfg, err := config.LoadConfig(path)
				if err != nil {
					failed++
					fmt.Fprintf(out, "%s %s: %s\n", output.ErrorIcon(noColor), path, scheme.Error.Sprint(err.Error()))
					continue
				}
				fmt.Fprintf(out, "%s %s: %s\n", output.SuccessIcon(noColor), path, cfg)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files are invalid", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().Bool("no-color", false, "Disable colored output")

	return cmd
}
