package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get PATH",
		Short: "Print a single field of the effective run configuration",
		Long: `Print one field of the effective configuration, addressed as in a JSON
config file. Accepts JSONPath-style paths ($.operations[0]) as well as plain
field names (speed).`,
		Example: `  iobench get speed --config run.yaml
  iobench get '$.operations[1]'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := effectiveConfig(cmd)
			if err != nil {
				return err
			}

			value, err := cfg.Lookup(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	addConfigFlags(cmd)

	return cmd
}
