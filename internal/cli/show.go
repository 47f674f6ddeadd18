package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/iobench/iobench/internal/output"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective run configuration",
		Long: `Print the run configuration after applying, in order, the built-in
defaults, the file given with --config and any explicit flags.

  iobench show
  iobench show --config run.yaml --speed 64MBps
  iobench show --operations write,write,read --format json`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}

	addConfigFlags(cmd)
	cmd.Flags().String("format", "text", "Output format: text, plain, json or yaml")
	cmd.Flags().Bool("no-color", false, "Disable colored output")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	format, _ := cmd.Flags().GetString("format")

	switch format {
	case "text":
		fmt.Fprint(out, output.FormatConfig(cfg, colorScheme(cmd)))
	case "plain":
		fmt.Fprintln(out, cfg.String())
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		fmt.Fprint(out, string(data))
	default:
		return fmt.Errorf("unknown format %q (expected text, plain, json or yaml)", format)
	}
	return nil
}
