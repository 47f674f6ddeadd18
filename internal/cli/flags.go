package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iobench/iobench/internal/config"
	"github.com/iobench/iobench/internal/output"
)

// addConfigFlags registers the flags shared by commands that build a Config.
func addConfigFlags(cmd *cobra.Command) {
	speed := config.PassThrough
	duration := config.Duration(config.DefaultDuration)
	frequency := config.Duration(config.DefaultFrequency)

	cmd.Flags().StringP("config", "c", "", "Path to a YAML or JSON run configuration")
	cmd.Flags().VarP(&speed, "speed", "s", `Throughput cap, e.g. 4096, 512KBps, 64MBps or pass_through`)
	cmd.Flags().VarP(&duration, "duration", "d", "Length of one run (Go duration or seconds)")
	cmd.Flags().VarP(&frequency, "frequency", "f", "How often the run repeats (Go duration or seconds)")
	cmd.Flags().StringP("operations", "o", "", "Comma separated operations, e.g. read,write")
}

// effectiveConfig layers defaults, the --config file and explicit flags.
func effectiveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("error loading config: %w", err)
		}
		cfg = *loaded
	}

	flags := cmd.Flags()
	if flags.Changed("speed") {
		cfg.Speed = *flags.Lookup("speed").Value.(*config.Speed)
	}
	if flags.Changed("duration") {
		cfg.Duration = *flags.Lookup("duration").Value.(*config.Duration)
	}
	if flags.Changed("frequency") {
		cfg.Frequency = *flags.Lookup("frequency").Value.(*config.Duration)
	}
	if flags.Changed("operations") {
		raw, _ := flags.GetString("operations")
		ops, err := config.ParseOperations(raw)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Operations = ops
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func colorScheme(cmd *cobra.Command) *output.ColorScheme {
	noColor, _ := cmd.Flags().GetBool("no-color")
	return output.SchemeForWriter(cmd.OutOrStdout(), noColor)
}

func colorEnabled(cmd *cobra.Command) bool {
	noColor, _ := cmd.Flags().GetBool("no-color")
	return !noColor && output.ColorEnabled(cmd.OutOrStdout())
}
