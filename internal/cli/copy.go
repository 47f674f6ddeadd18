package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/iobench/iobench/internal/output"
	"github.com/iobench/iobench/internal/throttle"
)

func newCopyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy SRC DST",
		Short: "Copy a file while enforcing the configured throughput cap",
		Long: `Copy SRC to DST through the throttle, using the speed from --speed or the
--config file, then print a transfer summary. Useful for checking what a cap
means in practice before running a benchmark with it.

  iobench copy big.bin /tmp/out.bin --speed 8MBps`,
		Args: cobra.ExactArgs(2),
		RunE: runCopy,
	}

	addConfigFlags(cmd)
	cmd.Flags().Int("burst", 0, "Bytes of unused capacity allowed to accumulate while idle")
	cmd.Flags().Bool("no-color", false, "Disable colored output")

	return cmd
}

func runCopy(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}
	burst, _ := cmd.Flags().GetInt("burst")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	src, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("error opening source: %w", err)
	}
	defer src.Close()

	if srcInfo, err := src.Stat(); err == nil {
		if dstInfo, err := os.Stat(args[1]); err == nil && os.SameFile(srcInfo, dstInfo) {
			return fmt.Errorf("source and destination are the same file: %s", args[1])
		}
	}

	dst, err := os.Create(args[1])
	if err != nil {
		return fmt.Errorf("error creating destination: %w", err)
	}

	limiter := throttle.NewLimiterWithBurst(cfg.Speed, burst)

	begin := time.Now()
	_, copyErr := io.Copy(throttle.NewWriter(ctx, dst, limiter), src)
	elapsed := time.Since(begin)

	if err := dst.Close(); err != nil && copyErr == nil {
		copyErr = fmt.Errorf("error closing destination: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), output.FormatStats(limiter.Stats(), elapsed, cfg.Speed, colorScheme(cmd)))

	if copyErr != nil {
		if errors.Is(copyErr, context.Canceled) {
			return fmt.Errorf("copy interrupted: %w", copyErr)
		}
		return copyErr
	}
	return nil
}
