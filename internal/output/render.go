package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/iobench/iobench/internal/config"
	"github.com/iobench/iobench/internal/throttle"
)

// FormatConfig renders cfg as an aligned block of labeled fields.
func FormatConfig(cfg config.Config, scheme *ColorScheme) string {
	var buf strings.Builder

	buf.WriteString(scheme.Highlight.Sprint("Run configuration"))
	buf.WriteString("\n")

	writeField(&buf, scheme, "Duration", fmt.Sprintf("%s (%dsec)", cfg.Duration, cfg.Duration.Seconds()))
	writeField(&buf, scheme, "Frequency", fmt.Sprintf("%s (%dsec)", cfg.Frequency, cfg.Frequency.Seconds()))

	ops := make([]string, len(cfg.Operations))
	for i, op := range cfg.Operations {
		ops[i] = scheme.Operation.Sprint(op.String())
	}
	if len(ops) == 0 {
		ops = append(ops, scheme.Error.Sprint("none"))
	}
	writeField(&buf, scheme, "Operations", strings.Join(ops, ", "))

	writeField(&buf, scheme, "Speed", formatSpeedValue(cfg.Speed, scheme))

	return buf.String()
}

// FormatSpeed renders the result of parsing input as a speed.
func FormatSpeed(input string, s config.Speed, scheme *ColorScheme) string {
	return fmt.Sprintf("%s %s %s", scheme.Value.Sprint(input), "→", formatSpeedValue(s, scheme))
}

// FormatSpeedError renders a failed parse.
func FormatSpeedError(input string, err error, scheme *ColorScheme) string {
	return fmt.Sprintf("%s %s %s", scheme.Value.Sprint(input), "→", scheme.Error.Sprint(err.Error()))
}

// FormatStats summarizes a throttled transfer.
func FormatStats(stats throttle.Stats, elapsed time.Duration, speed config.Speed, scheme *ColorScheme) string {
	var buf strings.Builder

	buf.WriteString(scheme.Highlight.Sprint("Transfer summary"))
	buf.WriteString("\n")

	writeField(&buf, scheme, "Bytes", fmt.Sprintf("%d", stats.Bytes))
	writeField(&buf, scheme, "Elapsed", elapsed.Round(time.Millisecond).String())
	writeField(&buf, scheme, "Cap", formatSpeedValue(speed, scheme))

	var achieved config.Speed
	if secs := elapsed.Seconds(); secs > 0 && stats.Bytes > 0 {
		achieved = config.Bps(uint64(float64(stats.Bytes) / secs))
	}
	writeField(&buf, scheme, "Achieved", scheme.Speed.Sprint(achieved.String()))

	writeField(&buf, scheme, "Chunks", fmt.Sprintf("%d", stats.Reservations))
	writeField(&buf, scheme, "Wait", fmt.Sprintf("total %s, p50 %s, p99 %s, max %s",
		stats.TotalWait.Round(time.Microsecond),
		stats.WaitP50, stats.WaitP99, stats.WaitMax))

	return buf.String()
}

func formatSpeedValue(s config.Speed, scheme *ColorScheme) string {
	if s.IsPassThrough() {
		return scheme.PassThrough.Sprint(s.String()) + " (no cap)"
	}
	bps, _ := s.BytesPerSecond()
	return fmt.Sprintf("%s (%d bytes/sec)", scheme.Speed.Sprint(s.String()), bps)
}

func writeField(buf *strings.Builder, scheme *ColorScheme, label, value string) {
	buf.WriteString("  ")
	buf.WriteString(scheme.Label.Sprintf("%-11s", label+":"))
	buf.WriteString(" ")
	buf.WriteString(value)
	buf.WriteString("\n")
}
