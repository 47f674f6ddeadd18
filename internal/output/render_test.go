package output

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iobench/iobench/internal/config"
	"github.com/iobench/iobench/internal/throttle"
)

func TestFormatConfig_Default(t *testing.T) {
	got := FormatConfig(config.Default(), NoColorScheme())

	expected := "Run configuration\n" +
		"  Duration:   10m0s (600sec)\n" +
		"  Frequency:  30m0s (1800sec)\n" +
		"  Operations: Read, Write\n" +
		"  Speed:      PassThrough (no cap)\n"
	assert.Equal(t, expected, got)
}

func TestFormatConfig_Custom(t *testing.T) {
	cfg := config.Config{
		Duration:   config.Duration(time.Minute),
		Frequency:  config.Duration(time.Hour),
		Operations: nil,
		Speed:      config.Bps(1500),
	}

	got := FormatConfig(cfg, NoColorScheme())
	assert.Contains(t, got, "Operations: none")
	assert.Contains(t, got, "Speed:      1.46484375KBps (1500 bytes/sec)")
}

func TestFormatConfig_Colored(t *testing.T) {
	plain := FormatConfig(config.Default(), NoColorScheme())
	colored := FormatConfig(config.Default(), ForcedColorScheme())

	assert.NotEqual(t, plain, colored)
	assert.Contains(t, colored, "\x1b[")
	assert.NotContains(t, plain, "\x1b[")
}

func TestFormatSpeed(t *testing.T) {
	scheme := NoColorScheme()

	assert.Equal(t, "1024KBps → 1MBps (1048576 bytes/sec)", FormatSpeed("1024KBps", config.Bps(1<<20), scheme))
	assert.Equal(t, "pass_through → PassThrough (no cap)", FormatSpeed("pass_through", config.PassThrough, scheme))
	assert.Equal(t, "Bps → boom", FormatSpeedError("Bps", errors.New("boom"), scheme))
}

func TestFormatStats(t *testing.T) {
	stats := throttle.Stats{
		Bytes:        2048,
		Reservations: 2,
		TotalWait:    time.Second,
		WaitP50:      0,
		WaitP99:      time.Second,
		WaitMax:      time.Second,
	}

	got := FormatStats(stats, 2*time.Second, config.Bps(1024), NoColorScheme())

	assert.True(t, strings.HasPrefix(got, "Transfer summary\n"))
	assert.Contains(t, got, "Bytes:      2048")
	assert.Contains(t, got, "Cap:        1KBps (1024 bytes/sec)")
	assert.Contains(t, got, "Achieved:   1KBps")
	assert.Contains(t, got, "p99 1s")
}

func TestColorSchemes(t *testing.T) {
	for name, scheme := range map[string]*ColorScheme{
		"default": DefaultColorScheme(),
		"none":    NoColorScheme(),
		"forced":  ForcedColorScheme(),
	} {
		for i, c := range scheme.all() {
			assert.NotNil(t, c, "%s scheme color %d", name, i)
		}
	}

	var sb strings.Builder
	t.Setenv("FORCE_COLOR", "1")
	t.Setenv("NO_COLOR", "")
	assert.Equal(t, "plain", SchemeForWriter(&sb, true).Label.Sprint("plain"))
	assert.Contains(t, SchemeForWriter(&sb, false).Label.Sprint("forced"), "\x1b[")
}

func TestIcons(t *testing.T) {
	assert.Equal(t, "✓", SuccessIcon(true))
	assert.Equal(t, "✗", ErrorIcon(true))
	assert.Contains(t, SuccessIcon(false), "✓")
	assert.Contains(t, ErrorIcon(false), "✗")
}

func TestColorEnabled(t *testing.T) {
	var sb strings.Builder

	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "")
	assert.False(t, ColorEnabled(&sb), "non-file writers are never terminals")

	t.Setenv("FORCE_COLOR", "1")
	assert.True(t, ColorEnabled(&sb))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled(&sb), "NO_COLOR wins over FORCE_COLOR")
}
