// Package output renders configurations and throttle results for the terminal.
package output

import (
	"io"

	"github.com/fatih/color"
)

// ColorScheme defines the colors used for different elements in the output
type ColorScheme struct {
	Label       *color.Color
	Value       *color.Color
	Speed       *color.Color
	PassThrough *color.Color
	Operation   *color.Color
	Success     *color.Color
	Error       *color.Color
	Highlight   *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Label:       color.New(color.FgYellow),
		Value:       color.New(color.FgWhite),
		Speed:       color.New(color.FgCyan, color.Bold),
		PassThrough: color.New(color.FgMagenta, color.Bold),
		Operation:   color.New(color.FgBlue),
		Success:     color.New(color.FgGreen),
		Error:       color.New(color.FgRed),
		Highlight:   color.New(color.FgMagenta, color.Bold),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()
	for _, c := range scheme.all() {
		c.DisableColor()
	}
	return scheme
}

// ForcedColorScheme returns the default scheme with colors enabled even when
// stdout is not a terminal.
func ForcedColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()
	for _, c := range scheme.all() {
		c.EnableColor()
	}
	return scheme
}

// SchemeForWriter picks the scheme for output written to w. Colors are
// forced on when ColorEnabled(w) holds, since fatih/color only inspects stdout.
func SchemeForWriter(w io.Writer, noColor bool) *ColorScheme {
	if noColor || !ColorEnabled(w) {
		return NoColorScheme()
	}
	return ForcedColorScheme()
}

func (s *ColorScheme) all() []*color.Color {
	return []*color.Color{s.Label, s.Value, s.Speed, s.PassThrough, s.Operation, s.Success, s.Error, s.Highlight}
}

// SuccessIcon returns a checkmark symbol with appropriate color
func SuccessIcon(noColor bool) string {
	if noColor {
		return "✓"
	}
	return color.New(color.FgGreen).Sprint("✓")
}

// ErrorIcon returns an X symbol with appropriate color
func ErrorIcon(noColor bool) string {
	if noColor {
		return "✗"
	}
	return color.New(color.FgRed).Sprint("✗")
}
