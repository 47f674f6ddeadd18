package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// PassThroughToken is the only input ParseSpeed maps to PassThrough.
const PassThroughToken = "pass_through"

const (
	speedSuffix = "Bps"

	kibi = 1 << 10
	mebi = 1 << 20
	gibi = 1 << 30
)

var (
	// ErrInvalidSpeed is returned when nothing precedes the "Bps" suffix.
	ErrInvalidSpeed = errors.New("no value before Bps")

	// ErrOverflow is returned when a K/M/G scale does not fit in 64 bits.
	ErrOverflow = errors.New("overflow")
)

// SpeedError describes a failure to parse a speed token.
type SpeedError struct {
	Input string
	Err   error
}

func (e *SpeedError) Error() string {
	var numErr *strconv.NumError
	if errors.As(e.Err, &numErr) {
		return fmt.Sprintf("invalid speed %q: %v", e.Input, numErr.Err)
	}
	return fmt.Sprintf("invalid speed %q: %v", e.Input, e.Err)
}

func (e *SpeedError) Unwrap() error {
	return e.Err
}

// Speed is a throughput cap: either an exact byte rate or PassThrough.
//
// The zero value is Bps(0). Speed values are comparable with ==.
type Speed struct {
	bps         uint64
	passThrough bool
}

// PassThrough means no throughput cap.
var PassThrough = Speed{passThrough: true}

// Bps returns a cap of n bytes per second.
func Bps(n uint64) Speed {
	return Speed{bps: n}
}

// IsPassThrough reports whether s places no cap on throughput.
func (s Speed) IsPassThrough() bool {
	return s.passThrough
}

// BytesPerSecond returns the byte rate and true, or 0 and false for PassThrough.
func (s Speed) BytesPerSecond() (uint64, bool) {
	if s.passThrough {
		return 0, false
	}
	return s.bps, true
}

// ParseSpeed parses a human-entered speed.
//
// Accepted forms are "pass_through", a bare integer byte count ("1024"),
// or an integer followed by "Bps" with an optional K, M or G binary scale
// ("1024Bps", "16KBps", "2GBps"). Fractions, signs and whitespace are rejected.
func ParseSpeed(input string) (Speed, error) {
	if input == PassThroughToken {
		return PassThrough, nil
	}

	if !strings.HasSuffix(input, speedSuffix) {
		n, err := strconv.ParseUint(input, 10, 64)
		if err != nil {
			return Speed{}, &SpeedError{Input: input, Err: err}
		}
		return Bps(n), nil
	}

	body := strings.TrimSuffix(input, speedSuffix)
	if body == "" {
		return Speed{}, &SpeedError{Input: input, Err: ErrInvalidSpeed}
	}

	// Only the single character before "Bps" can be a scale; a digit there
	// means the number is unscaled.
	var scale uint64 = 1
	switch body[len(body)-1] {
	case 'K':
		scale = kibi
	case 'M':
		scale = mebi
	case 'G':
		scale = gibi
	}
	if scale != 1 {
		body = body[:len(body)-1]
	}

	n, err := strconv.ParseUint(body, 10, 64)
	if err != nil {
		return Speed{}, &SpeedError{Input: input, Err: err}
	}

	hi, lo := bits.Mul64(n, scale)
	if hi != 0 {
		return Speed{}, &SpeedError{Input: input, Err: ErrOverflow}
	}

	return Bps(lo), nil
}

// MustParseSpeed is like ParseSpeed but panics on error.
// It is meant for literals in tests and package-level defaults.
func MustParseSpeed(input string) Speed {
	s, err := ParseSpeed(input)
	if err != nil {
		panic(err)
	}
	return s
}

// String formats s for people. The result is lossy: scaled values are
// printed as decimal fractions, which ParseSpeed does not accept.
func (s Speed) String() string {
	if s.passThrough {
		return "PassThrough"
	}

	switch {
	case s.bps < kibi:
		return strconv.FormatUint(s.bps, 10) + "Bps"
	case s.bps < mebi:
		return formatScaled(s.bps, kibi) + "KBps"
	case s.bps < gibi:
		return formatScaled(s.bps, mebi) + "MBps"
	default:
		return formatScaled(s.bps, gibi) + "GBps"
	}
}

func formatScaled(bps, unit uint64) string {
	return strconv.FormatFloat(float64(bps)/float64(unit), 'f', -1, 64)
}

// Set implements pflag.Value.
func (s *Speed) Set(value string) error {
	parsed, err := ParseSpeed(value)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Type implements pflag.Value.
func (s *Speed) Type() string {
	return "speed"
}

// MarshalJSON encodes PassThrough as "PassThrough" and a byte rate as an integer.
func (s Speed) MarshalJSON() ([]byte, error) {
	if s.passThrough {
		return []byte(`"PassThrough"`), nil
	}
	return []byte(strconv.FormatUint(s.bps, 10)), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Speed) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var text string
		if err := json.Unmarshal(b, &text); err != nil {
			return err
		}
		return s.decodeText(text)
	}

	n, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("speed must be a non-negative integer or a string, got %s", b)
	}
	*s = Bps(n)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Speed) MarshalYAML() (interface{}, error) {
	if s.passThrough {
		return "PassThrough", nil
	}
	return s.bps, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Speed) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: speed must be a scalar", value.Line)
	}

	if value.ShortTag() == "!!int" {
		n, err := strconv.ParseUint(value.Value, 10, 64)
		if err != nil {
			return fmt.Errorf("line %d: speed must be a non-negative integer: %w", value.Line, err)
		}
		*s = Bps(n)
		return nil
	}

	if err := s.decodeText(value.Value); err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	return nil
}

// decodeText accepts the "PassThrough" tag written by the encoders as well as
// anything ParseSpeed understands.
func (s *Speed) decodeText(text string) error {
	if text == "PassThrough" {
		*s = PassThrough
		return nil
	}
	return s.Set(text)
}
