package config

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// maxDurationSeconds is the largest whole number of seconds a time.Duration holds.
const maxDurationSeconds = math.MaxInt64 / int64(time.Second)

// Duration is a time.Duration that can be unmarshaled from JSON/YAML.
//
// Both Go duration strings ("10m", "1h30m") and bare integers, taken as
// seconds, are accepted.
type Duration time.Duration

// ParseDurationString parses a duration string with support for common formats.
//
// Supported formats:
//   - Standard Go duration: "30s", "2m", "1h30m", "500ms"
//   - Seconds as integer: "30" (treated as 30 seconds), which must fit in a
//     time.Duration and may not be negative
func ParseDurationString(s string) (time.Duration, error) {
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}

	d, err := time.ParseDuration(s)
	if err == nil {
		return d, nil
	}

	seconds, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %s", s)
	}
	if seconds < 0 || seconds > maxDurationSeconds {
		return 0, fmt.Errorf("duration out of range: %s seconds", s)
	}
	return time.Duration(seconds) * time.Second, nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Seconds returns d in whole seconds, truncated.
func (d Duration) Seconds() int64 {
	return int64(time.Duration(d) / time.Second)
}

// String returns the duration as a string.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	}

	dur, err := ParseDurationString(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	dur, err := ParseDurationString(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = Duration(dur)
	return nil
}

// Set implements pflag.Value.
func (d *Duration) Set(value string) error {
	dur, err := ParseDurationString(value)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// Type implements pflag.Value.
func (d *Duration) Type() string {
	return "duration"
}
