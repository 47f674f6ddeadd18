package config

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseSpeed(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Speed
	}{
		{name: "pass through", input: "pass_through", expected: PassThrough},
		{name: "bare integer", input: "1024", expected: Bps(1 << 10)},
		{name: "zero", input: "0", expected: Bps(0)},
		{name: "unscaled suffix", input: "1024Bps", expected: Bps(1 << 10)},
		{name: "kilo", input: "1024KBps", expected: Bps(1 << 20)},
		{name: "mega", input: "1024MBps", expected: Bps(1 << 30)},
		{name: "giga", input: "1024GBps", expected: Bps(1 << 40)},
		{name: "single digit before suffix", input: "7Bps", expected: Bps(7)},
		{name: "zero kilo", input: "0KBps", expected: Bps(0)},
		{name: "max uint64", input: "18446744073709551615", expected: Bps(math.MaxUint64)},
		{name: "largest giga", input: "17179869183GBps", expected: Bps(math.MaxUint64 - (1<<30 - 1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSpeed(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseSpeed_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target error
	}{
		{name: "empty", input: "", target: strconv.ErrSyntax},
		{name: "garbage", input: "alskjaslkdfjhasjdhfb", target: strconv.ErrSyntax},
		{name: "suffix only", input: "Bps", target: ErrInvalidSpeed},
		{name: "scale only", input: "KBps", target: strconv.ErrSyntax},
		{name: "negative", input: "-1", target: strconv.ErrSyntax},
		{name: "negative scaled", input: "-1KBps", target: strconv.ErrSyntax},
		{name: "explicit plus", input: "+1", target: strconv.ErrSyntax},
		{name: "fraction", input: "1.5KBps", target: strconv.ErrSyntax},
		{name: "space before scale", input: "5 KBps", target: strconv.ErrSyntax},
		{name: "lowercase scale", input: "1024kBps", target: strconv.ErrSyntax},
		{name: "lowercase suffix", input: "1024bps", target: strconv.ErrSyntax},
		{name: "unknown scale", input: "1TBps", target: strconv.ErrSyntax},
		{name: "too large", input: "18446744073709551616", target: strconv.ErrRange},
		{name: "kilo overflow", input: "18014398509481984KBps", target: ErrOverflow},
		{name: "mega overflow", input: "17592186044416MBps", target: ErrOverflow},
		{name: "giga overflow", input: "17179869184GBps", target: ErrOverflow},
		{name: "giga overflow far", input: "18446744073709551615GBps", target: ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSpeed(tt.input)
			require.Error(t, err)
			assert.Equal(t, Speed{}, got)
			assert.ErrorIs(t, err, tt.target)

			var speedErr *SpeedError
			require.True(t, errors.As(err, &speedErr))
			assert.Equal(t, tt.input, speedErr.Input)
		})
	}
}

func TestParseSpeed_PassThroughIsExact(t *testing.T) {
	for _, input := range []string{"PassThrough", "Pass_Through", "PASS_THROUGH", "pass_through ", " pass_through", "passthrough"} {
		_, err := ParseSpeed(input)
		assert.Error(t, err, "%q must not parse", input)
	}
}

func TestSpeed_String(t *testing.T) {
	tests := []struct {
		speed    Speed
		expected string
	}{
		{PassThrough, "PassThrough"},
		{Bps(0), "0Bps"},
		{Bps(1), "1Bps"},
		{Bps(1023), "1023Bps"},
		{Bps(1024), "1KBps"},
		{Bps(1536), "1.5KBps"},
		{Bps(1500), "1.46484375KBps"},
		{Bps(1<<20 - 1), "1023.9990234375KBps"},
		{Bps(1 << 20), "1MBps"},
		{Bps(3 << 19), "1.5MBps"},
		{Bps(1 << 30), "1GBps"},
		{Bps(1 << 40), "1024GBps"},
		{Bps(math.MaxUint64), "17179869184GBps"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.speed.String())
		})
	}
}

func TestSpeed_FormatIsNotParseable(t *testing.T) {
	original := Bps(1500)

	text := original.String()
	reparsed, err := ParseSpeed(text)

	assert.Error(t, err, "formatted %q should not parse back", text)
	assert.NotEqual(t, original, reparsed)

	// Exact multiples of a unit happen to survive.
	for _, s := range []Speed{Bps(1 << 10), Bps(1 << 20), Bps(1 << 30), Bps(512)} {
		back, err := ParseSpeed(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, back)
	}

	// PassThrough formats as its display name, not the parse token.
	_, err = ParseSpeed(PassThrough.String())
	assert.Error(t, err)
}

func TestSpeed_Accessors(t *testing.T) {
	n, ok := Bps(42).BytesPerSecond()
	assert.True(t, ok)
	assert.Equal(t, uint64(42), n)
	assert.False(t, Bps(42).IsPassThrough())

	n, ok = PassThrough.BytesPerSecond()
	assert.False(t, ok)
	assert.Zero(t, n)
	assert.True(t, PassThrough.IsPassThrough())

	var zero Speed
	assert.Equal(t, Bps(0), zero)
}

func TestSpeed_Set(t *testing.T) {
	var s Speed
	require.NoError(t, s.Set("4KBps"))
	assert.Equal(t, Bps(4096), s)

	assert.Error(t, s.Set("four"))
	assert.Equal(t, Bps(4096), s, "failed Set must not modify the value")

	assert.Equal(t, "speed", s.Type())
}

func TestMustParseSpeed(t *testing.T) {
	assert.Equal(t, Bps(2048), MustParseSpeed("2KBps"))
	assert.Panics(t, func() { MustParseSpeed("Bps") })
}

func TestSpeed_JSON(t *testing.T) {
	type wrapper struct {
		Speed Speed `json:"speed"`
	}

	b, err := json.Marshal(wrapper{Speed: PassThrough})
	require.NoError(t, err)
	assert.JSONEq(t, `{"speed":"PassThrough"}`, string(b))

	b, err = json.Marshal(wrapper{Speed: Bps(1 << 20)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"speed":1048576}`, string(b))

	decode := []struct {
		input    string
		expected Speed
	}{
		{`{"speed":2048}`, Bps(2048)},
		{`{"speed":"PassThrough"}`, PassThrough},
		{`{"speed":"pass_through"}`, PassThrough},
		{`{"speed":"10MBps"}`, Bps(10 << 20)},
		{`{"speed":"512"}`, Bps(512)},
		{`{"speed":null}`, Bps(7)},
	}
	for _, tt := range decode {
		w := wrapper{Speed: Bps(7)}
		require.NoError(t, json.Unmarshal([]byte(tt.input), &w), tt.input)
		assert.Equal(t, tt.expected, w.Speed, tt.input)
	}

	for _, input := range []string{`{"speed":-1}`, `{"speed":1.5}`, `{"speed":"fast"}`, `{"speed":true}`} {
		var w wrapper
		assert.Error(t, json.Unmarshal([]byte(input), &w), input)
	}
}

func TestSpeed_YAML(t *testing.T) {
	type wrapper struct {
		Speed Speed `yaml:"speed"`
	}

	b, err := yaml.Marshal(wrapper{Speed: PassThrough})
	require.NoError(t, err)
	assert.Equal(t, "speed: PassThrough\n", string(b))

	b, err = yaml.Marshal(wrapper{Speed: Bps(4096)})
	require.NoError(t, err)
	assert.Equal(t, "speed: 4096\n", string(b))

	decode := []struct {
		input    string
		expected Speed
	}{
		{"speed: 2048", Bps(2048)},
		{"speed: PassThrough", PassThrough},
		{"speed: pass_through", PassThrough},
		{"speed: 64MBps", Bps(64 << 20)},
		{`speed: "1024"`, Bps(1024)},
	}
	for _, tt := range decode {
		var w wrapper
		require.NoError(t, yaml.Unmarshal([]byte(tt.input), &w), tt.input)
		assert.Equal(t, tt.expected, w.Speed, tt.input)
	}

	for _, input := range []string{"speed: -1", "speed: 1.5", "speed: fast", "speed: [1]", "speed: Bps"} {
		var w wrapper
		assert.Error(t, yaml.Unmarshal([]byte(input), &w), input)
	}
}
