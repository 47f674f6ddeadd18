package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DefaultDuration is how long a run lasts unless configured otherwise.
	DefaultDuration = 10 * time.Minute

	// DefaultFrequency is how often a run repeats unless configured otherwise.
	DefaultFrequency = 30 * time.Minute
)

// Config is the specification of a benchmark run.
//
// Example YAML:
//
//	duration: 10m
//	frequency: 30m
//	operations: [Read, Write]
//	speed: 64MBps
type Config struct {
	// Duration is the total length of one run
	Duration Duration `json:"duration" yaml:"duration"`

	// Frequency is how often the run repeats
	Frequency Duration `json:"frequency" yaml:"frequency"`

	// Operations run in order; duplicates are allowed
	Operations []Operation `json:"operations" yaml:"operations"`

	// Speed caps the throughput of every operation
	Speed Speed `json:"speed" yaml:"speed"`
}

// Default returns the configuration used when nothing else is given.
func Default() Config {
	return Config{
		Duration:   Duration(DefaultDuration),
		Frequency:  Duration(DefaultFrequency),
		Operations: []Operation{Read, Write},
		Speed:      PassThrough,
	}
}

// Clone returns a copy of c that shares no memory with it.
func (c Config) Clone() Config {
	out := c
	if c.Operations != nil {
		out.Operations = append([]Operation(nil), c.Operations...)
	}
	return out
}

func (c Config) String() string {
	ops := make([]string, len(c.Operations))
	for i, op := range c.Operations {
		ops[i] = op.String()
	}

	return fmt.Sprintf("Config {Duration: %dsec, Frequency: %dsec, Operations: %s, Speed: %s}",
		c.Duration.Seconds(), c.Frequency.Seconds(), strings.Join(ops, ":"), c.Speed)
}
