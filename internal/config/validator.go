package config

import (
	"fmt"
	"strings"
)

// FieldError is one problem with one field of a run configuration.
type FieldError struct {
	Field   string
	Problem string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Problem
}

// ConfigError lists every problem found in a run configuration. Source names
// the file the configuration came from and is empty for flags and literals.
type ConfigError struct {
	Source   string
	Problems []*FieldError
}

func (e *ConfigError) Error() string {
	subject := "run config"
	if e.Source != "" {
		subject = fmt.Sprintf("run config %s", e.Source)
	}

	switch len(e.Problems) {
	case 0:
		return subject + " is valid"
	case 1:
		return fmt.Sprintf("invalid %s: %s", subject, e.Problems[0])
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "invalid %s (%d problems):", subject, len(e.Problems))
	for _, p := range e.Problems {
		sb.WriteString("\n  - ")
		sb.WriteString(p.Error())
	}
	return sb.String()
}

func (e *ConfigError) add(field, format string, args ...interface{}) {
	e.Problems = append(e.Problems, &FieldError{Field: field, Problem: fmt.Sprintf(format, args...)})
}

// Validate checks that c describes a runnable configuration.
//
// Returns nil if valid, or a *ConfigError naming every bad field.
func (c *Config) Validate() error {
	return c.validate("")
}

func (c *Config) validate(source string) error {
	errs := &ConfigError{Source: source}

	if c.Duration <= 0 {
		errs.add("duration", "must be positive, got %s", c.Duration)
	}
	if c.Frequency <= 0 {
		errs.add("frequency", "must be positive, got %s", c.Frequency)
	}
	if len(c.Operations) == 0 {
		errs.add("operations", "at least one operation is required")
	}
	for i, op := range c.Operations {
		if !op.Valid() {
			errs.add(fmt.Sprintf("operations[%d]", i), "unknown operation %s", op)
		}
	}

	if len(errs.Problems) > 0 {
		return errs
	}
	return nil
}
