package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Operation is the kind of I/O a run performs.
type Operation int

const (
	Read Operation = iota
	Write
)

// String returns "Read" or "Write".
func (o Operation) String() string {
	switch o {
	case Read:
		return "Read"
	case Write:
		return "Write"
	default:
		return fmt.Sprintf("Operation(%d)", int(o))
	}
}

// Valid reports whether o is a known operation.
func (o Operation) Valid() bool {
	return o == Read || o == Write
}

// ParseOperation parses an operation name, ignoring case.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "read":
		return Read, nil
	case "write":
		return Write, nil
	default:
		return 0, fmt.Errorf("unknown operation %q (expected Read or Write)", s)
	}
}

// ParseOperations parses a comma separated list such as "read,write".
// Order and duplicates are preserved.
func ParseOperations(s string) ([]Operation, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("no operations given")
	}

	parts := strings.Split(s, ",")
	ops := make([]Operation, 0, len(parts))
	for _, part := range parts {
		op, err := ParseOperation(part)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// MarshalJSON implements json.Marshaler.
func (o Operation) MarshalJSON() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("cannot encode %s", o)
	}
	return json.Marshal(o.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Operation) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("operation must be a string: %w", err)
	}
	op, err := ParseOperation(s)
	if err != nil {
		return err
	}
	*o = op
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (o Operation) MarshalYAML() (interface{}, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("cannot encode %s", o)
	}
	return o.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *Operation) UnmarshalYAML(value *yaml.Node) error {
	op, err := ParseOperation(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*o = op
	return nil
}
