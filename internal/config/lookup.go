package config

import (
	"encoding/json"
	"fmt"

	"github.com/iobench/iobench/pkg/jsonpath"
)

// Lookup returns one field of c as text, addressed the way it appears in a
// JSON config file: "speed", "$.operations[0]", "duration".
func (c Config) Lookup(path string) (string, error) {
	doc, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	return jsonpath.Extract(doc, path)
}
