package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/iobench/iobench/pkg/jsonschema"
)

// documentSchema describes a config file before it is decoded.
const documentSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"title": "iobench run configuration",
	"type": "object",
	"properties": {
		"duration":   { "type": ["string", "integer"], "minimum": 0 },
		"frequency":  { "type": ["string", "integer"], "minimum": 0 },
		"operations": {
			"type": "array",
			"items": { "type": "string", "pattern": "^(?i:read|write)$" }
		},
		"speed": { "type": ["string", "integer"], "minimum": 0 }
	},
	"additionalProperties": false
}`

var configSchema = jsonschema.MustCompile("iobench-config.json", documentSchema)

// checkDocument validates raw config bytes against documentSchema.
// YAML is converted to its JSON data model first.
func checkDocument(data []byte, format string) error {
	var doc interface{}

	switch format {
	case formatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		var raw interface{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to parse YAML config: %w", err)
		}
		// Round-trip through encoding/json so numbers become float64,
		// which is what the schema validator expects.
		b, err := json.Marshal(raw)
		if err != nil {
			return fmt.Errorf("config is not representable as JSON: %w", err)
		}
		if err := json.Unmarshal(b, &doc); err != nil {
			return fmt.Errorf("config is not representable as JSON: %w", err)
		}
	}

	// An empty YAML file decodes to nil; treat it as an empty mapping.
	if doc == nil {
		doc = map[string]interface{}{}
	}

	if errs := configSchema.Validate(doc); len(errs) > 0 {
		return fmt.Errorf("config does not match schema: %w", errs)
	}
	return nil
}
