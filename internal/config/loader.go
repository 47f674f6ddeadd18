package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// LoadConfig loads a run configuration from a file.
//
// The file format is determined by extension:
//   - .yaml, .yml -> YAML
//   - .json -> JSON
//
// Fields missing from the file keep their Default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data, path)
}

// ParseConfig parses configuration data.
//
// The format is determined by the file extension in path, or defaults to YAML
// if the path is empty or has an unknown extension.
func ParseConfig(data []byte, path string) (*Config, error) {
	format := formatFor(path)

	if err := checkDocument(data, format); err != nil {
		return nil, err
	}

	config := Default()
	switch format {
	case formatJSON:
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}

	if err := config.validate(path); err != nil {
		return nil, err
	}

	return &config, nil
}

// Marshal encodes c in the format implied by path's extension.
func Marshal(c Config, path string) ([]byte, error) {
	if formatFor(path) == formatJSON {
		return json.MarshalIndent(c, "", "  ")
	}
	return yaml.Marshal(c)
}

func formatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON
	default:
		return formatYAML
	}
}
