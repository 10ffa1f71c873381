package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Override remaps legacy submission field IDs without a rebuild. The
// original deployments did not all share one field-ID table, so the
// mapping has to be configuration, not code.
type Override struct {
	LegacyFieldIDs map[string]int64 `yaml:"legacy_field_ids"`
}

// LoadOverride reads a YAML override file. An empty path returns nil,
// meaning ship defaults.
func LoadOverride(path string) (*Override, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog override: %w", err)
	}
	var o Override
	if err := yaml.Unmarshal(raw, &o); err != nil {
		return nil, fmt.Errorf("parse catalog override: %w", err)
	}
	return &o, nil
}
