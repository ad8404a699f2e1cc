package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a previously written manifest. A missing, unreadable, or
// malformed file is treated as "no prior manifest", never as an error:
// the converter regenerates everything it owns anyway.
func Load(path string) *Manifest {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil
	}
	return &m
}

// Save serializes the manifest to path as YAML.
func Save(path string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to serialize manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
