package selection

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a complete set of selections from a YAML file. This is the
// non-interactive path: a selections file written by hand (or saved from a
// previous run) stands in for the wizard.
//
// Defaults are applied first, so a selections file only needs to name the
// fields it cares about.
func Load(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read selections file: %w", err)
	}

	st := NewState()
	if err := yaml.Unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("parse selections file %s: %w", path, err)
	}
	return st, nil
}

// Save writes the current selections to a YAML file. Password hashes are
// included as-is; they are already one-way hashes, never plaintext.
func Save(st *State, path string) error {
	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal selections: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write selections file: %w", err)
	}
	return nil
}
