// Package config provides user configuration management for nixwright.
//
// This package manages a YAML-based configuration file that stores wizard
// preferences (default locale, keyboard layout, timezone, kernel) and a
// per-host record of past generations. The configuration follows
// OS-specific conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/nixwright/config.yaml or $HOME/.config/nixwright/config.yaml
//   - macOS: $HOME/.config/nixwright/config.yaml
//   - Windows: %LOCALAPPDATA%\nixwright\config.yaml
//
// # Security
//
// IMPORTANT: This package NEVER stores passwords or password hashes. Those
// live only in the generated configuration documents.
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Seed a fresh wizard state with the stored defaults
//	registry.ApplyPreferences(st)
//
//	// After a successful generation
//	registry.RecordGeneration(st, outDir)
//	if err := registry.Save(); err != nil {
//	    log.Printf("could not save preferences: %v", err)
//	}
package config
