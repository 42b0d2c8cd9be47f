package config

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/kvernberg/nixwright/internal/selection"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "nixwright") {
		t.Errorf("GetConfigDir() = %v, should contain 'nixwright'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("NewRegistry().Version = %v, want 1", reg.Version)
	}
	if reg.Hosts == nil {
		t.Error("NewRegistry().Hosts should not be nil")
	}
	if reg.Preferences == nil {
		t.Error("NewRegistry().Preferences should not be nil")
	}
}

func TestRegistryEnsureHost(t *testing.T) {
	reg := NewRegistry()

	host := reg.EnsureHost("nixbox")
	if host == nil {
		t.Fatal("EnsureHost() returned nil")
	}

	// Second call returns the same entry.
	if reg.EnsureHost("nixbox") != host {
		t.Error("EnsureHost() created a duplicate entry")
	}

	if reg.GetHost("other") != nil {
		t.Error("GetHost() should return nil for unknown hosts")
	}
}

func TestRecordGeneration(t *testing.T) {
	reg := NewRegistry()
	st := selection.NewState()
	st.Hostname = "nixbox"
	st.FlakePath = "github:me/hosts#nixbox"
	st.Drives = []selection.Disk{
		selection.DefaultLayout("/dev/sda", true),
		selection.DefaultLayout("/dev/sdb", false),
	}

	reg.RecordGeneration(st, "/mnt/etc/nixos")

	host := reg.GetHost("nixbox")
	if host == nil {
		t.Fatal("RecordGeneration() did not create a host entry")
	}
	if host.OutDir != "/mnt/etc/nixos" {
		t.Errorf("OutDir = %v, want /mnt/etc/nixos", host.OutDir)
	}
	if host.Flake != st.FlakePath {
		t.Errorf("Flake = %v, want %v", host.Flake, st.FlakePath)
	}
	if len(host.Drives) != 2 || host.Drives[0] != "/dev/sda" || host.Drives[1] != "/dev/sdb" {
		t.Errorf("Drives = %v, want the selected device paths", host.Drives)
	}
	if host.LastGenerated.IsZero() {
		t.Error("LastGenerated should be set")
	}
}

func TestApplyPreferences(t *testing.T) {
	reg := NewRegistry()
	reg.Preferences = &Preferences{
		Locale:         "de_DE.UTF-8",
		KeyboardLayout: "de",
	}

	st := selection.NewState()
	reg.ApplyPreferences(st)

	if st.Locale != "de_DE.UTF-8" {
		t.Errorf("Locale = %v, want de_DE.UTF-8", st.Locale)
	}
	if st.KeyboardLayout != "de" {
		t.Errorf("KeyboardLayout = %v, want de", st.KeyboardLayout)
	}
	// Unset preferences keep the built-in defaults.
	if st.Timezone != "UTC" {
		t.Errorf("Timezone = %v, want the UTC default", st.Timezone)
	}
}

func TestRememberPreferencesRoundTrip(t *testing.T) {
	reg := NewRegistry()
	st := selection.NewState()
	st.Locale = "sv_SE.UTF-8"
	st.KeyboardLayout = "se"
	st.Timezone = "Europe/Stockholm"
	st.Kernel = "linux-lts"

	reg.RememberPreferences(st)

	fresh := selection.NewState()
	reg.ApplyPreferences(fresh)

	if fresh.Locale != st.Locale || fresh.KeyboardLayout != st.KeyboardLayout ||
		fresh.Timezone != st.Timezone || fresh.Kernel != st.Kernel {
		t.Errorf("Preferences did not round-trip: %+v", reg.Preferences)
	}
}
