package config

import (
	"time"

	"github.com/kvernberg/nixwright/internal/selection"
)

// Registry represents the entire user configuration file.
// It stores wizard preferences and a record of past generations per host.
type Registry struct {
	Version     int              `yaml:"version"`
	Hosts       map[string]*Host `yaml:"hosts,omitempty"` // Keyed by hostname
	Preferences *Preferences     `yaml:"preferences,omitempty"`
}

// Host records the last generation for one configured machine. It is
// reference information only; the generated documents are the source of
// truth.
type Host struct {
	LastGenerated time.Time `yaml:"last_generated,omitempty"`
	OutDir        string    `yaml:"out_dir,omitempty"`
	Flake         string    `yaml:"flake,omitempty"`
	Drives        []string  `yaml:"drives,omitempty"`
}

// Preferences represents wizard-wide defaults applied to a fresh selection
// state before the first page is shown. Empty fields keep the built-in
// defaults.
type Preferences struct {
	Locale         string `yaml:"locale,omitempty"`
	KeyboardLayout string `yaml:"keyboard_layout,omitempty"`
	Timezone       string `yaml:"timezone,omitempty"`
	Kernel         string `yaml:"kernel,omitempty"`
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     1,
		Hosts:       make(map[string]*Host),
		Preferences: &Preferences{},
	}
}

// GetHost retrieves a host record by hostname.
// Returns nil if the host has never been generated.
func (r *Registry) GetHost(hostname string) *Host {
	return r.Hosts[hostname]
}

// EnsureHost ensures a host entry exists, creating an empty one if needed.
func (r *Registry) EnsureHost(hostname string) *Host {
	if r.Hosts == nil {
		r.Hosts = make(map[string]*Host)
	}
	if host, exists := r.Hosts[hostname]; exists {
		return host
	}
	host := &Host{}
	r.Hosts[hostname] = host
	return host
}

// RecordGeneration updates the host record after a successful generation.
func (r *Registry) RecordGeneration(st *selection.State, outDir string) {
	host := r.EnsureHost(st.Hostname)
	host.LastGenerated = time.Now()
	host.OutDir = outDir
	host.Flake = st.FlakePath
	host.Drives = host.Drives[:0]
	for _, d := range st.Drives {
		host.Drives = append(host.Drives, d.Device)
	}
}

// ApplyPreferences seeds a fresh selection state with the stored wizard
// defaults. Only fields the user actually set override the built-ins.
func (r *Registry) ApplyPreferences(st *selection.State) {
	p := r.Preferences
	if p == nil {
		return
	}
	if p.Locale != "" {
		st.Locale = p.Locale
		st.Language = p.Locale
	}
	if p.KeyboardLayout != "" {
		st.KeyboardLayout = p.KeyboardLayout
	}
	if p.Timezone != "" {
		st.Timezone = p.Timezone
	}
	if p.Kernel != "" {
		st.Kernel = p.Kernel
	}
}

// RememberPreferences stores the localization choices of a completed run as
// the defaults for the next one.
func (r *Registry) RememberPreferences(st *selection.State) {
	if r.Preferences == nil {
		r.Preferences = &Preferences{}
	}
	r.Preferences.Locale = st.Locale
	r.Preferences.KeyboardLayout = st.KeyboardLayout
	r.Preferences.Timezone = st.Timezone
	r.Preferences.Kernel = st.Kernel
}
