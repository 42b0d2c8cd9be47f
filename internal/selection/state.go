package selection

import (
	"strings"
)

// Bootloader choices the synthesis engine knows how to express.
const (
	BootloaderSystemdBoot = "systemd-boot"
	BootloaderGrub        = "grub"
	BootloaderGrubLegacy  = "grub-legacy"
)

// Bootloaders lists the valid bootloader choices in menu order.
var Bootloaders = []string{BootloaderSystemdBoot, BootloaderGrub, BootloaderGrubLegacy}

// Network backend choices.
const (
	NetworkNetworkManager = "networkmanager"
	NetworkDHCPCD         = "dhcpcd"
	NetworkSystemdNetwork = "systemd-networkd"
)

// NetworkBackends lists the valid network backend choices in menu order.
var NetworkBackends = []string{NetworkNetworkManager, NetworkDHCPCD, NetworkSystemdNetwork}

// Audio backend choices.
const (
	AudioPipewire   = "pipewire"
	AudioPulseaudio = "pulseaudio"
	AudioNone       = "none"
)

// AudioBackends lists the valid audio backend choices in menu order.
var AudioBackends = []string{AudioPipewire, AudioPulseaudio, AudioNone}

// DesktopEnvironments lists the supported desktop choices in menu order.
// "none" yields a console-only system.
var DesktopEnvironments = []string{"gnome", "plasma", "xfce", "cinnamon", "hyprland", "none"}

// Greeters lists the supported display manager choices in menu order.
var Greeters = []string{"gdm", "sddm", "lightdm", "none"}

// Kernels lists the selectable kernel package sets in menu order.
var Kernels = []string{"linux", "linux-lts", "linux-zen", "linux-hardened"}

// Shells lists the login shells offered when creating a user.
var Shells = []string{"bash", "zsh", "fish", "nushell"}

// Profiles lists the installation profiles in menu order.
var Profiles = []string{"desktop", "minimal", "server"}

// Locales lists common system locales in menu order.
var Locales = []string{
	"en_US.UTF-8", "en_GB.UTF-8", "de_DE.UTF-8", "fr_FR.UTF-8",
	"es_ES.UTF-8", "it_IT.UTF-8", "pt_BR.UTF-8", "nl_NL.UTF-8",
	"pl_PL.UTF-8", "sv_SE.UTF-8", "nb_NO.UTF-8", "fi_FI.UTF-8",
	"ru_RU.UTF-8", "ja_JP.UTF-8", "zh_CN.UTF-8", "ko_KR.UTF-8",
}

// KeyboardLayouts lists common console/X keyboard layouts in menu order.
var KeyboardLayouts = []string{
	"us", "uk", "de", "fr", "es", "it", "br", "nl",
	"pl", "se", "no", "fi", "dk", "ru", "jp", "latam",
}

// Timezones lists common IANA timezone names in menu order. Any valid zone
// name can also be typed in directly.
var Timezones = []string{
	"UTC",
	"America/New_York", "America/Chicago", "America/Denver",
	"America/Los_Angeles", "America/Sao_Paulo",
	"Europe/London", "Europe/Berlin", "Europe/Paris", "Europe/Madrid",
	"Europe/Rome", "Europe/Stockholm", "Europe/Oslo", "Europe/Warsaw",
	"Europe/Moscow",
	"Asia/Tokyo", "Asia/Shanghai", "Asia/Seoul", "Asia/Kolkata",
	"Australia/Sydney",
}

// State is the single mutable record of all user choices. It is created once
// with safe defaults at process start and discarded at process exit; there is
// no persistence between runs. The navigation engine owns the sole instance
// and lends it to exactly one page per dispatch call.
type State struct {
	Hostname       string `yaml:"hostname"`
	Timezone       string `yaml:"timezone"`
	Locale         string `yaml:"locale"`
	Language       string `yaml:"language,omitempty"`
	KeyboardLayout string `yaml:"keyboard_layout"`

	Bootloader     string `yaml:"bootloader"`
	Desktop        string `yaml:"desktop"`
	Greeter        string `yaml:"greeter"`
	Profile        string `yaml:"profile"`
	NetworkBackend string `yaml:"network_backend"`
	AudioBackend   string `yaml:"audio_backend"`
	Kernel         string `yaml:"kernel"`

	FlakesEnabled bool `yaml:"flakes_enabled"`
	SwapEnabled   bool `yaml:"swap_enabled"`

	Drives []Disk `yaml:"drives"`
	Users  []User `yaml:"users"`

	// RootPasswordHash is an opaque credential blob produced by the hashing
	// collaborator. Required before synthesis.
	RootPasswordHash string `yaml:"root_password_hash"`

	// RootOnly acknowledges an install with no regular user accounts.
	RootOnly bool `yaml:"root_only,omitempty"`

	// SystemPackages keeps insertion order for reproducible output;
	// duplicates are collapsed on insert.
	SystemPackages []string `yaml:"system_packages,omitempty"`

	// FlakePath, when set, points at a pre-existing flake configuration that
	// supersedes the generated system document.
	FlakePath string `yaml:"flake_path,omitempty"`
}

// NewState returns a State populated with safe defaults. Every default is a
// valid choice so the operator only has to visit the sections that the
// requirement check names.
func NewState() *State {
	return &State{
		Timezone:       "UTC",
		Locale:         "en_US.UTF-8",
		KeyboardLayout: "us",
		Desktop:        "none",
		Greeter:        "none",
		Profile:        "desktop",
		NetworkBackend: NetworkNetworkManager,
		AudioBackend:   AudioPipewire,
		Kernel:         "linux",
		SwapEnabled:    true,
	}
}

// AddSystemPackage records a package selection, collapsing duplicates while
// preserving first-seen order.
func (s *State) AddSystemPackage(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	for _, p := range s.SystemPackages {
		if p == name {
			return
		}
	}
	s.SystemPackages = append(s.SystemPackages, name)
}

// RemoveSystemPackage drops a package from the selection if present.
func (s *State) RemoveSystemPackage(name string) {
	for i, p := range s.SystemPackages {
		if p == name {
			s.SystemPackages = append(s.SystemPackages[:i], s.SystemPackages[i+1:]...)
			return
		}
	}
}

// validBootloader reports whether b is one of the fixed bootloader choices.
func validBootloader(b string) bool {
	for _, v := range Bootloaders {
		if b == v {
			return true
		}
	}
	return false
}

// MissingRequirements returns the names of every completeness requirement the
// state does not yet satisfy, in a stable order. An empty slice means
// synthesis may proceed. The names are shown verbatim to the operator on the
// summary page, so they stay short and field-like.
func (s *State) MissingRequirements() []string {
	var missing []string

	if s.RootPasswordHash == "" {
		missing = append(missing, "root password")
	}
	if len(s.Users) == 0 && !s.RootOnly {
		missing = append(missing, "users")
	}
	switch {
	case len(s.Drives) == 0:
		missing = append(missing, "drives")
	default:
		for i := range s.Drives {
			if len(s.Drives[i].Partitions) == 0 {
				missing = append(missing, "partitions on "+s.Drives[i].Device)
			}
		}
	}
	if !validBootloader(s.Bootloader) {
		missing = append(missing, "bootloader")
	}

	return missing
}

// HasAllRequirements reports whether every completeness invariant holds.
// The final page must not emit the completion signal while this is false.
func (s *State) HasAllRequirements() bool {
	return len(s.MissingRequirements()) == 0
}
