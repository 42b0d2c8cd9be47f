package nixgen

import (
	"strings"
	"testing"

	"github.com/kvernberg/nixwright/internal/selection"
)

// scenarioState builds the reference state: one disk, one user, systemd-boot.
func scenarioState() *selection.State {
	st := selection.NewState()
	st.Hostname = "nixbox"
	st.Bootloader = selection.BootloaderSystemdBoot
	st.RootPasswordHash = "$2b$10$rootrootrootrootroot"
	st.Users = []selection.User{
		{Name: "alice", PasswordHash: "$2b$10$alicealice", Shell: "bash", Admin: true},
	}
	st.Drives = []selection.Disk{{
		Device: "/dev/sda",
		Scheme: selection.SchemeGPT,
		Partitions: []selection.Partition{
			{Label: "root", MountPoint: "/", Filesystem: "ext4", Size: "100%"},
		},
	}}
	return st
}

// TestSynthesizeScenarioA checks the end-to-end happy path: requirements
// hold and both documents carry the expected attributes.
func TestSynthesizeScenarioA(t *testing.T) {
	st := scenarioState()

	if !st.HasAllRequirements() {
		t.Fatalf("Expected complete state, missing: %v", st.MissingRequirements())
	}

	cfg, err := Synthesize(st)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	for _, want := range []string{
		`networking.hostName = "nixbox";`,
		"users.users.alice",
		`extraGroups = [ "wheel" ];`,
		"systemd-boot.enable = true;",
	} {
		if !strings.Contains(cfg.System, want) {
			t.Errorf("System document missing %q:\n%s", want, cfg.System)
		}
	}

	for _, want := range []string{
		`device = "/dev/sda";`,
		`mountpoint = "/";`,
		`format = "ext4";`,
	} {
		if !strings.Contains(cfg.Disko, want) {
			t.Errorf("Disko document missing %q:\n%s", want, cfg.Disko)
		}
	}

	if cfg.FlakePath != "" {
		t.Errorf("Expected empty flake path, got %q", cfg.FlakePath)
	}
}

// TestSynthesizeScenarioB: empty drives must fail the requirement gate and
// name "drives" as the unmet requirement.
func TestSynthesizeScenarioB(t *testing.T) {
	st := scenarioState()
	st.Drives = nil

	if st.HasAllRequirements() {
		t.Fatal("Expected incomplete state")
	}
	missing := st.MissingRequirements()
	if len(missing) != 1 || missing[0] != "drives" {
		t.Errorf("Expected missing [drives], got %v", missing)
	}

	if _, err := Synthesize(st); err == nil {
		t.Error("Expected Synthesize to refuse incomplete state")
	} else if !strings.Contains(err.Error(), "drives") {
		t.Errorf("Expected error naming drives, got: %v", err)
	}
}

// TestSynthesizeScenarioC: a flake path supersedes the generated system
// document but the disk document is still produced.
func TestSynthesizeScenarioC(t *testing.T) {
	st := scenarioState()
	st.FlakePath = "/home/alice/dotfiles#nixbox"

	cfg, err := Synthesize(st)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	if cfg.FlakePath != st.FlakePath {
		t.Errorf("Expected flake path %q, got %q", st.FlakePath, cfg.FlakePath)
	}
	if cfg.System != "" {
		t.Error("Expected no generated system document when flake path is set")
	}
	if cfg.Disko == "" {
		t.Error("Expected disk document even with flake path")
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	st := scenarioState()
	st.AddSystemPackage("git")
	st.AddSystemPackage("htop")
	st.FlakesEnabled = true

	first, err := Synthesize(st)
	if err != nil {
		t.Fatalf("First synthesis failed: %v", err)
	}
	second, err := Synthesize(st)
	if err != nil {
		t.Fatalf("Second synthesis failed: %v", err)
	}

	if first.System != second.System {
		t.Error("System documents differ between identical runs")
	}
	if first.Disko != second.Disko {
		t.Error("Disko documents differ between identical runs")
	}
}

func TestSystemDocumentSections(t *testing.T) {
	st := scenarioState()
	st.Desktop = "gnome"
	st.Greeter = "gdm"
	st.NetworkBackend = selection.NetworkDHCPCD
	st.AudioBackend = selection.AudioPulseaudio
	st.Kernel = "linux-zen"
	st.Profile = "server"
	st.FlakesEnabled = true
	st.SwapEnabled = true
	st.AddSystemPackage("git")

	doc, err := SystemDocument(st)
	if err != nil {
		t.Fatalf("SystemDocument failed: %v", err)
	}

	for _, want := range []string{
		"services.xserver.desktopManager.gnome.enable = true;",
		"services.xserver.displayManager.gdm.enable = true;",
		"networking.dhcpcd.enable = true;",
		"hardware.pulseaudio.enable = true;",
		"boot.kernelPackages = pkgs.linuxPackages_zen;",
		"services.openssh.enable = true;",
		`nix.settings.experimental-features = [ "nix-command" "flakes" ];`,
		"zramSwap.enable = true;",
		"environment.systemPackages = with pkgs; [ git ];",
		`system.stateVersion = "25.05";`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("Document missing %q", want)
		}
	}
}

func TestSystemDocumentEscapesHostname(t *testing.T) {
	st := scenarioState()
	st.Hostname = `evil"host`

	doc, err := SystemDocument(st)
	if err != nil {
		t.Fatalf("SystemDocument failed: %v", err)
	}
	if !strings.Contains(doc, `networking.hostName = "evil\"host";`) {
		t.Errorf("Hostname not escaped:\n%s", doc)
	}
}

func TestSystemDocumentRejectsBadPackage(t *testing.T) {
	st := scenarioState()
	st.SystemPackages = []string{"git", "evil; rm -rf /"}

	_, err := SystemDocument(st)
	if err == nil {
		t.Fatal("Expected error for invalid package name")
	}
	synthErr, ok := err.(*SynthesisError)
	if !ok {
		t.Fatalf("Expected SynthesisError, got %T", err)
	}
	if synthErr.Field != "system_pkgs[1]" {
		t.Errorf("Expected field system_pkgs[1], got %q", synthErr.Field)
	}
}

func TestSystemDocumentControlCharacterNamesField(t *testing.T) {
	st := scenarioState()
	st.Hostname = "bad\x00host"

	_, err := SystemDocument(st)
	if err == nil {
		t.Fatal("Expected error for control character in hostname")
	}
	if !IsSynthesisError(err) {
		t.Fatalf("Expected SynthesisError, got %T", err)
	}
	if !strings.Contains(err.Error(), "hostname") {
		t.Errorf("Expected error to name hostname, got: %v", err)
	}
}
