package selection

import (
	"strings"
	"testing"
)

// completeState returns a state that satisfies every requirement.
func completeState() *State {
	st := NewState()
	st.Hostname = "nixbox"
	st.Bootloader = BootloaderSystemdBoot
	st.RootPasswordHash = "$2b$10$abcdefghijklmnopqrstuv"
	st.Users = []User{{Name: "alice", PasswordHash: "$2b$10$x", Shell: "bash", Admin: true}}
	st.Drives = []Disk{{
		Device: "/dev/sda",
		Scheme: SchemeGPT,
		Partitions: []Partition{
			{Label: "root", MountPoint: "/", Filesystem: "ext4", Size: "100%"},
		},
	}}
	return st
}

func TestHasAllRequirementsComplete(t *testing.T) {
	st := completeState()

	if missing := st.MissingRequirements(); len(missing) != 0 {
		t.Errorf("Expected no missing requirements, got %v", missing)
	}
	if !st.HasAllRequirements() {
		t.Error("Expected HasAllRequirements=true for complete state")
	}
}

// TestMissingRequirements walks the exhaustive single-failure table: each
// case breaks exactly one invariant and must be reported by name.
func TestMissingRequirements(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*State)
		missing string
	}{
		{
			name:    "no root hash",
			mutate:  func(st *State) { st.RootPasswordHash = "" },
			missing: "root password",
		},
		{
			name:    "no users without root-only ack",
			mutate:  func(st *State) { st.Users = nil },
			missing: "users",
		},
		{
			name:    "empty drives",
			mutate:  func(st *State) { st.Drives = nil },
			missing: "drives",
		},
		{
			name:    "drive with no partitions",
			mutate:  func(st *State) { st.Drives[0].Partitions = nil },
			missing: "partitions on /dev/sda",
		},
		{
			name:    "no bootloader",
			mutate:  func(st *State) { st.Bootloader = "" },
			missing: "bootloader",
		},
		{
			name:    "unknown bootloader",
			mutate:  func(st *State) { st.Bootloader = "lilo" },
			missing: "bootloader",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := completeState()
			tt.mutate(st)

			if st.HasAllRequirements() {
				t.Fatal("Expected HasAllRequirements=false")
			}

			missing := st.MissingRequirements()
			if len(missing) != 1 {
				t.Fatalf("Expected exactly one missing requirement, got %v", missing)
			}
			if missing[0] != tt.missing {
				t.Errorf("Expected missing requirement %q, got %q", tt.missing, missing[0])
			}
		})
	}
}

func TestRootOnlyAcknowledgment(t *testing.T) {
	st := completeState()
	st.Users = nil
	st.RootOnly = true

	if !st.HasAllRequirements() {
		t.Errorf("Root-only install should satisfy the users requirement, missing: %v",
			st.MissingRequirements())
	}
}

func TestAddSystemPackage(t *testing.T) {
	st := NewState()

	st.AddSystemPackage("git")
	st.AddSystemPackage("vim")
	st.AddSystemPackage("git") // duplicate
	st.AddSystemPackage("  ")  // blank

	if len(st.SystemPackages) != 2 {
		t.Fatalf("Expected 2 packages, got %v", st.SystemPackages)
	}
	if st.SystemPackages[0] != "git" || st.SystemPackages[1] != "vim" {
		t.Errorf("Expected insertion order [git vim], got %v", st.SystemPackages)
	}

	st.RemoveSystemPackage("git")
	if len(st.SystemPackages) != 1 || st.SystemPackages[0] != "vim" {
		t.Errorf("Expected [vim] after removal, got %v", st.SystemPackages)
	}
}

func TestEffectiveGroups(t *testing.T) {
	u := User{Name: "alice", Admin: true, Groups: []string{"video", "wheel", "audio"}}

	groups := u.EffectiveGroups()
	if len(groups) != 3 {
		t.Fatalf("Expected 3 groups, got %v", groups)
	}
	if groups[0] != "wheel" {
		t.Errorf("Expected wheel first for admin user, got %v", groups)
	}
}

func TestDefaultLayout(t *testing.T) {
	t.Run("with swap", func(t *testing.T) {
		d := DefaultLayout("/dev/nvme0n1", true)

		if d.Scheme != SchemeGPT {
			t.Errorf("Expected gpt scheme, got %s", d.Scheme)
		}
		if len(d.Partitions) != 3 {
			t.Fatalf("Expected 3 partitions, got %d", len(d.Partitions))
		}
		if d.Partitions[0].MountPoint != "/boot" {
			t.Errorf("Expected ESP first, got %+v", d.Partitions[0])
		}
		last := d.Partitions[len(d.Partitions)-1]
		if last.Size != "100%" || last.MountPoint != "/" {
			t.Errorf("Expected root with remainder policy last, got %+v", last)
		}
	})

	t.Run("without swap", func(t *testing.T) {
		d := DefaultLayout("/dev/sda", false)
		if len(d.Partitions) != 2 {
			t.Fatalf("Expected 2 partitions, got %d", len(d.Partitions))
		}
		for _, p := range d.Partitions {
			if p.Filesystem == "swap" {
				t.Error("Did not expect a swap partition")
			}
		}
	})
}

func TestDiskName(t *testing.T) {
	d := Disk{Device: "/dev/nvme0n1"}
	if d.Name() != "nvme0n1" {
		t.Errorf("Expected nvme0n1, got %s", d.Name())
	}
}

func TestDiskDescribe(t *testing.T) {
	d := DefaultLayout("/dev/sda", false)
	desc := d.Describe()

	for _, want := range []string{"/dev/sda", "gpt", "/boot", "ext4", "100%"} {
		if !strings.Contains(desc, want) {
			t.Errorf("Expected describe output to contain %q, got %q", want, desc)
		}
	}
}
