package sysprobe

import (
	"os"
	"path/filepath"
	"testing"
)

// fakeSys builds a sysfs-shaped tree with the given block entries.
func fakeSys(t *testing.T, entries map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, sectors := range entries {
		dir := filepath.Join(root, name)
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "size"), []byte(sectors+"\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestListSkipsPseudoDevices(t *testing.T) {
	root := fakeSys(t, map[string]string{
		"sda":   "1953525168",
		"loop0": "8",
		"ram0":  "16",
		"sr0":   "0",
		"zram0": "32",
		"dm-0":  "64",
	})

	devices, err := List(root)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(devices) != 1 {
		t.Fatalf("Expected only sda, got %+v", devices)
	}
	if devices[0].Path != "/dev/sda" {
		t.Errorf("Expected /dev/sda, got %s", devices[0].Path)
	}
	// 1953525168 sectors * 512 bytes ~ 931.5 GiB
	if devices[0].SizeBytes != 1953525168*512 {
		t.Errorf("Unexpected size %d", devices[0].SizeBytes)
	}
}

func TestListModel(t *testing.T) {
	root := fakeSys(t, map[string]string{"nvme0n1": "2097152"})
	modelDir := filepath.Join(root, "nvme0n1", "device")
	if err := os.MkdirAll(modelDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(modelDir, "model"), []byte("Samsung SSD 990\n"), 0644); err != nil {
		t.Fatal(err)
	}

	devices, err := List(root)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(devices) != 1 || devices[0].Model != "Samsung SSD 990" {
		t.Errorf("Expected model string, got %+v", devices)
	}
}

func TestListMissingRoot(t *testing.T) {
	if _, err := List(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected error for missing sysfs root")
	}
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		bytes uint64
		want  string
	}{
		{512, "512 B"},
		{8 << 20, "8.0 MiB"},
		{(1 << 30) + (1 << 29), "1.5 GiB"},
		{2 << 40, "2.0 TiB"},
	}
	for _, tt := range tests {
		if got := HumanSize(tt.bytes); got != tt.want {
			t.Errorf("HumanSize(%d) = %s, want %s", tt.bytes, got, tt.want)
		}
	}
}
