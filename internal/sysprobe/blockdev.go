// Package sysprobe enumerates candidate installation targets from sysfs.
// It is a read-only boundary: the wizard never touches block devices itself,
// it only lists them so the drives page has something to offer. When probing
// fails (non-Linux host, restricted container) the page falls back to manual
// device entry.
package sysprobe

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// BlockDevice is one candidate installation target.
type BlockDevice struct {
	// Path is the device node, e.g. "/dev/sda".
	Path string
	// SizeBytes is the device capacity.
	SizeBytes uint64
	// Model is the hardware model string, if the kernel exposes one.
	Model string
}

// Label returns a one-line description for list rendering.
func (d BlockDevice) Label() string {
	if d.Model != "" {
		return fmt.Sprintf("%s  %s  (%s)", d.Path, HumanSize(d.SizeBytes), d.Model)
	}
	return fmt.Sprintf("%s  %s", d.Path, HumanSize(d.SizeBytes))
}

// HumanSize formats a byte count the way disk vendors label drives.
func HumanSize(bytes uint64) string {
	switch {
	case bytes >= 1<<40:
		return fmt.Sprintf("%.1f TiB", float64(bytes)/(1<<40))
	case bytes >= 1<<30:
		return fmt.Sprintf("%.1f GiB", float64(bytes)/(1<<30))
	case bytes >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(bytes)/(1<<20))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// skippable reports whether a sysfs block name is a pseudo or removable-media
// device we never offer as an installation target.
func skippable(name string) bool {
	for _, prefix := range []string{"loop", "ram", "sr", "zram", "dm-", "md", "fd"} {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// List enumerates block devices under root (normally "/sys/block"). The
// sector count in the size file is always in 512-byte units regardless of
// the device's logical sector size.
func List(root string) ([]BlockDevice, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", root, err)
	}

	var devices []BlockDevice
	for _, e := range entries {
		name := e.Name()
		if skippable(name) {
			continue
		}

		dev := BlockDevice{Path: "/dev/" + name}

		if data, err := os.ReadFile(filepath.Join(root, name, "size")); err == nil {
			if sectors, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64); err == nil {
				dev.SizeBytes = sectors * 512
			}
		}
		if data, err := os.ReadFile(filepath.Join(root, name, "device", "model")); err == nil {
			dev.Model = strings.TrimSpace(string(data))
		}

		devices = append(devices, dev)
	}

	return devices, nil
}

// ListDefault enumerates block devices from the standard sysfs location.
func ListDefault() ([]BlockDevice, error) {
	return List("/sys/block")
}
