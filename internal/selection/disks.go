package selection

import "fmt"

// Partitioning schemes.
const (
	SchemeGPT = "gpt"
	SchemeMBR = "msdos"
)

// Filesystem types the provisioning document can express.
var Filesystems = []string{"ext4", "btrfs", "xfs", "vfat", "swap"}

// Partition describes one partition on a disk. Ordering within a Disk is
// meaningful (it reflects provisioning order) and is carried verbatim into
// the disk-provisioning document.
type Partition struct {
	// Label names the partition in the provisioning document ("ESP", "root").
	Label string `yaml:"label"`
	// MountPoint is where the filesystem is mounted in the installed system.
	// Empty for swap.
	MountPoint string `yaml:"mount_point,omitempty"`
	// Filesystem is one of Filesystems.
	Filesystem string `yaml:"filesystem"`
	// Size is a size policy string understood by the provisioning tool:
	// an absolute size such as "512M" or "30G", or "100%" for the remainder
	// of the disk. The remainder policy is only valid on the last partition.
	Size string `yaml:"size"`
}

// Disk describes one block device to be provisioned.
type Disk struct {
	// Device is the full device path, e.g. "/dev/sda".
	Device string `yaml:"device"`
	// Scheme is the partition table type, SchemeGPT or SchemeMBR.
	Scheme string `yaml:"scheme"`
	// Partitions are provisioned in slice order.
	Partitions []Partition `yaml:"partitions"`
}

// Name returns a short identifier for the disk derived from its device path,
// used as the attribute name in the provisioning document.
func (d Disk) Name() string {
	for i := len(d.Device) - 1; i >= 0; i-- {
		if d.Device[i] == '/' {
			return d.Device[i+1:]
		}
	}
	return d.Device
}

// DefaultLayout returns the automatic partition layout for a disk: an EFI
// system partition plus a root filesystem, with an optional swap partition
// between them. This mirrors what most operators want and is offered as the
// one-keystroke choice on the drives page.
func DefaultLayout(device string, withSwap bool) Disk {
	parts := []Partition{
		{Label: "ESP", MountPoint: "/boot", Filesystem: "vfat", Size: "512M"},
	}
	if withSwap {
		parts = append(parts, Partition{Label: "swap", Filesystem: "swap", Size: "8G"})
	}
	parts = append(parts, Partition{Label: "root", MountPoint: "/", Filesystem: "ext4", Size: "100%"})

	return Disk{Device: device, Scheme: SchemeGPT, Partitions: parts}
}

// Describe returns a one-line human summary of the disk layout for list
// rendering, e.g. "/dev/sda (gpt): /boot vfat 512M, swap 8G, / ext4 100%".
func (d Disk) Describe() string {
	desc := fmt.Sprintf("%s (%s):", d.Device, d.Scheme)
	for i, p := range d.Partitions {
		if i > 0 {
			desc += ","
		}
		if p.MountPoint != "" {
			desc += fmt.Sprintf(" %s %s %s", p.MountPoint, p.Filesystem, p.Size)
		} else {
			desc += fmt.Sprintf(" %s %s", p.Filesystem, p.Size)
		}
	}
	return desc
}
