package nixgen

import (
	"fmt"

	"github.com/kvernberg/nixwright/internal/selection"
)

// writePartition emits one disko partition entry. ESP and swap partitions
// use their dedicated disko content types; everything else is a plain
// filesystem with a format and mountpoint. GPT type codes only make sense
// on a gpt table, so the EF00 stamp is skipped on msdos disks.
func writePartition(w *writer, field string, gpt bool, p selection.Partition) {
	name, err := AttrName(field+".label", p.Label)
	if err != nil {
		if w.err == nil {
			w.err = err
		}
		return
	}

	w.open(name)
	w.attrStr(field+".size", "size", p.Size)

	switch {
	case p.Filesystem == "swap":
		w.open("content")
		w.attrStr(field+".filesystem", "type", "swap")
		w.close()
	case gpt && p.Filesystem == "vfat" && p.MountPoint == "/boot":
		w.attrStr(field+".type", "type", "EF00")
		w.open("content")
		w.attrStr(field+".filesystem", "type", "filesystem")
		w.attrStr(field+".filesystem", "format", p.Filesystem)
		w.attrStr(field+".mount_point", "mountpoint", p.MountPoint)
		w.close()
	default:
		w.open("content")
		w.attrStr(field+".filesystem", "type", "filesystem")
		w.attrStr(field+".filesystem", "format", p.Filesystem)
		if p.MountPoint != "" {
			w.attrStr(field+".mount_point", "mountpoint", p.MountPoint)
		}
		w.close()
	}
	w.close()
}

// DiskoDocument renders the disko.nix provisioning expression. Disks and
// their partitions appear in exactly the order stored in the selection
// state; disko applies them in declaration order, so the sequence is part of
// the contract, not cosmetics.
func DiskoDocument(st *selection.State) (string, error) {
	w := &writer{}

	w.line("# Generated by nixwright.")
	w.line("{")
	w.indent++
	w.open("disko.devices")
	w.open("disk")

	for di, d := range st.Drives {
		field := fmt.Sprintf("drives[%d]", di)
		name, err := AttrName(field+".device", d.Name())
		if err != nil {
			return "", err
		}

		w.open(name)
		w.attrStr(field+".device", "device", d.Device)
		w.attrStr(field+".device", "type", "disk")
		w.open("content")
		w.attrStr(field+".scheme", "type", d.Scheme)
		w.open("partitions")
		gpt := d.Scheme == selection.SchemeGPT
		for pi, p := range d.Partitions {
			writePartition(w, fmt.Sprintf("%s.partitions[%d]", field, pi), gpt, p)
		}
		w.close() // partitions
		w.close() // content
		w.close() // disk name
	}

	w.close() // disk
	w.close() // disko.devices
	w.indent--
	w.line("}")

	if w.err != nil {
		return "", w.err
	}
	return w.String(), nil
}
