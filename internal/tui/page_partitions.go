package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kvernberg/nixwright/internal/selection"
	"github.com/kvernberg/nixwright/internal/tui/widget"
)

// PartitionsPage edits the partition layout of one device. The layout lives
// in the selection state; this page only decides which edit to apply.
type PartitionsPage struct {
	device string
	list   *widget.SelectList
	wipe   *widget.Modal
}

const (
	actRecommended = "Use the recommended layout"
	actScheme      = "Switch partition table (gpt/msdos)"
	actAdd         = "Add a partition…"
	actRemoveLast  = "Remove the last partition"
	actClear       = "Clear all partitions"
	actForget      = "Remove this drive from the installation"
	actDone        = "Done"
)

// NewPartitionsPage creates the layout editor for device.
func NewPartitionsPage(device string) *PartitionsPage {
	items := []string{
		actRecommended, actScheme, actAdd,
		actRemoveLast, actClear, actForget, actDone,
	}
	list := widget.NewSelectList("", items, len(items))
	list.Focus()
	return &PartitionsPage{
		device: device,
		list:   list,
		wipe: widget.NewModal("Replace layout",
			"Replace the current partition layout of "+device+"?",
			"Keep", "Replace"),
	}
}

func (p *PartitionsPage) Title() string { return "Partitions" }

func (p *PartitionsPage) Help() string { return "enter apply · esc back" }

// drive returns the state entry for this device, creating a GPT one on
// first edit.
func (p *PartitionsPage) drive(st *selection.State) *selection.Disk {
	for i := range st.Drives {
		if st.Drives[i].Device == p.device {
			return &st.Drives[i]
		}
	}
	st.Drives = append(st.Drives, selection.Disk{
		Device: p.device,
		Scheme: selection.SchemeGPT,
	})
	return &st.Drives[len(st.Drives)-1]
}

func (p *PartitionsPage) forget(st *selection.State) {
	for i := range st.Drives {
		if st.Drives[i].Device == p.device {
			st.Drives = append(st.Drives[:i], st.Drives[i+1:]...)
			return
		}
	}
}

func (p *PartitionsPage) HandleKey(st *selection.State, msg tea.KeyMsg) Signal {
	if p.wipe.Visible() {
		if p.wipe.HandleKey(msg) == widget.Committed && p.wipe.Choice() == "Replace" {
			d := p.drive(st)
			*d = selection.DefaultLayout(p.device, st.SwapEnabled)
		}
		return Continue()
	}

	if msg.Type == tea.KeyEsc {
		return Pop()
	}

	if p.list.HandleKey(msg) != widget.Committed {
		return Continue()
	}

	switch p.list.Selected() {
	case actRecommended:
		d := p.drive(st)
		if len(d.Partitions) > 0 {
			p.wipe.Show()
			return Continue()
		}
		*d = selection.DefaultLayout(p.device, st.SwapEnabled)

	case actScheme:
		d := p.drive(st)
		if d.Scheme == selection.SchemeGPT {
			d.Scheme = selection.SchemeMBR
		} else {
			d.Scheme = selection.SchemeGPT
		}

	case actAdd:
		p.drive(st)
		return Push(NewPartitionFormPage(p.device))

	case actRemoveLast:
		d := p.drive(st)
		if len(d.Partitions) > 0 {
			d.Partitions = d.Partitions[:len(d.Partitions)-1]
		}

	case actClear:
		p.drive(st).Partitions = nil

	case actForget:
		p.forget(st)
		return Pop()

	case actDone:
		return Pop()
	}
	return Continue()
}

func (p *PartitionsPage) View(st *selection.State, width int) string {
	var b strings.Builder
	b.WriteString(RenderTitle("Partition layout for " + p.device))
	b.WriteString("\n")

	// Render from a snapshot; the state entry is created on first edit.
	d := selection.Disk{Device: p.device, Scheme: selection.SchemeGPT}
	for i := range st.Drives {
		if st.Drives[i].Device == p.device {
			d = st.Drives[i]
		}
	}
	b.WriteString(RenderKeyValue("Table:", d.Scheme))
	b.WriteString("\n\n")

	if len(d.Partitions) == 0 {
		b.WriteString(SubtitleStyle.Render("No partitions yet. The recommended layout gives a bootable system."))
	} else {
		for i, part := range d.Partitions {
			mount := part.MountPoint
			if part.Filesystem == "swap" {
				mount = "swap"
			}
			b.WriteString(ValueStyle.Render(fmt.Sprintf(
				"  %d. %-8s %-8s %-8s %s", i+1, part.Label, part.Size, part.Filesystem, mount)))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(p.list.View(width))

	if p.wipe.Visible() {
		b.WriteString("\n\n")
		b.WriteString(p.wipe.View(width))
	}
	return b.String()
}
