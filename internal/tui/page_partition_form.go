package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kvernberg/nixwright/internal/selection"
	"github.com/kvernberg/nixwright/internal/tui/widget"
)

// PartitionFormPage adds one partition to a device. Tab moves through the
// fields; Save appends to the device's layout and pops back.
type PartitionFormPage struct {
	device string

	label   *widget.TextInput
	size    *widget.TextInput
	fs      *widget.SelectList
	mount   *widget.TextInput
	buttons *widget.ButtonRow

	focus  int
	errMsg string
}

// NewPartitionFormPage creates an empty partition form for device.
func NewPartitionFormPage(device string) *PartitionFormPage {
	p := &PartitionFormPage{
		device:  device,
		label:   widget.NewTextInput("Label:", "root"),
		size:    widget.NewTextInput("Size:", "100% or 20G or 512M"),
		fs:      widget.NewSelectList("Filesystem", selection.Filesystems, 5),
		mount:   widget.NewTextInput("Mount point:", "/"),
		buttons: widget.NewButtonRow("Save", "Cancel"),
	}
	p.label.Focus()
	return p
}

func (p *PartitionFormPage) Title() string { return "Add Partition" }

func (p *PartitionFormPage) Help() string { return "tab next field · enter save · esc cancel" }

func (p *PartitionFormPage) CapturingText() bool { return p.focus == 0 || p.focus == 1 || p.focus == 3 }

type formField interface {
	Focus()
	Blur()
}

func (p *PartitionFormPage) fields() []formField {
	return []formField{p.label, p.size, p.fs, p.mount, p.buttons}
}

func (p *PartitionFormPage) cycleFocus(delta int) {
	fields := p.fields()
	fields[p.focus].Blur()
	p.focus = (p.focus + delta + len(fields)) % len(fields)
	fields[p.focus].Focus()
}

// validSize accepts "100%", "NN%", or a number with a K/M/G/T suffix.
func validSize(s string) bool {
	if s == "" {
		return false
	}
	if strings.HasSuffix(s, "%") {
		s = strings.TrimSuffix(s, "%")
	} else {
		switch s[len(s)-1] {
		case 'K', 'M', 'G', 'T':
			s = s[:len(s)-1]
		default:
			return false
		}
	}
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func (p *PartitionFormPage) save(st *selection.State) Signal {
	label := strings.TrimSpace(p.label.Value())
	size := strings.TrimSpace(p.size.Value())
	fs := p.fs.Selected()
	mount := strings.TrimSpace(p.mount.Value())

	switch {
	case label == "":
		p.errMsg = "label is required"
	case !validSize(size):
		p.errMsg = "size must be like 512M, 20G or 100%"
	case fs != "swap" && !strings.HasPrefix(mount, "/"):
		p.errMsg = "mount point must be an absolute path"
	default:
		if fs == "swap" {
			mount = ""
		}
		for i := range st.Drives {
			if st.Drives[i].Device == p.device {
				st.Drives[i].Partitions = append(st.Drives[i].Partitions, selection.Partition{
					Label:      label,
					MountPoint: mount,
					Filesystem: fs,
					Size:       size,
				})
				break
			}
		}
		return Pop()
	}
	return Continue()
}

func (p *PartitionFormPage) HandleKey(st *selection.State, msg tea.KeyMsg) Signal {
	switch msg.Type {
	case tea.KeyEsc:
		return Pop()
	case tea.KeyTab:
		p.cycleFocus(1)
		return Continue()
	case tea.KeyShiftTab:
		p.cycleFocus(-1)
		return Continue()
	}

	switch p.focus {
	case 0, 1, 3:
		inputs := []*widget.TextInput{p.label, p.size, nil, p.mount}
		if inputs[p.focus].HandleKey(msg) == widget.Committed {
			p.cycleFocus(1)
		}
	case 2:
		if p.fs.HandleKey(msg) == widget.Committed {
			p.cycleFocus(1)
		}
	case 4:
		if p.buttons.HandleKey(msg) == widget.Committed {
			if p.buttons.Label() == "Cancel" {
				return Pop()
			}
			return p.save(st)
		}
	}
	return Continue()
}

func (p *PartitionFormPage) View(st *selection.State, width int) string {
	var b strings.Builder
	b.WriteString(RenderTitle("New partition on " + p.device))
	b.WriteString("\n")
	b.WriteString(p.label.View(width))
	b.WriteString("\n")
	b.WriteString(p.size.View(width))
	b.WriteString("\n\n")
	b.WriteString(p.fs.View(width))
	b.WriteString("\n\n")
	b.WriteString(p.mount.View(width))
	b.WriteString("\n\n")
	b.WriteString(p.buttons.View(width))
	if p.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(RenderError(p.errMsg))
	}
	return b.String()
}
