package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kvernberg/nixwright/internal/selection"
	"github.com/kvernberg/nixwright/internal/sysprobe"
	"github.com/kvernberg/nixwright/internal/tui/widget"
)

// DrivesPage picks target disks. Detected block devices are listed first;
// a device path can also be typed in for setups the probe misses. Choosing
// a device opens its partition layout page.
type DrivesPage struct {
	list    *widget.SelectList
	manual  *widget.TextInput
	devices []sysprobe.BlockDevice
	typing  bool
	errMsg  string
}

// NewDrivesPage creates the drive picker, probing /sys/block once.
func NewDrivesPage() *DrivesPage {
	p := &DrivesPage{
		manual: widget.NewTextInput("Device path:", "/dev/sda"),
	}
	p.rescan()
	return p
}

func (p *DrivesPage) rescan() {
	devices, err := sysprobe.ListDefault()
	if err != nil {
		devices = nil
	}
	p.devices = devices

	items := make([]string, 0, len(devices)+1)
	for _, d := range devices {
		items = append(items, d.Label())
	}
	items = append(items, "Enter a device path manually…")
	p.list = widget.NewSelectList("Detected drives", items, 8)
	p.list.Focus()
}

func (p *DrivesPage) Title() string { return "Drives" }

func (p *DrivesPage) Help() string { return "enter pick drive · r rescan · esc back" }

func (p *DrivesPage) CapturingText() bool { return p.typing }

func (p *DrivesPage) HandleKey(st *selection.State, msg tea.KeyMsg) Signal {
	if p.typing {
		if msg.Type == tea.KeyEsc {
			p.typing = false
			p.manual.Blur()
			p.list.Focus()
			return Continue()
		}
		if p.manual.HandleKey(msg) == widget.Committed {
			path := strings.TrimSpace(p.manual.Value())
			if !strings.HasPrefix(path, "/dev/") {
				p.errMsg = "device path must start with /dev/"
				return Continue()
			}
			p.typing = false
			p.manual.Blur()
			p.manual.Reset()
			p.errMsg = ""
			return Push(NewPartitionsPage(path))
		}
		return Continue()
	}

	switch msg.String() {
	case "esc":
		return Pop()
	case "r":
		p.rescan()
		return Continue()
	}

	if p.list.HandleKey(msg) == widget.Committed {
		if p.list.Index() >= len(p.devices) {
			p.typing = true
			p.list.Blur()
			p.manual.Focus()
			return Continue()
		}
		return Push(NewPartitionsPage(p.devices[p.list.Index()].Path))
	}
	return Continue()
}

func (p *DrivesPage) View(st *selection.State, width int) string {
	var b strings.Builder
	b.WriteString(RenderTitle("Choose installation drives"))
	b.WriteString("\n")
	b.WriteString(p.list.View(width))
	b.WriteString("\n\n")

	if p.typing {
		b.WriteString(p.manual.View(width))
		b.WriteString("\n\n")
	}
	if p.errMsg != "" {
		b.WriteString(RenderError(p.errMsg))
		b.WriteString("\n\n")
	}

	if len(st.Drives) == 0 {
		b.WriteString(SubtitleStyle.Render("No drives configured yet."))
		return b.String()
	}

	b.WriteString(SubtitleStyle.Render("Configured:"))
	for _, d := range st.Drives {
		b.WriteString("\n")
		b.WriteString(ValueStyle.Render(fmt.Sprintf("  %s (%s) %s", d.Device, d.Scheme, d.Describe())))
	}
	return b.String()
}
