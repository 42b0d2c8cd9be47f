package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kvernberg/nixwright/internal/selection"
	"github.com/kvernberg/nixwright/internal/tui/widget"
)

// FlakePage sets an optional flake reference. When present, disk
// provisioning is still generated but the system configuration is left to
// the flake.
type FlakePage struct {
	input  *widget.TextInput
	note   *widget.InfoBox
	seeded bool
}

// NewFlakePage creates the flake reference editor.
func NewFlakePage() *FlakePage {
	in := widget.NewTextInput("Flake:", "github:user/repo#host (empty for none)")
	in.Focus()
	return &FlakePage{
		input: in,
		note: widget.NewInfoBox("About flakes",
			"With a flake set, only the disk layout is generated here;",
			"the system configuration comes from the flake."),
	}
}

func (p *FlakePage) Title() string { return "Flake" }

func (p *FlakePage) Help() string { return "enter save · esc back" }

func (p *FlakePage) CapturingText() bool { return true }

func (p *FlakePage) HandleKey(st *selection.State, msg tea.KeyMsg) Signal {
	if msg.Type == tea.KeyEsc {
		return Pop()
	}

	if p.input.HandleKey(msg) == widget.Committed {
		st.FlakePath = strings.TrimSpace(p.input.Value())
		if st.FlakePath != "" {
			st.FlakesEnabled = true
		}
		return Pop()
	}
	return Continue()
}

func (p *FlakePage) View(st *selection.State, width int) string {
	if !p.seeded {
		p.input.SetValue(st.FlakePath)
		p.seeded = true
	}

	var b strings.Builder
	b.WriteString(RenderTitle("Install from a flake"))
	b.WriteString("\n")
	b.WriteString(p.note.View(width))
	b.WriteString("\n\n")
	b.WriteString(p.input.View(width))
	return b.String()
}
