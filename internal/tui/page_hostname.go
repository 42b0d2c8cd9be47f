package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kvernberg/nixwright/internal/selection"
	"github.com/kvernberg/nixwright/internal/tui/widget"
)

// HostnamePage edits the machine hostname.
type HostnamePage struct {
	input  *widget.TextInput
	errMsg string
	seeded bool
}

// NewHostnamePage creates the hostname editor.
func NewHostnamePage() *HostnamePage {
	in := widget.NewTextInput("Hostname:", "nixos")
	in.Focus()
	return &HostnamePage{input: in}
}

func (p *HostnamePage) Title() string { return "Hostname" }

func (p *HostnamePage) Help() string { return "enter save · esc back" }

func (p *HostnamePage) CapturingText() bool { return true }

// validHostname accepts RFC 1123 labels joined by dots.
func validHostname(s string) bool {
	if s == "" || len(s) > 253 {
		return false
	}
	for _, label := range strings.Split(s, ".") {
		if label == "" || len(label) > 63 {
			return false
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for _, c := range label {
			switch {
			case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-':
			default:
				return false
			}
		}
	}
	return true
}

func (p *HostnamePage) HandleKey(st *selection.State, msg tea.KeyMsg) Signal {
	if msg.Type == tea.KeyEsc {
		return Pop()
	}

	if p.input.HandleKey(msg) == widget.Committed {
		name := strings.TrimSpace(p.input.Value())
		if !validHostname(name) {
			p.errMsg = "hostname must be letters, digits and dashes"
			return Continue()
		}
		st.Hostname = name
		return Pop()
	}
	p.errMsg = ""
	return Continue()
}

func (p *HostnamePage) View(st *selection.State, width int) string {
	if !p.seeded {
		p.input.SetValue(st.Hostname)
		p.seeded = true
	}

	var b strings.Builder
	b.WriteString(RenderTitle("Name this machine"))
	b.WriteString("\n")
	b.WriteString(p.input.View(width))
	if p.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(RenderError(p.errMsg))
	}
	return b.String()
}
