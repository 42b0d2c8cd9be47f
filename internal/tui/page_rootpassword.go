package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kvernberg/nixwright/internal/hashpw"
	"github.com/kvernberg/nixwright/internal/selection"
	"github.com/kvernberg/nixwright/internal/tui/widget"
)

// RootPasswordPage sets the root password. Only the hash is stored.
type RootPasswordPage struct {
	pass    *widget.TextInput
	confirm *widget.TextInput
	focus   int
	errMsg  string
}

// NewRootPasswordPage creates the root password editor.
func NewRootPasswordPage() *RootPasswordPage {
	p := &RootPasswordPage{
		pass:    widget.NewTextInput("Password:", "").Masked(),
		confirm: widget.NewTextInput("Confirm:", "").Masked(),
	}
	p.pass.Focus()
	return p
}

func (p *RootPasswordPage) Title() string { return "Root Password" }

func (p *RootPasswordPage) Help() string { return "tab next field · enter save · esc cancel" }

func (p *RootPasswordPage) CapturingText() bool { return true }

func (p *RootPasswordPage) cycleFocus() {
	if p.focus == 0 {
		p.pass.Blur()
		p.confirm.Focus()
		p.focus = 1
	} else {
		p.confirm.Blur()
		p.pass.Focus()
		p.focus = 0
	}
}

func (p *RootPasswordPage) HandleKey(st *selection.State, msg tea.KeyMsg) Signal {
	switch msg.Type {
	case tea.KeyEsc:
		return Pop()
	case tea.KeyTab, tea.KeyShiftTab:
		p.cycleFocus()
		return Continue()
	}

	in := p.pass
	if p.focus == 1 {
		in = p.confirm
	}
	if in.HandleKey(msg) != widget.Committed {
		return Continue()
	}

	if p.focus == 0 {
		p.cycleFocus()
		return Continue()
	}

	if p.pass.Value() != p.confirm.Value() {
		p.errMsg = "passwords do not match"
		return Continue()
	}
	hash, err := hashpw.Hash(p.pass.Value())
	if err != nil {
		p.errMsg = err.Error()
		return Continue()
	}
	st.RootPasswordHash = hash
	return Pop()
}

func (p *RootPasswordPage) View(st *selection.State, width int) string {
	var b strings.Builder
	b.WriteString(RenderTitle("Set the root password"))
	b.WriteString("\n")
	b.WriteString(p.pass.View(width))
	b.WriteString("\n")
	b.WriteString(p.confirm.View(width))
	if p.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(RenderError(p.errMsg))
	}
	return b.String()
}
