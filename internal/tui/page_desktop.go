package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kvernberg/nixwright/internal/selection"
	"github.com/kvernberg/nixwright/internal/tui/widget"
)

// DesktopPage picks the desktop environment and its greeter.
type DesktopPage struct {
	desktop *widget.SelectList
	greeter *widget.SelectList
	focus   int
	seeded  bool
}

// NewDesktopPage creates the desktop picker.
func NewDesktopPage() *DesktopPage {
	p := &DesktopPage{
		desktop: widget.NewSelectList("Desktop environment", selection.DesktopEnvironments, 6),
		greeter: widget.NewSelectList("Greeter", selection.Greeters, 4),
	}
	p.desktop.Focus()
	return p
}

func (p *DesktopPage) Title() string { return "Desktop" }

func (p *DesktopPage) Help() string { return "tab next field · enter apply · esc back" }

func (p *DesktopPage) cycleFocus() {
	if p.focus == 0 {
		p.desktop.Blur()
		p.greeter.Focus()
		p.focus = 1
	} else {
		p.greeter.Blur()
		p.desktop.Focus()
		p.focus = 0
	}
}

// defaultGreeter pairs each desktop with its usual display manager.
func defaultGreeter(desktop string) string {
	switch desktop {
	case "gnome":
		return "gdm"
	case "plasma", "hyprland":
		return "sddm"
	case "xfce", "cinnamon":
		return "lightdm"
	}
	return "none"
}

func (p *DesktopPage) HandleKey(st *selection.State, msg tea.KeyMsg) Signal {
	switch msg.Type {
	case tea.KeyEsc:
		return Pop()
	case tea.KeyTab, tea.KeyShiftTab:
		p.cycleFocus()
		return Continue()
	}

	if p.focus == 0 {
		if p.desktop.HandleKey(msg) == widget.Committed {
			st.Desktop = p.desktop.Selected()
			st.Greeter = defaultGreeter(st.Desktop)
			p.greeter.Select(st.Greeter)
			p.cycleFocus()
		}
		return Continue()
	}

	if p.greeter.HandleKey(msg) == widget.Committed {
		st.Greeter = p.greeter.Selected()
	}
	return Continue()
}

func (p *DesktopPage) View(st *selection.State, width int) string {
	if !p.seeded {
		p.desktop.Select(st.Desktop)
		p.greeter.Select(st.Greeter)
		p.seeded = true
	}

	var b strings.Builder
	b.WriteString(RenderTitle("Desktop environment"))
	b.WriteString("\n")
	b.WriteString(RenderKeyValue("Desktop:", st.Desktop))
	b.WriteString("\n")
	b.WriteString(RenderKeyValue("Greeter:", st.Greeter))
	b.WriteString("\n\n")
	b.WriteString(p.desktop.View(width))
	b.WriteString("\n\n")
	b.WriteString(p.greeter.View(width))
	return b.String()
}
