package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kvernberg/nixwright/internal/selection"
	"github.com/kvernberg/nixwright/internal/tui/widget"
)

// SettingsPage edits the single-choice system settings. Each row shows its
// current value; Enter cycles the choice to the next option or flips the
// boolean rows.
type SettingsPage struct {
	list *widget.SelectList
}

// NewSettingsPage creates the system settings page.
func NewSettingsPage() *SettingsPage {
	list := widget.NewSelectList("", nil, 8)
	list.Focus()
	return &SettingsPage{list: list}
}

func (p *SettingsPage) Title() string { return "System Settings" }

func (p *SettingsPage) Help() string { return "enter cycle value · esc back" }

// cycle returns the entry after current in options, wrapping around.
func cycle(options []string, current string) string {
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (p *SettingsPage) rows(st *selection.State) []string {
	return []string{
		fmt.Sprintf("Bootloader       %s", st.Bootloader),
		fmt.Sprintf("Kernel           %s", st.Kernel),
		fmt.Sprintf("Network backend  %s", st.NetworkBackend),
		fmt.Sprintf("Audio backend    %s", st.AudioBackend),
		fmt.Sprintf("Profile          %s", st.Profile),
		fmt.Sprintf("Swap             %s", onOff(st.SwapEnabled)),
		fmt.Sprintf("Nix flakes       %s", onOff(st.FlakesEnabled)),
	}
}

func (p *SettingsPage) HandleKey(st *selection.State, msg tea.KeyMsg) Signal {
	if msg.Type == tea.KeyEsc {
		return Pop()
	}

	if p.list.HandleKey(msg) != widget.Committed {
		return Continue()
	}

	switch p.list.Index() {
	case 0:
		st.Bootloader = cycle(selection.Bootloaders, st.Bootloader)
	case 1:
		st.Kernel = cycle(selection.Kernels, st.Kernel)
	case 2:
		st.NetworkBackend = cycle(selection.NetworkBackends, st.NetworkBackend)
	case 3:
		st.AudioBackend = cycle(selection.AudioBackends, st.AudioBackend)
	case 4:
		st.Profile = cycle(selection.Profiles, st.Profile)
	case 5:
		st.SwapEnabled = !st.SwapEnabled
	case 6:
		st.FlakesEnabled = !st.FlakesEnabled
	}
	return Continue()
}

func (p *SettingsPage) View(st *selection.State, width int) string {
	p.list.SetItems(p.rows(st))

	var b strings.Builder
	b.WriteString(RenderTitle("System settings"))
	b.WriteString("\n")
	b.WriteString(p.list.View(width))
	b.WriteString("\n\n")
	b.WriteString(SubtitleStyle.Render("Enter cycles a setting through its choices."))
	return b.String()
}
