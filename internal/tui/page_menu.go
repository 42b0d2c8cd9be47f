package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kvernberg/nixwright/internal/selection"
	"github.com/kvernberg/nixwright/internal/tui/widget"
)

// menuEntry names one wizard section and knows how to open it and whether
// the section already has everything it needs.
type menuEntry struct {
	label string
	open  func() Page
	done  func(st *selection.State) bool
}

// MenuPage is the root page: a list of wizard sections plus the final
// review entry. Sections can be visited in any order and revisited.
type MenuPage struct {
	list        *widget.SelectList
	quitConfirm *widget.Modal
	entries     []menuEntry
}

// NewMenuPage creates the root menu.
func NewMenuPage() *MenuPage {
	entries := []menuEntry{
		{
			label: "Hostname",
			open:  func() Page { return NewHostnamePage() },
			done:  func(st *selection.State) bool { return st.Hostname != "" },
		},
		{
			label: "Locale & keyboard",
			open:  func() Page { return NewLocalizationPage() },
			done:  func(st *selection.State) bool { return st.Locale != "" && st.KeyboardLayout != "" },
		},
		{
			label: "Drives & partitions",
			open:  func() Page { return NewDrivesPage() },
			done: func(st *selection.State) bool {
				if len(st.Drives) == 0 {
					return false
				}
				for _, d := range st.Drives {
					if len(d.Partitions) == 0 {
						return false
					}
				}
				return true
			},
		},
		{
			label: "Users & passwords",
			open:  func() Page { return NewUsersPage() },
			done: func(st *selection.State) bool {
				return st.RootPasswordHash != "" && (len(st.Users) > 0 || st.RootOnly)
			},
		},
		{
			label: "Desktop environment",
			open:  func() Page { return NewDesktopPage() },
			done:  func(st *selection.State) bool { return st.Desktop != "" },
		},
		{
			label: "System settings",
			open:  func() Page { return NewSettingsPage() },
			done:  func(st *selection.State) bool { return st.Bootloader != "" },
		},
		{
			label: "Extra packages",
			open:  func() Page { return NewPackagesPage() },
			done:  func(st *selection.State) bool { return true },
		},
		{
			label: "Flake",
			open:  func() Page { return NewFlakePage() },
			done:  func(st *selection.State) bool { return true },
		},
		{
			label: "Review & install",
			open:  func() Page { return NewSummaryPage() },
			done:  func(st *selection.State) bool { return st.HasAllRequirements() },
		},
	}

	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.label
	}

	list := widget.NewSelectList("", labels, len(entries)).Wrapping()
	list.Focus()

	return &MenuPage{
		list:        list,
		quitConfirm: widget.NewModal("Quit", "Abort the installer? Nothing has been written.", "Stay", "Quit"),
		entries:     entries,
	}
}

func (p *MenuPage) Title() string { return "Setup" }

func (p *MenuPage) Help() string {
	return "enter open section · q quit"
}

func (p *MenuPage) HandleKey(st *selection.State, msg tea.KeyMsg) Signal {
	if p.quitConfirm.Visible() {
		if p.quitConfirm.HandleKey(msg) == widget.Committed && p.quitConfirm.Choice() == "Quit" {
			return Quit()
		}
		return Continue()
	}

	switch msg.String() {
	case "q", "esc":
		p.quitConfirm.Show()
		return Continue()
	}

	if p.list.HandleKey(msg) == widget.Committed {
		return Push(p.entries[p.list.Index()].open())
	}
	return Continue()
}

func (p *MenuPage) View(st *selection.State, width int) string {
	var b strings.Builder
	b.WriteString(RenderTitle("Configure your installation"))
	b.WriteString("\n")

	labels := make([]string, len(p.entries))
	for i, e := range p.entries {
		mark := "•"
		if e.done(st) {
			mark = SuccessStyle.Render("✓")
		}
		labels[i] = fmt.Sprintf("%s %s", mark, e.label)
	}
	p.list.SetItems(labels)

	b.WriteString(p.list.View(width))
	b.WriteString("\n\n")

	if missing := st.MissingRequirements(); len(missing) > 0 {
		b.WriteString(SubtitleStyle.Render("Still needed: " + strings.Join(missing, ", ")))
	} else {
		b.WriteString(SuccessStyle.Render("All requirements met. Review & install when ready."))
	}

	if p.quitConfirm.Visible() {
		b.WriteString("\n\n")
		b.WriteString(p.quitConfirm.View(width))
	}
	return b.String()
}
