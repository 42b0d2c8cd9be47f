package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kvernberg/nixwright/internal/selection"
	"github.com/kvernberg/nixwright/internal/tui/widget"
)

// SummaryPage is the final review: every selection at a glance, the list of
// unmet requirements if any, and the install confirmation.
type SummaryPage struct {
	buttons *widget.ButtonRow
	confirm *widget.Modal
}

// NewSummaryPage creates the review page.
func NewSummaryPage() *SummaryPage {
	buttons := widget.NewButtonRow("Back", "Preview", "Install")
	buttons.Focus()
	return &SummaryPage{
		buttons: buttons,
		confirm: widget.NewModal("Install",
			"Write the configuration? The selected drives will be erased when it is applied.",
			"Cancel", "Install"),
	}
}

func (p *SummaryPage) Title() string { return "Review" }

func (p *SummaryPage) Help() string { return "←/→ choose · enter confirm · preview shows the files · esc back" }

func (p *SummaryPage) HandleKey(st *selection.State, msg tea.KeyMsg) Signal {
	if p.confirm.Visible() {
		if p.confirm.HandleKey(msg) == widget.Committed && p.confirm.Choice() == "Install" {
			return Finish()
		}
		return Continue()
	}

	if msg.Type == tea.KeyEsc {
		return Pop()
	}

	if p.buttons.HandleKey(msg) != widget.Committed {
		return Continue()
	}
	if p.buttons.Label() == "Back" {
		return Pop()
	}
	if p.buttons.Label() == "Preview" {
		return Push(NewPreviewPage(st))
	}
	if !st.HasAllRequirements() {
		// Install stays inert until the checklist clears.
		return Continue()
	}
	p.confirm.Show()
	return Continue()
}

func summarizeDrives(st *selection.State) string {
	if len(st.Drives) == 0 {
		return "none"
	}
	parts := make([]string, len(st.Drives))
	for i, d := range st.Drives {
		parts[i] = fmt.Sprintf("%s (%s, %d partitions)", d.Device, d.Scheme, len(d.Partitions))
	}
	return strings.Join(parts, ", ")
}

func summarizeUsers(st *selection.State) string {
	if len(st.Users) == 0 {
		if st.RootOnly {
			return "root only"
		}
		return "none"
	}
	names := make([]string, len(st.Users))
	for i, u := range st.Users {
		names[i] = u.Name
	}
	return strings.Join(names, ", ")
}

func (p *SummaryPage) View(st *selection.State, width int) string {
	var b strings.Builder
	b.WriteString(RenderTitle("Review your installation"))
	b.WriteString("\n")

	rows := []struct{ k, v string }{
		{"Hostname:", st.Hostname},
		{"Timezone:", st.Timezone},
		{"Locale:", st.Locale + " (" + st.KeyboardLayout + ")"},
		{"Drives:", summarizeDrives(st)},
		{"Users:", summarizeUsers(st)},
		{"Desktop:", st.Desktop + " / " + st.Greeter},
		{"Bootloader:", st.Bootloader},
		{"Kernel:", st.Kernel},
		{"Network:", st.NetworkBackend},
		{"Audio:", st.AudioBackend},
		{"Profile:", st.Profile},
		{"Swap:", onOff(st.SwapEnabled)},
		{"Flakes:", onOff(st.FlakesEnabled)},
	}
	if st.FlakePath != "" {
		rows = append(rows, struct{ k, v string }{"Flake:", st.FlakePath})
	}
	if len(st.SystemPackages) > 0 {
		rows = append(rows, struct{ k, v string }{"Packages:", strings.Join(st.SystemPackages, " ")})
	}
	for _, r := range rows {
		b.WriteString(RenderKeyValue(r.k, r.v))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if missing := st.MissingRequirements(); len(missing) > 0 {
		b.WriteString(ErrorStyle.Render("Cannot install yet:"))
		for _, m := range missing {
			b.WriteString("\n")
			b.WriteString(WarningStyle.Render("  ✗ " + m))
		}
	} else {
		b.WriteString(SuccessStyle.Render("✓ All requirements met"))
	}
	b.WriteString("\n\n")
	b.WriteString(p.buttons.View(width))

	if p.confirm.Visible() {
		b.WriteString("\n\n")
		b.WriteString(p.confirm.View(width))
	}
	return b.String()
}
