package widget

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is a confirm/cancel overlay. While visible it captures every key
// event; dismissing it returns control to whatever is underneath.
type Modal struct {
	title   string
	body    string
	buttons *ButtonRow
	visible bool
}

// NewModal creates a hidden modal with the given buttons (first button is
// highlighted when shown).
func NewModal(title, body string, buttons ...string) *Modal {
	row := NewButtonRow(buttons...)
	row.Focus()
	return &Modal{title: title, body: body, buttons: row}
}

// Show makes the modal visible with the first button highlighted.
func (m *Modal) Show() {
	m.buttons.index = 0
	m.visible = true
}

// Hide dismisses the modal.
func (m *Modal) Hide() { m.visible = false }

// Visible reports whether the modal currently captures input.
func (m *Modal) Visible() bool { return m.visible }

// Choice returns the highlighted button label.
func (m *Modal) Choice() string { return m.buttons.Label() }

// SetBody replaces the modal text.
func (m *Modal) SetBody(body string) { m.body = body }

// HandleKey captures all input while visible. Esc dismisses (Consumed);
// Enter commits the highlighted choice; everything else moves the buttons.
func (m *Modal) HandleKey(msg tea.KeyMsg) Outcome {
	if !m.visible {
		return Ignored
	}
	if msg.Type == tea.KeyEsc {
		m.visible = false
		return Consumed
	}
	if out := m.buttons.HandleKey(msg); out == Committed {
		m.visible = false
		return Committed
	}
	// Unrecognized keys are swallowed: nothing underneath may react while
	// the modal is up.
	return Consumed
}

func (m *Modal) View(width int) string {
	boxWidth := min(width-4, 60)
	inner := lipgloss.JoinVertical(lipgloss.Left,
		modalTitleStyle.Render(m.title),
		"",
		lipgloss.NewStyle().Width(boxWidth-6).Render(m.body),
		"",
		m.buttons.View(boxWidth-6),
	)
	return modalBoxStyle.Width(boxWidth).Render(inner)
}

// Overlay centers the modal over a background region of the given size.
func (m *Modal) Overlay(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		m.View(width),
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("240")),
	)
}
