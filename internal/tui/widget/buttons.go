package widget

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ButtonRow is a horizontal row of buttons. Left/right moves between them,
// Enter commits the highlighted one.
type ButtonRow struct {
	labels  []string
	index   int
	focused bool
}

// NewButtonRow creates a button row from the given labels.
func NewButtonRow(labels ...string) *ButtonRow {
	return &ButtonRow{labels: labels}
}

// Index returns the highlighted button position.
func (b *ButtonRow) Index() int { return b.index }

// Label returns the highlighted button's text.
func (b *ButtonRow) Label() string {
	if len(b.labels) == 0 {
		return ""
	}
	return b.labels[b.index]
}

func (b *ButtonRow) Focus()        { b.focused = true }
func (b *ButtonRow) Blur()         { b.focused = false }
func (b *ButtonRow) Focused() bool { return b.focused }

func (b *ButtonRow) HandleKey(msg tea.KeyMsg) Outcome {
	if !b.focused {
		return Ignored
	}
	switch msg.String() {
	case "left", "h":
		if b.index > 0 {
			b.index--
		}
		return Consumed
	case "right", "l":
		if b.index < len(b.labels)-1 {
			b.index++
		}
		return Consumed
	case "enter":
		return Committed
	}
	return Ignored
}

func (b *ButtonRow) View(width int) string {
	parts := make([]string, len(b.labels))
	for i, label := range b.labels {
		if i == b.index && b.focused {
			parts[i] = activeButtonStyle.Render("[ " + label + " ]")
		} else {
			parts[i] = buttonStyle.Render("[ " + label + " ]")
		}
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(parts, "  "))
}
