package widget

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextInput is a labeled single-line text field with cursor editing,
// built on bubbles/textinput.
type TextInput struct {
	label   string
	input   textinput.Model
	focused bool
}

// NewTextInput creates a text field with a label and placeholder.
func NewTextInput(label, placeholder string) *TextInput {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 128
	return &TextInput{label: label, input: in}
}

// Masked switches the field to password echo and returns the widget for
// chained construction.
func (t *TextInput) Masked() *TextInput {
	t.input.EchoMode = textinput.EchoPassword
	t.input.EchoCharacter = '•'
	return t
}

// Value returns the current text.
func (t *TextInput) Value() string { return t.input.Value() }

// SetValue replaces the current text and moves the cursor to the end.
func (t *TextInput) SetValue(v string) {
	t.input.SetValue(v)
	t.input.CursorEnd()
}

// Reset clears the field.
func (t *TextInput) Reset() { t.input.Reset() }

func (t *TextInput) Focus() {
	t.focused = true
	t.input.Focus()
}

func (t *TextInput) Blur() {
	t.focused = false
	t.input.Blur()
}

func (t *TextInput) Focused() bool { return t.focused }

// HandleKey feeds the event to the underlying field. Enter commits; keys a
// page needs for navigation (esc, tab) are ignored so the page can act.
func (t *TextInput) HandleKey(msg tea.KeyMsg) Outcome {
	if !t.focused {
		return Ignored
	}
	switch msg.Type {
	case tea.KeyEnter:
		return Committed
	case tea.KeyEsc, tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		return Ignored
	}
	t.input, _ = t.input.Update(msg)
	return Consumed
}

func (t *TextInput) View(width int) string {
	labelStyle := lipgloss.NewStyle().Bold(t.focused)
	t.input.Width = max(10, width-len(t.label)-4)
	return labelStyle.Render(t.label) + " " + t.input.View()
}
