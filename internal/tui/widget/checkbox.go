package widget

import tea "github.com/charmbracelet/bubbletea"

// Checkbox is a single labeled on/off toggle.
type Checkbox struct {
	label   string
	checked bool
	focused bool
}

// NewCheckbox creates a checkbox with an initial value.
func NewCheckbox(label string, checked bool) *Checkbox {
	return &Checkbox{label: label, checked: checked}
}

// Checked returns the current value.
func (c *Checkbox) Checked() bool { return c.checked }

// SetChecked sets the value.
func (c *Checkbox) SetChecked(v bool) { c.checked = v }

func (c *Checkbox) Focus()        { c.focused = true }
func (c *Checkbox) Blur()         { c.focused = false }
func (c *Checkbox) Focused() bool { return c.focused }

func (c *Checkbox) HandleKey(msg tea.KeyMsg) Outcome {
	if !c.focused {
		return Ignored
	}
	switch msg.String() {
	case " ":
		c.checked = !c.checked
		return Consumed
	case "enter":
		c.checked = !c.checked
		return Committed
	}
	return Ignored
}

func (c *Checkbox) View(width int) string {
	mark := "[ ]"
	if c.checked {
		mark = "[x]"
	}
	line := truncate(mark+" "+c.label, width-2)
	if c.focused {
		return selectedItemStyle.Render(line)
	}
	return itemStyle.Render(line)
}
