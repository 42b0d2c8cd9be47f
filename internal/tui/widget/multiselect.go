package widget

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// MultiSelect is a list where any number of items can be toggled. Space
// toggles the item under the cursor; Enter commits the whole set.
type MultiSelect struct {
	title   string
	items   []string
	checked map[int]bool
	index   int
	offset  int
	height  int
	focused bool
}

// NewMultiSelect creates a toggle list showing at most height rows.
func NewMultiSelect(title string, items []string, height int) *MultiSelect {
	if height < 1 {
		height = 1
	}
	return &MultiSelect{
		title:   title,
		items:   items,
		checked: make(map[int]bool),
		height:  height,
	}
}

// SetChecked pre-selects every item present in values.
func (m *MultiSelect) SetChecked(values []string) {
	set := map[string]bool{}
	for _, v := range values {
		set[v] = true
	}
	for i, item := range m.items {
		m.checked[i] = set[item]
	}
}

// Values returns the checked items in list order.
func (m *MultiSelect) Values() []string {
	var out []string
	for i, item := range m.items {
		if m.checked[i] {
			out = append(out, item)
		}
	}
	return out
}

func (m *MultiSelect) Focus()        { m.focused = true }
func (m *MultiSelect) Blur()         { m.focused = false }
func (m *MultiSelect) Focused() bool { return m.focused }

func (m *MultiSelect) move(delta int) {
	if len(m.items) == 0 {
		return
	}
	m.index += delta
	if m.index < 0 {
		m.index = 0
	}
	if m.index >= len(m.items) {
		m.index = len(m.items) - 1
	}
	if m.index < m.offset {
		m.offset = m.index
	}
	if m.index >= m.offset+m.height {
		m.offset = m.index - m.height + 1
	}
}

func (m *MultiSelect) HandleKey(msg tea.KeyMsg) Outcome {
	if !m.focused {
		return Ignored
	}
	switch msg.String() {
	case "up", "k":
		m.move(-1)
		return Consumed
	case "down", "j":
		m.move(1)
		return Consumed
	case " ":
		if len(m.items) > 0 {
			m.checked[m.index] = !m.checked[m.index]
		}
		return Consumed
	case "enter":
		return Committed
	}
	return Ignored
}

func (m *MultiSelect) View(width int) string {
	var b strings.Builder
	if m.title != "" {
		b.WriteString(subtitleStyle.Render(m.title))
		b.WriteString("\n")
	}

	end := min(m.offset+m.height, len(m.items))
	for i := m.offset; i < end; i++ {
		mark := "[ ]"
		if m.checked[i] {
			mark = "[x]"
		}
		line := truncate(mark+" "+m.items[i], width-4)
		if i == m.index && m.focused {
			b.WriteString(selectedItemStyle.Render("→ " + line))
		} else {
			b.WriteString(itemStyle.Render("  " + line))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
