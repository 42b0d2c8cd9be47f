package widget

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// SelectList is a single-select list with a movable cursor. Edge behavior is
// configurable: wrapping lists jump from last to first, clamping lists stop.
type SelectList struct {
	title   string
	items   []string
	index   int
	offset  int
	height  int
	wrap    bool
	focused bool
}

// NewSelectList creates a list showing at most height rows at a time.
func NewSelectList(title string, items []string, height int) *SelectList {
	if height < 1 {
		height = 1
	}
	return &SelectList{title: title, items: items, height: height}
}

// Wrapping makes cursor movement wrap at the edges and returns the list for
// chained construction.
func (l *SelectList) Wrapping() *SelectList {
	l.wrap = true
	return l
}

// SetItems replaces the list content, clamping the cursor.
func (l *SelectList) SetItems(items []string) {
	l.items = items
	if l.index >= len(items) {
		l.index = max(0, len(items)-1)
	}
	l.scrollIntoView()
}

// Index returns the cursor position.
func (l *SelectList) Index() int { return l.index }

// Selected returns the item under the cursor, or "" for an empty list.
func (l *SelectList) Selected() string {
	if len(l.items) == 0 {
		return ""
	}
	return l.items[l.index]
}

// Select moves the cursor to the first item equal to v, if present.
func (l *SelectList) Select(v string) {
	for i, item := range l.items {
		if item == v {
			l.index = i
			l.scrollIntoView()
			return
		}
	}
}

// Len returns the item count.
func (l *SelectList) Len() int { return len(l.items) }

func (l *SelectList) Focus()        { l.focused = true }
func (l *SelectList) Blur()         { l.focused = false }
func (l *SelectList) Focused() bool { return l.focused }

func (l *SelectList) move(delta int) {
	if len(l.items) == 0 {
		return
	}
	next := l.index + delta
	if l.wrap {
		next = (next + len(l.items)) % len(l.items)
	} else {
		if next < 0 {
			next = 0
		}
		if next >= len(l.items) {
			next = len(l.items) - 1
		}
	}
	l.index = next
	l.scrollIntoView()
}

func (l *SelectList) scrollIntoView() {
	if l.index < l.offset {
		l.offset = l.index
	}
	if l.index >= l.offset+l.height {
		l.offset = l.index - l.height + 1
	}
}

func (l *SelectList) HandleKey(msg tea.KeyMsg) Outcome {
	if !l.focused {
		return Ignored
	}
	switch msg.String() {
	case "up", "k":
		l.move(-1)
		return Consumed
	case "down", "j":
		l.move(1)
		return Consumed
	case "home":
		l.index = 0
		l.scrollIntoView()
		return Consumed
	case "end":
		if len(l.items) > 0 {
			l.index = len(l.items) - 1
			l.scrollIntoView()
		}
		return Consumed
	case "enter":
		if len(l.items) == 0 {
			return Consumed
		}
		return Committed
	}
	return Ignored
}

func (l *SelectList) View(width int) string {
	var b strings.Builder
	if l.title != "" {
		b.WriteString(subtitleStyle.Render(l.title))
		b.WriteString("\n")
	}

	end := min(l.offset+l.height, len(l.items))
	for i := l.offset; i < end; i++ {
		line := truncate(l.items[i], width-4)
		if i == l.index && l.focused {
			b.WriteString(selectedItemStyle.Render("→ " + line))
		} else {
			b.WriteString(itemStyle.Render("  " + line))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if len(l.items) == 0 {
		b.WriteString(itemStyle.Render("  (empty)"))
	}
	return b.String()
}

// truncate cuts s to at most w runes, appending an ellipsis when cut.
func truncate(s string, w int) string {
	if w < 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= w {
		return s
	}
	if w == 1 {
		return "…"
	}
	return string(runes[:w-1]) + "…"
}
