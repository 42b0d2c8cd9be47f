package widget

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestSelectListClamps(t *testing.T) {
	l := NewSelectList("", []string{"a", "b", "c"}, 10)
	l.Focus()

	l.HandleKey(key("up"))
	if l.Index() != 0 {
		t.Errorf("Expected clamp at top, got index %d", l.Index())
	}

	l.HandleKey(key("down"))
	l.HandleKey(key("down"))
	l.HandleKey(key("down"))
	if l.Index() != 2 {
		t.Errorf("Expected clamp at bottom, got index %d", l.Index())
	}
}

func TestSelectListWraps(t *testing.T) {
	l := NewSelectList("", []string{"a", "b", "c"}, 10).Wrapping()
	l.Focus()

	l.HandleKey(key("up"))
	if l.Index() != 2 {
		t.Errorf("Expected wrap to last item, got index %d", l.Index())
	}
	l.HandleKey(key("down"))
	if l.Index() != 0 {
		t.Errorf("Expected wrap to first item, got index %d", l.Index())
	}
}

func TestSelectListCommit(t *testing.T) {
	l := NewSelectList("", []string{"a", "b"}, 10)
	l.Focus()
	l.HandleKey(key("down"))

	if out := l.HandleKey(key("enter")); out != Committed {
		t.Errorf("Expected Committed, got %v", out)
	}
	if l.Selected() != "b" {
		t.Errorf("Expected selection b, got %s", l.Selected())
	}
}

func TestSelectListIgnoresWhenBlurred(t *testing.T) {
	l := NewSelectList("", []string{"a", "b"}, 10)

	if out := l.HandleKey(key("down")); out != Ignored {
		t.Errorf("Expected Ignored when blurred, got %v", out)
	}
	if l.Index() != 0 {
		t.Error("Blurred list moved its cursor")
	}
}

func TestSelectListIgnoresUnknownKeys(t *testing.T) {
	l := NewSelectList("", []string{"a"}, 10)
	l.Focus()

	if out := l.HandleKey(key("x")); out != Ignored {
		t.Errorf("Expected Ignored for unhandled key, got %v", out)
	}
}

func TestSelectListEmptyNeverCommits(t *testing.T) {
	l := NewSelectList("", nil, 10)
	l.Focus()

	if out := l.HandleKey(key("enter")); out == Committed {
		t.Error("Empty list must not commit")
	}
	if l.Selected() != "" {
		t.Errorf("Expected empty selection, got %q", l.Selected())
	}
}

func TestSelectListScrollWindow(t *testing.T) {
	l := NewSelectList("", []string{"a", "b", "c", "d", "e"}, 2)
	l.Focus()

	for i := 0; i < 4; i++ {
		l.HandleKey(key("down"))
	}
	if l.Index() != 4 {
		t.Fatalf("Expected index 4, got %d", l.Index())
	}
	if l.offset != 3 {
		t.Errorf("Expected scroll offset 3, got %d", l.offset)
	}
}
