package widget

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestMultiSelectToggle(t *testing.T) {
	m := NewMultiSelect("", []string{"vim", "git", "htop"}, 10)
	m.Focus()

	m.HandleKey(key(" "))
	m.HandleKey(key("down"))
	m.HandleKey(key("down"))
	m.HandleKey(key(" "))

	want := []string{"vim", "htop"}
	if got := m.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	// Toggling again clears the entry.
	m.HandleKey(key(" "))
	want = []string{"vim"}
	if got := m.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v after untoggle, got %v", want, got)
	}
}

func TestMultiSelectValuesKeepListOrder(t *testing.T) {
	m := NewMultiSelect("", []string{"a", "b", "c"}, 10)
	m.SetChecked([]string{"c", "a"})

	want := []string{"a", "c"}
	if got := m.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected list order %v, got %v", want, got)
	}
}

func TestMultiSelectCommit(t *testing.T) {
	m := NewMultiSelect("", []string{"a"}, 10)
	m.Focus()
	if out := m.HandleKey(key("enter")); out != Committed {
		t.Errorf("Expected Committed, got %v", out)
	}
}

func TestTextInputTyping(t *testing.T) {
	in := NewTextInput("Hostname", "")
	in.Focus()

	for _, r := range "nixbox" {
		out := in.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		if out != Consumed {
			t.Fatalf("Expected Consumed for rune %q, got %v", r, out)
		}
	}
	if in.Value() != "nixbox" {
		t.Errorf("Expected value nixbox, got %q", in.Value())
	}

	if out := in.HandleKey(key("enter")); out != Committed {
		t.Errorf("Expected Committed on enter, got %v", out)
	}
}

func TestTextInputIgnoresNavigationKeys(t *testing.T) {
	in := NewTextInput("Hostname", "")
	in.Focus()
	in.SetValue("keep")

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyTab},
		{Type: tea.KeyUp},
		{Type: tea.KeyDown},
	} {
		if out := in.HandleKey(msg); out != Ignored {
			t.Errorf("Expected Ignored for %s, got %v", msg.String(), out)
		}
	}
	if in.Value() != "keep" {
		t.Errorf("Navigation keys changed the value to %q", in.Value())
	}
}

func TestButtonRowMovement(t *testing.T) {
	b := NewButtonRow("Back", "Install")
	b.Focus()

	if b.Label() != "Back" {
		t.Fatalf("Expected initial button Back, got %s", b.Label())
	}
	b.HandleKey(key("right"))
	if b.Label() != "Install" {
		t.Errorf("Expected Install after right, got %s", b.Label())
	}
	b.HandleKey(key("right"))
	if b.Index() != 1 {
		t.Errorf("Expected clamp at last button, got index %d", b.Index())
	}

	if out := b.HandleKey(key("enter")); out != Committed {
		t.Errorf("Expected Committed, got %v", out)
	}
}

func TestCheckboxToggle(t *testing.T) {
	c := NewCheckbox("Enable swap", true)
	c.Focus()

	if out := c.HandleKey(key(" ")); out != Consumed {
		t.Errorf("Expected Consumed on space, got %v", out)
	}
	if c.Checked() {
		t.Error("Expected unchecked after toggle")
	}

	if out := c.HandleKey(key("enter")); out != Committed {
		t.Errorf("Expected Committed on enter, got %v", out)
	}
	if !c.Checked() {
		t.Error("Expected checked after enter toggle")
	}
}

func TestModalCapturesInput(t *testing.T) {
	m := NewModal("Confirm", "Erase the disk?", "Cancel", "Erase")
	m.Show()

	if out := m.HandleKey(key("x")); out != Consumed {
		t.Errorf("Expected modal to consume stray keys, got %v", out)
	}

	m.HandleKey(key("right"))
	if out := m.HandleKey(key("enter")); out != Committed {
		t.Errorf("Expected Committed, got %v", out)
	}
	if m.Visible() {
		t.Error("Expected modal hidden after commit")
	}
	if m.Choice() != "Erase" {
		t.Errorf("Expected choice Erase, got %s", m.Choice())
	}
}

func TestModalDismissOnEsc(t *testing.T) {
	m := NewModal("Help", "body", "Close")
	m.Show()

	if out := m.HandleKey(key("esc")); out != Consumed {
		t.Errorf("Expected Consumed on esc, got %v", out)
	}
	if m.Visible() {
		t.Error("Expected modal hidden after esc")
	}
}

func TestHiddenModalIgnoresInput(t *testing.T) {
	m := NewModal("Help", "body", "Close")
	if out := m.HandleKey(key("enter")); out != Ignored {
		t.Errorf("Expected Ignored while hidden, got %v", out)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		w    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"toolongtext", 5, "tool…"},
		{"x", 0, ""},
		{"ab", 1, "…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.w); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.w, got, tt.want)
		}
	}
}
