package widget

import tea "github.com/charmbracelet/bubbletea"

// Outcome is what a widget reports after seeing a key event.
type Outcome int

const (
	// Ignored means the widget did not handle the event; the owning page
	// should interpret it (e.g. page navigation keys).
	Ignored Outcome = iota
	// Consumed means the widget handled the event fully.
	Consumed
	// Committed means the widget completed a value change, e.g. Enter on a
	// text field. The page reads the value and reacts.
	Committed
)

// Widget is the atomic interactive unit. A widget draws only within the
// width it is given and owns nothing but its own transient UI state; values
// destined for the selection state are read out by the page after a commit.
type Widget interface {
	// View renders the widget into at most width columns.
	View(width int) string
	// HandleKey processes one key event.
	HandleKey(msg tea.KeyMsg) Outcome
}

// Focusable is implemented by widgets that render differently while focused.
// Pages move focus; unfocused widgets should report Ignored for all input.
type Focusable interface {
	Widget
	Focus()
	Blur()
	Focused() bool
}
