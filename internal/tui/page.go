package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kvernberg/nixwright/internal/selection"
)

// Page is one screen of the wizard. Pages read and mutate the shared
// selection state passed in by the engine; they hold only their own widget
// state. Layout is recomputed from the width argument on every View call so
// terminal resizes need no page-side bookkeeping.
//
// Pages never reference sibling pages. Forward navigation constructs the
// next page inside the Push signal; backward navigation is always Pop.
type Page interface {
	// Title is shown in the application header while the page is on top.
	Title() string

	// View renders the page body for the given content width.
	View(st *selection.State, width int) string

	// HandleKey processes one key event and answers with a navigation
	// signal. Continue means the event was handled (or dropped) without
	// changing the stack.
	HandleKey(st *selection.State, msg tea.KeyMsg) Signal

	// Help returns the footer hint line for the page.
	Help() string
}
