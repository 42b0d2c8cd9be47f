package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/kvernberg/nixwright/internal/logging"
	"github.com/kvernberg/nixwright/internal/selection"
	"github.com/kvernberg/nixwright/internal/tui/widget"
)

// globalKeyMap defines the key bindings the engine handles before any page
// sees the event.
type globalKeyMap struct {
	Abort key.Binding
	Help  key.Binding
}

var globalKeys = globalKeyMap{
	Abort: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "abort"),
	),
	Help: key.NewBinding(
		key.WithKeys("?", "f1"),
		key.WithHelp("?", "help"),
	),
}

// textCapturer is implemented by pages with a focused text field. While a
// page is capturing text the engine leaves "?" to it instead of opening the
// help overlay.
type textCapturer interface {
	CapturingText() bool
}

// Engine is the bubbletea root model. It owns the page stack and the single
// selection state; pages get both handed in on every call and communicate
// back through Signal values only.
type Engine struct {
	stack []Page
	state *selection.State

	width  int
	height int

	help      *widget.Modal
	completed bool
}

// NewEngine creates an engine with root as the only stack entry.
func NewEngine(st *selection.State, root Page) *Engine {
	return &Engine{
		stack: []Page{root},
		state: st,
		help:  widget.NewModal("Help", "", "Close"),
	}
}

// State returns the shared selection state.
func (e *Engine) State() *selection.State { return e.state }

// Completed reports whether the wizard ended through Finish rather than an
// abort. Only a completed run proceeds to synthesis.
func (e *Engine) Completed() bool { return e.completed }

// Depth returns the current stack depth.
func (e *Engine) Depth() int { return len(e.stack) }

func (e *Engine) top() Page { return e.stack[len(e.stack)-1] }

func (e *Engine) Init() tea.Cmd { return nil }

func (e *Engine) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width = msg.Width
		e.height = msg.Height
		return e, nil

	case tea.KeyMsg:
		if e.help.Visible() {
			e.help.HandleKey(msg)
			return e, nil
		}

		switch {
		case key.Matches(msg, globalKeys.Abort):
			logging.Info("wizard aborted", zap.String("page", e.top().Title()))
			return e, tea.Quit
		case key.Matches(msg, globalKeys.Help):
			// "?" belongs to the page while it is capturing text.
			if msg.String() == "f1" || !e.capturingText() {
				e.help.SetBody(e.helpBody())
				e.help.Show()
				return e, nil
			}
		}

		return e, e.apply(e.top().HandleKey(e.state, msg))
	}
	return e, nil
}

func (e *Engine) capturingText() bool {
	if tc, ok := e.top().(textCapturer); ok {
		return tc.CapturingText()
	}
	return false
}

// apply interprets a page's signal against the stack. It returns tea.Quit
// when the program should end, for either completion or abort.
func (e *Engine) apply(sig Signal) tea.Cmd {
	switch sig.kind {
	case signalContinue:
		return nil

	case signalPush:
		e.stack = append(e.stack, sig.next)
		logging.LogNavigation("push", len(e.stack), sig.next.Title())
		return nil

	case signalPop:
		if len(e.stack) <= 1 {
			// Backing out of the root page ends the wizard without
			// completing, same as an abort.
			logging.LogNavigation("pop-root", 0, e.top().Title())
			return tea.Quit
		}
		e.stack = e.stack[:len(e.stack)-1]
		logging.LogNavigation("pop", len(e.stack), e.top().Title())
		return nil

	case signalPopToRoot:
		e.stack = e.stack[:1]
		logging.LogNavigation("pop-to-root", 1, e.top().Title())
		return nil

	case signalQuit:
		logging.LogNavigation("quit", len(e.stack), e.top().Title())
		return tea.Quit

	case signalFinish:
		e.completed = true
		logging.LogNavigation("finish", len(e.stack), e.top().Title())
		return tea.Quit
	}
	return nil
}

func (e *Engine) helpBody() string {
	body := "Global keys:\n" +
		"  ↑/↓, j/k   move\n" +
		"  Enter      confirm\n" +
		"  Esc        back\n" +
		"  ?, F1      this help\n" +
		"  Ctrl+C     abort without writing anything"
	if pageHelp := e.top().Help(); pageHelp != "" {
		body += "\n\nThis page: " + pageHelp
	}
	return body
}

func (e *Engine) View() string {
	if e.width == 0 || e.height == 0 {
		return ""
	}

	page := e.top()
	content := page.View(e.state, ContentWidth(e.width))
	footer := page.Help() + "  ·  ? help  ·  ctrl+c abort"
	screen := RenderApplicationContainer(content, page.Title(), footer, e.width, e.height)

	if e.help.Visible() {
		return e.help.Overlay(e.width, e.height)
	}
	return screen
}
