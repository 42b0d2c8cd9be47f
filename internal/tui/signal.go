package tui

// signalKind enumerates the navigation outcomes a page can request.
type signalKind int

const (
	signalContinue signalKind = iota
	signalPush
	signalPop
	signalPopToRoot
	signalQuit
	signalFinish
)

// Signal is a page's answer to a key event. The engine is the only code that
// interprets signals; pages construct them through the functions below and
// never manipulate the stack directly.
type Signal struct {
	kind signalKind
	next Page
}

// Continue keeps the current page on top. The page may have mutated its own
// widgets or the selection state.
func Continue() Signal { return Signal{kind: signalContinue} }

// Push places next on top of the stack. The current page stays underneath
// and regains control when next pops.
func Push(next Page) Signal { return Signal{kind: signalPush, next: next} }

// Pop removes the current page. Popping the last page ends the program
// without completing.
func Pop() Signal { return Signal{kind: signalPop} }

// PopToRoot discards everything above the root page.
func PopToRoot() Signal { return Signal{kind: signalPopToRoot} }

// Quit aborts the wizard. No configuration is generated.
func Quit() Signal { return Signal{kind: signalQuit} }

// Finish ends the wizard successfully. The caller of the engine reads the
// completed flag and proceeds to synthesis.
func Finish() Signal { return Signal{kind: signalFinish} }
