package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kvernberg/nixwright/internal/nixgen"
	"github.com/kvernberg/nixwright/internal/output"
	"github.com/kvernberg/nixwright/internal/selection"
)

// previewWindow is how many document lines fit on screen at once.
const previewWindow = 16

type previewDoc struct {
	name  string
	lines []string
}

// PreviewPage shows the generated documents read-only before install. The
// documents are rendered once at page creation; the pages below cannot
// mutate state while the preview is on top of the stack.
type PreviewPage struct {
	docs   []previewDoc
	active int
	offset int
}

// NewPreviewPage renders both documents from the current selections.
func NewPreviewPage(st *selection.State) *PreviewPage {
	system := func() (string, error) {
		if st.FlakePath != "" {
			return "# System configuration comes from flake " + st.FlakePath + ".\n", nil
		}
		return nixgen.SystemDocument(st)
	}
	disko := func() (string, error) { return nixgen.DiskoDocument(st) }

	return &PreviewPage{docs: []previewDoc{
		buildPreview(output.SystemFile, system),
		buildPreview(output.DiskoFile, disko),
	}}
}

func buildPreview(name string, render func() (string, error)) previewDoc {
	doc, err := render()
	if err != nil {
		return previewDoc{name: name, lines: []string{"Cannot render yet:", "  " + err.Error()}}
	}
	return previewDoc{name: name, lines: strings.Split(strings.TrimRight(doc, "\n"), "\n")}
}

func (p *PreviewPage) Title() string { return "Preview" }

func (p *PreviewPage) Help() string {
	return "tab switch file · ↑/↓ scroll · esc back"
}

func (p *PreviewPage) maxOffset() int {
	n := len(p.docs[p.active].lines) - previewWindow
	if n < 0 {
		return 0
	}
	return n
}

func (p *PreviewPage) scroll(delta int) {
	p.offset += delta
	if p.offset > p.maxOffset() {
		p.offset = p.maxOffset()
	}
	if p.offset < 0 {
		p.offset = 0
	}
}

func (p *PreviewPage) HandleKey(st *selection.State, msg tea.KeyMsg) Signal {
	switch msg.String() {
	case "esc", "q":
		return Pop()
	case "tab", "shift+tab", "left", "right", "h", "l":
		p.active = (p.active + 1) % len(p.docs)
		p.offset = 0
	case "up", "k":
		p.scroll(-1)
	case "down", "j":
		p.scroll(1)
	case "pgup":
		p.scroll(-previewWindow)
	case "pgdown":
		p.scroll(previewWindow)
	case "home":
		p.offset = 0
	case "end":
		p.offset = p.maxOffset()
	}
	return Continue()
}

func (p *PreviewPage) View(st *selection.State, width int) string {
	var b strings.Builder
	b.WriteString(RenderTitle("Generated files"))
	b.WriteString("\n")

	tabs := make([]string, len(p.docs))
	for i, d := range p.docs {
		if i == p.active {
			tabs[i] = ValueStyle.Render("[" + d.name + "]")
		} else {
			tabs[i] = HelpStyle.Render(" " + d.name + " ")
		}
	}
	b.WriteString(strings.Join(tabs, "  "))
	b.WriteString("\n\n")

	doc := p.docs[p.active]
	end := p.offset + previewWindow
	if end > len(doc.lines) {
		end = len(doc.lines)
	}
	for _, line := range doc.lines[p.offset:end] {
		b.WriteString(truncateLine(line, width))
		b.WriteString("\n")
	}

	if len(doc.lines) > previewWindow {
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render(fmt.Sprintf("lines %d-%d of %d", p.offset+1, end, len(doc.lines))))
	}
	return b.String()
}

func truncateLine(s string, width int) string {
	if width <= 1 {
		return s
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
