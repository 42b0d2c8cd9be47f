package widget

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// InfoBox is a render-only bordered box of text lines. It never consumes
// input.
type InfoBox struct {
	title string
	lines []string
}

// NewInfoBox creates an info box.
func NewInfoBox(title string, lines ...string) *InfoBox {
	return &InfoBox{title: title, lines: lines}
}

// SetLines replaces the box content.
func (b *InfoBox) SetLines(lines ...string) { b.lines = lines }

func (b *InfoBox) HandleKey(tea.KeyMsg) Outcome { return Ignored }

func (b *InfoBox) View(width int) string {
	var content strings.Builder
	if b.title != "" {
		content.WriteString(subtitleStyle.Render(b.title))
		content.WriteString("\n")
	}
	content.WriteString(strings.Join(b.lines, "\n"))
	return infoBoxStyle.Width(min(width-2, 76)).Render(content.String())
}
