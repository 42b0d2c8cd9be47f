package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kvernberg/nixwright/internal/selection"
	"github.com/kvernberg/nixwright/internal/tui/widget"
)

// LocalizationPage edits locale, keyboard layout and timezone. Tab moves
// between the three lists; each list commits its highlighted value into the
// selection state immediately.
type LocalizationPage struct {
	locale   *widget.SelectList
	keyboard *widget.SelectList
	timezone *widget.SelectList
	focus    int
	seeded   bool
}

// NewLocalizationPage creates the locale and keyboard editor.
func NewLocalizationPage() *LocalizationPage {
	p := &LocalizationPage{
		locale:   widget.NewSelectList("Locale", selection.Locales, 6),
		keyboard: widget.NewSelectList("Keyboard layout", selection.KeyboardLayouts, 6),
		timezone: widget.NewSelectList("Timezone", selection.Timezones, 6),
	}
	p.locale.Focus()
	return p
}

func (p *LocalizationPage) Title() string { return "Locale & Keyboard" }

func (p *LocalizationPage) Help() string { return "tab next field · enter apply · esc back" }

func (p *LocalizationPage) widgets() []*widget.SelectList {
	return []*widget.SelectList{p.locale, p.keyboard, p.timezone}
}

func (p *LocalizationPage) cycleFocus(delta int) {
	lists := p.widgets()
	lists[p.focus].Blur()
	p.focus = (p.focus + delta + len(lists)) % len(lists)
	lists[p.focus].Focus()
}

func (p *LocalizationPage) applyFocused(st *selection.State) {
	switch p.focus {
	case 0:
		st.Locale = p.locale.Selected()
		st.Language = st.Locale
	case 1:
		st.KeyboardLayout = p.keyboard.Selected()
	case 2:
		st.Timezone = p.timezone.Selected()
	}
}

func (p *LocalizationPage) HandleKey(st *selection.State, msg tea.KeyMsg) Signal {
	switch msg.Type {
	case tea.KeyEsc:
		return Pop()
	case tea.KeyTab:
		p.cycleFocus(1)
		return Continue()
	case tea.KeyShiftTab:
		p.cycleFocus(-1)
		return Continue()
	}

	if p.widgets()[p.focus].HandleKey(msg) == widget.Committed {
		p.applyFocused(st)
	}
	return Continue()
}

func (p *LocalizationPage) View(st *selection.State, width int) string {
	if !p.seeded {
		p.locale.Select(st.Locale)
		p.keyboard.Select(st.KeyboardLayout)
		p.timezone.Select(st.Timezone)
		p.seeded = true
	}

	var b strings.Builder
	b.WriteString(RenderTitle("Language and region"))
	b.WriteString("\n")
	b.WriteString(RenderKeyValue("Locale:", st.Locale))
	b.WriteString("\n")
	b.WriteString(RenderKeyValue("Keyboard:", st.KeyboardLayout))
	b.WriteString("\n")
	b.WriteString(RenderKeyValue("Timezone:", st.Timezone))
	b.WriteString("\n\n")

	for i, l := range p.widgets() {
		b.WriteString(l.View(width))
		if i < 2 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}
