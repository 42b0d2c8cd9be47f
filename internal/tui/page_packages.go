package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kvernberg/nixwright/internal/selection"
	"github.com/kvernberg/nixwright/internal/tui/widget"
)

// curatedPackages is the toggle list of commonly wanted packages. Anything
// else goes in through the free-text field.
var curatedPackages = []string{
	"vim", "neovim", "emacs", "git", "curl", "wget", "htop", "btop",
	"tmux", "ripgrep", "fd", "fzf", "tree", "unzip", "firefox",
	"chromium", "mpv", "vlc", "libreoffice", "gimp",
}

// PackagesPage picks extra system packages: a curated toggle list plus a
// free-text field for anything not on it.
type PackagesPage struct {
	curated *widget.MultiSelect
	custom  *widget.TextInput
	focus   int
	errMsg  string
	seeded  bool
}

// NewPackagesPage creates the package picker.
func NewPackagesPage() *PackagesPage {
	p := &PackagesPage{
		curated: widget.NewMultiSelect("Common packages", curatedPackages, 10),
		custom:  widget.NewTextInput("Other package:", "package name, Enter adds it"),
	}
	p.curated.Focus()
	return p
}

func (p *PackagesPage) Title() string { return "Packages" }

func (p *PackagesPage) Help() string { return "space toggle · tab other packages · esc back" }

func (p *PackagesPage) CapturingText() bool { return p.focus == 1 }

func (p *PackagesPage) cycleFocus() {
	if p.focus == 0 {
		p.curated.Blur()
		p.custom.Focus()
		p.focus = 1
	} else {
		p.custom.Blur()
		p.curated.Focus()
		p.focus = 0
	}
}

// applyCurated rewrites the curated part of the package set while keeping
// every custom package the user typed in.
func (p *PackagesPage) applyCurated(st *selection.State) {
	curatedSet := map[string]bool{}
	for _, name := range curatedPackages {
		curatedSet[name] = true
	}
	var kept []string
	for _, name := range st.SystemPackages {
		if !curatedSet[name] {
			kept = append(kept, name)
		}
	}
	st.SystemPackages = nil
	for _, name := range p.curated.Values() {
		st.AddSystemPackage(name)
	}
	for _, name := range kept {
		st.AddSystemPackage(name)
	}
}

func (p *PackagesPage) HandleKey(st *selection.State, msg tea.KeyMsg) Signal {
	switch msg.Type {
	case tea.KeyEsc:
		if p.focus == 1 {
			p.cycleFocus()
			return Continue()
		}
		return Pop()
	case tea.KeyTab, tea.KeyShiftTab:
		p.cycleFocus()
		return Continue()
	}

	if p.focus == 0 {
		out := p.curated.HandleKey(msg)
		if out == widget.Consumed || out == widget.Committed {
			p.applyCurated(st)
		}
		if out == widget.Committed {
			return Pop()
		}
		return Continue()
	}

	if p.custom.HandleKey(msg) == widget.Committed {
		name := strings.TrimSpace(p.custom.Value())
		if name == "" {
			return Continue()
		}
		if strings.ContainsAny(name, " \t\"\\$") {
			p.errMsg = "package names cannot contain spaces or quoting characters"
			return Continue()
		}
		st.AddSystemPackage(name)
		p.custom.Reset()
		p.errMsg = ""
	}
	return Continue()
}

func (p *PackagesPage) View(st *selection.State, width int) string {
	if !p.seeded {
		p.curated.SetChecked(st.SystemPackages)
		p.seeded = true
	}

	var b strings.Builder
	b.WriteString(RenderTitle("Extra packages"))
	b.WriteString("\n")
	b.WriteString(p.curated.View(width))
	b.WriteString("\n\n")
	b.WriteString(p.custom.View(width))
	b.WriteString("\n\n")
	if p.errMsg != "" {
		b.WriteString(RenderError(p.errMsg))
		b.WriteString("\n\n")
	}
	if len(st.SystemPackages) == 0 {
		b.WriteString(SubtitleStyle.Render("No extra packages selected."))
	} else {
		b.WriteString(RenderKeyValue("Selected:", strings.Join(st.SystemPackages, " ")))
	}
	return b.String()
}
