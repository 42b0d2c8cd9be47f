package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kvernberg/nixwright/internal/hashpw"
	"github.com/kvernberg/nixwright/internal/selection"
	"github.com/kvernberg/nixwright/internal/tui/widget"
)

// UserFormPage creates one regular user. The password is typed twice with
// masked echo and only its hash ever enters the selection state.
type UserFormPage struct {
	name    *widget.TextInput
	pass    *widget.TextInput
	confirm *widget.TextInput
	shell   *widget.SelectList
	admin   *widget.Checkbox
	buttons *widget.ButtonRow

	focus  int
	errMsg string
}

// NewUserFormPage creates an empty user form.
func NewUserFormPage() *UserFormPage {
	p := &UserFormPage{
		name:    widget.NewTextInput("Username:", "alice"),
		pass:    widget.NewTextInput("Password:", "").Masked(),
		confirm: widget.NewTextInput("Confirm:", "").Masked(),
		shell:   widget.NewSelectList("Login shell", selection.Shells, 4),
		admin:   widget.NewCheckbox("Administrator (wheel group)", true),
		buttons: widget.NewButtonRow("Save", "Cancel"),
	}
	p.name.Focus()
	return p
}

func (p *UserFormPage) Title() string { return "Add User" }

func (p *UserFormPage) Help() string { return "tab next field · enter save · esc cancel" }

func (p *UserFormPage) CapturingText() bool { return p.focus <= 2 }

func (p *UserFormPage) fields() []formField {
	return []formField{p.name, p.pass, p.confirm, p.shell, p.admin, p.buttons}
}

func (p *UserFormPage) cycleFocus(delta int) {
	fields := p.fields()
	fields[p.focus].Blur()
	p.focus = (p.focus + delta + len(fields)) % len(fields)
	fields[p.focus].Focus()
}

// validUsername accepts POSIX-portable user names.
func validUsername(s string) bool {
	if s == "" || len(s) > 32 {
		return false
	}
	for i, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c == '_':
		case (c >= '0' && c <= '9' || c == '-') && i > 0:
		default:
			return false
		}
	}
	return true
}

func (p *UserFormPage) save(st *selection.State) Signal {
	name := strings.TrimSpace(p.name.Value())

	switch {
	case !validUsername(name):
		p.errMsg = "username must be lowercase letters, digits, - and _"
	case p.pass.Value() != p.confirm.Value():
		p.errMsg = "passwords do not match"
	default:
		for _, u := range st.Users {
			if u.Name == name {
				p.errMsg = "user " + name + " already exists"
				return Continue()
			}
		}
		hash, err := hashpw.Hash(p.pass.Value())
		if err != nil {
			p.errMsg = err.Error()
			return Continue()
		}
		st.Users = append(st.Users, selection.User{
			Name:         name,
			PasswordHash: hash,
			Shell:        p.shell.Selected(),
			Admin:        p.admin.Checked(),
		})
		return Pop()
	}
	return Continue()
}

func (p *UserFormPage) HandleKey(st *selection.State, msg tea.KeyMsg) Signal {
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

	switch p.focus {
	case 0, 1, 2:
		inputs := []*widget.TextInput{p.name, p.pass, p.confirm}
		if inputs[p.focus].HandleKey(msg) == widget.Committed {
			p.cycleFocus(1)
		}
	case 3:
		if p.shell.HandleKey(msg) == widget.Committed {
			p.cycleFocus(1)
		}
	case 4:
		if p.admin.HandleKey(msg) == widget.Committed {
			p.cycleFocus(1)
		}
	case 5:
		if p.buttons.HandleKey(msg) == widget.Committed {
			if p.buttons.Label() == "Cancel" {
				return Pop()
			}
			return p.save(st)
		}
	}
	return Continue()
}

func (p *UserFormPage) View(st *selection.State, width int) string {
	var b strings.Builder
	b.WriteString(RenderTitle("New user"))
	b.WriteString("\n")
	b.WriteString(p.name.View(width))
	b.WriteString("\n")
	b.WriteString(p.pass.View(width))
	b.WriteString("\n")
	b.WriteString(p.confirm.View(width))
	b.WriteString("\n\n")
	b.WriteString(p.shell.View(width))
	b.WriteString("\n\n")
	b.WriteString(p.admin.View(width))
	b.WriteString("\n\n")
	b.WriteString(p.buttons.View(width))
	if p.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(RenderError(p.errMsg))
	}
	return b.String()
}
