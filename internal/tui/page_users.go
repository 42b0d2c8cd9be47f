package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kvernberg/nixwright/internal/selection"
	"github.com/kvernberg/nixwright/internal/tui/widget"
)

// UsersPage manages account setup: the root password, regular users and the
// root-only acknowledgment for systems without regular users.
type UsersPage struct {
	list   *widget.SelectList
	remove *widget.Modal
}

const (
	actRootPassword = "Set the root password…"
	actAddUser      = "Add a user…"
	actRootOnly     = "Toggle root-only system (no regular users)"
	actUsersDone    = "Done"
)

// NewUsersPage creates the account setup page.
func NewUsersPage() *UsersPage {
	return &UsersPage{
		remove: widget.NewModal("Remove user", "", "Keep", "Remove"),
	}
}

func (p *UsersPage) Title() string { return "Users" }

func (p *UsersPage) Help() string { return "enter apply · esc back" }

// items rebuilds the action list so user entries track the state.
func (p *UsersPage) items(st *selection.State) []string {
	items := []string{actRootPassword, actAddUser, actRootOnly}
	for _, u := range st.Users {
		items = append(items, "Remove "+u.Name+"…")
	}
	return append(items, actUsersDone)
}

func (p *UsersPage) HandleKey(st *selection.State, msg tea.KeyMsg) Signal {
	if p.remove.Visible() {
		if p.remove.HandleKey(msg) == widget.Committed && p.remove.Choice() == "Remove" {
			idx := p.list.Index() - 3
			if idx >= 0 && idx < len(st.Users) {
				st.Users = append(st.Users[:idx], st.Users[idx+1:]...)
			}
		}
		return Continue()
	}

	if msg.Type == tea.KeyEsc {
		return Pop()
	}

	if p.list == nil {
		return Continue()
	}
	if p.list.HandleKey(msg) != widget.Committed {
		return Continue()
	}

	switch p.list.Selected() {
	case actRootPassword:
		return Push(NewRootPasswordPage())
	case actAddUser:
		return Push(NewUserFormPage())
	case actRootOnly:
		st.RootOnly = !st.RootOnly
	case actUsersDone:
		return Pop()
	default:
		idx := p.list.Index() - 3
		if idx >= 0 && idx < len(st.Users) {
			p.remove.SetBody("Remove user " + st.Users[idx].Name + " from the installation?")
			p.remove.Show()
		}
	}
	return Continue()
}

func (p *UsersPage) View(st *selection.State, width int) string {
	items := p.items(st)
	if p.list == nil {
		p.list = widget.NewSelectList("", items, 8)
		p.list.Focus()
	} else {
		p.list.SetItems(items)
	}

	var b strings.Builder
	b.WriteString(RenderTitle("Accounts"))
	b.WriteString("\n")

	rootState := ErrorStyle.Render("not set")
	if st.RootPasswordHash != "" {
		rootState = SuccessStyle.Render("set")
	}
	b.WriteString(RenderKeyValue("Root password:", rootState))
	b.WriteString("\n")

	if len(st.Users) == 0 {
		note := "none"
		if st.RootOnly {
			note = "none (root-only system)"
		}
		b.WriteString(RenderKeyValue("Users:", note))
	} else {
		names := make([]string, len(st.Users))
		for i, u := range st.Users {
			names[i] = u.Name
			if u.Admin {
				names[i] += " (admin)"
			}
		}
		b.WriteString(RenderKeyValue("Users:", strings.Join(names, ", ")))
	}
	b.WriteString("\n\n")
	b.WriteString(p.list.View(width))

	if p.remove.Visible() {
		b.WriteString("\n\n")
		b.WriteString(p.remove.View(width))
	}
	return b.String()
}
