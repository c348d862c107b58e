package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// WelcomeNotice is shown once on the welcome page, e.g. after a logout.
type WelcomeNotice struct {
	Text string
}

type WelcomeModel struct {
	items  []string
	idx    int
	status string
}

func NewWelcomeModel() *WelcomeModel {
	return &WelcomeModel{
		items: []string{"Log in", "Register"},
	}
}

func (m *WelcomeModel) Init() tea.Cmd {
	return nil
}

func (m *WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(WelcomeNotice); ok {
		m.status = notice.Text
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "q":
		return m, tea.Quit
	case "enter":
		m.status = ""
		if m.idx == 0 {
			return m, func() tea.Msg { return NavigateTo{Page: pageLogin} }
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageRegister} }
	}

	return m, nil
}

func (m *WelcomeModel) View() string {
	var b strings.Builder
	idColWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items))) + 2

	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item); w > actionColWidth {
			actionColWidth = w
		}
	}

	if m.status != "" {
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	b.WriteString("Track what you eat. Snap a photo, get the nutrients.\n\n")
	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "#", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item))
	}

	return renderPage("NUTRI TRACK", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version │ q: quit")
}
