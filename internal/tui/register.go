package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-nutri-track/internal/service"
	"github.com/MKhiriev/go-nutri-track/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RegisterModel is the Bubble Tea model for the registration screen. It renders
// login, password and password confirmation inputs. A successful registration
// logs the user in right away: the model produces a [LoginResult] that
// [RootModel] treats like a completed login.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	return &RegisterModel{
		ctx:    ctx,
		auth:   auth,
		inputs: credentialInputs(true),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Enter validates that every field is filled
// and both passwords match before the registration command is dispatched.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}
		m.resetForm()
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageWelcome} }
		case "tab":
			m.focus = focusNext(m.inputs, m.focus)
			return m, nil
		case "shift+tab":
			m.focus = focusPrev(m.inputs, m.focus)
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			login := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			repeat := m.inputs[2].Value()

			if login == "" || pass == "" || repeat == "" {
				m.errMsg = "All fields are required."
				return m, nil
			}
			if pass != repeat {
				m.errMsg = "Passwords do not match."
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(login, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Field            │ Value\n")
	b.WriteString("─────────────────┼──────────────────────────────────────\n")
	b.WriteString("Login            │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password         │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Repeat password  │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(login, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.Register(ctx, models.User{
			Login:    login,
			Password: pass,
		})
		return LoginResult{Session: session, Err: err}
	}
}

func (m *RegisterModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[m.focus].Focus()
}
