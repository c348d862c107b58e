// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-nutri-track/internal/service"
	"github.com/MKhiriev/go-nutri-track/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the login screen. It renders two text inputs
// (login and password) and dispatches an async login command on form submission.
// On success a [LoginResult] message is produced and handled by [RootModel] to finish
// the authentication flow.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with pre-configured login and password inputs.
// The login field receives focus immediately; the password field uses masked echo.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	return &LoginModel{
		ctx:    ctx,
		auth:   auth,
		inputs: credentialInputs(false),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult]: clears submitting state; on error, populates errMsg.
//   - esc: cancels and navigates back to the welcome page.
//   - tab: moves focus to the next input.
//   - shift+tab: moves focus to the previous input.
//   - enter: validates inputs and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
		}
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
			if login == "" || pass == "" {
				m.errMsg = "Login and password are required."
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(login, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼──────────────────────────────────────────\n")
	b.WriteString("Login     │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(login, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.Login(ctx, models.User{
			Login:    login,
			Password: pass,
		})

		return LoginResult{Session: session, Err: err}
	}
}

// credentialInputs builds the login and password inputs, plus a password
// confirmation input when withRepeat is set.
func credentialInputs(withRepeat bool) []textinput.Model {
	loginInput := textinput.New()
	loginInput.Placeholder = "login"
	loginInput.CharLimit = 64
	loginInput.Width = 40
	loginInput.Focus()

	inputs := []textinput.Model{loginInput, passwordInput("password")}
	if withRepeat {
		inputs = append(inputs, passwordInput("repeat password"))
	}
	return inputs
}

func passwordInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 256
	in.Width = 40
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

func focusNext(inputs []textinput.Model, focus int) int {
	inputs[focus].Blur()
	focus = (focus + 1) % len(inputs)
	inputs[focus].Focus()
	return focus
}

func focusPrev(inputs []textinput.Model, focus int) int {
	inputs[focus].Blur()
	focus = (focus - 1 + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}
