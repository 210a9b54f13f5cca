// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noted Authors

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/noted-app/noted/internal/service"
	"github.com/noted-app/noted/internal/validators"
)

// LoginModel is the Bubble Tea model for the login screen. It renders two
// text inputs (username and password) and dispatches an async login command
// on form submission. On success a [LoginResult] message is produced and
// handled by [RootModel] to finish the authentication flow.
type LoginModel struct {
	ctx  context.Context
	auth service.AuthService

	inputs      []textinput.Model
	focus       int
	submitting  bool
	fieldErrors validators.FieldErrors
	errMsg      string
	notice      string
}

// NewLoginModel creates a [LoginModel] with pre-configured username and
// password inputs. The username field receives focus immediately; the
// password field uses masked echo.
func NewLoginModel(ctx context.Context, auth service.AuthService) *LoginModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 75
	usernameInput.Width = 40
	usernameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 100
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{usernameInput, passwordInput},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the
// active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [SignupSuccessNotice] — shows a confirmation banner after sign-up.
//   - [LoginResult]         — clears submitting state; on error, populates errMsg.
//   - ctrl+s                — navigates to the sign-up page.
//   - tab / shift+tab       — moves focus between inputs.
//   - enter                 — validates the form and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SignupSuccessNotice:
		if msg.Username != "" {
			m.notice = "Account " + msg.Username + " created. Please sign in."
		} else {
			m.notice = "Account created. Please sign in."
		}
		return m, textinput.Blink
	case LoginResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = humanizeError(msg.Err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "ctrl+s":
			m.resetForm()
			return m, func() tea.Msg { return NavigateTo{Page: "signup"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			form := validators.LoginForm{
				Username: strings.TrimSpace(m.inputs[0].Value()),
				Password: m.inputs[1].Value(),
			}
			m.fieldErrors = validators.ValidateLogin(form)
			if len(m.fieldErrors) > 0 {
				return m, nil
			}

			m.errMsg = ""
			m.notice = ""
			m.submitting = true
			return m, m.cmdLogin(form.Username, form.Password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the login form with per-field
// validation messages, a submission indicator, and an optional server error.
func (m *LoginModel) View() string {
	var b strings.Builder

	if m.notice != "" {
		b.WriteString("OK: ")
		b.WriteString(m.notice)
		b.WriteString("\n\n")
	}

	b.WriteString("Username  │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	if msg, ok := m.fieldErrors[validators.FieldUsername]; ok {
		b.WriteString("          │ " + errorStyle.Render(msg) + "\n")
	}
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	if msg, ok := m.fieldErrors[validators.FieldPassword]; ok {
		b.WriteString("          │ " + errorStyle.Render(msg) + "\n")
	}

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "enter: sign in │ tab: next field │ ctrl+s: create account")
}

func (m *LoginModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		cred, err := auth.Login(ctx, username, password)
		return LoginResult{Err: err, Credential: cred}
	}
}

func (m *LoginModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.focus = 0
	m.inputs[0].Focus()
	m.inputs[1].Blur()
	m.submitting = false
	m.fieldErrors = nil
	m.errMsg = ""
	m.notice = ""
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
