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

// SignupModel is the Bubble Tea model for the account creation screen. It
// renders three text inputs (username, password, password confirmation) and
// dispatches an async sign-up command on form submission. On success the
// model resets the form and navigates back to the login page, passing a
// [SignupSuccessNotice] payload.
type SignupModel struct {
	ctx  context.Context
	auth service.AuthService

	inputs      []textinput.Model
	focus       int
	submitting  bool
	fieldErrors validators.FieldErrors
	errMsg      string
}

// NewSignupModel creates a [SignupModel] with three pre-configured inputs.
// The username field receives focus immediately; both password fields use
// masked echo.
func NewSignupModel(ctx context.Context, auth service.AuthService) *SignupModel {
	fields := make([]textinput.Model, 3)

	fields[0] = textinput.New()
	fields[0].Placeholder = "username"
	fields[0].CharLimit = 75
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "password"
	fields[1].CharLimit = 100
	fields[1].Width = 40
	fields[1].EchoMode = textinput.EchoPassword
	fields[1].EchoCharacter = '*'

	fields[2] = textinput.New()
	fields[2].Placeholder = "repeat password"
	fields[2].CharLimit = 100
	fields[2].Width = 40
	fields[2].EchoMode = textinput.EchoPassword
	fields[2].EchoCharacter = '*'

	return &SignupModel{
		ctx:    ctx,
		auth:   auth,
		inputs: fields,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the
// active input.
func (m *SignupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [SignupResult]  — clears submitting state; on error, populates errMsg;
//     on success, resets the form and navigates to the login page.
//   - esc             — cancels and navigates back to the login page.
//   - tab / shift+tab — moves focus between inputs.
//   - enter           — validates the form and dispatches the async sign-up command.
//
// All other key events are forwarded to the focused input widget.
func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(SignupResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.resetForm()
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    "login",
				Payload: SignupSuccessNotice{Username: result.Username},
			}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.resetForm()
			return m, func() tea.Msg { return NavigateTo{Page: "login"} }
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

			form := validators.SignupForm{
				Username:        strings.TrimSpace(m.inputs[0].Value()),
				Password:        m.inputs[1].Value(),
				ConfirmPassword: m.inputs[2].Value(),
			}
			m.fieldErrors = validators.ValidateSignup(form)
			if len(m.fieldErrors) > 0 {
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignup(form.Username, form.Password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the sign-up form with per-field
// validation messages, a submission indicator, and an optional server error.
func (m *SignupModel) View() string {
	var b strings.Builder

	labels := []string{"Username ", "Password ", "Repeat   "}
	fields := []string{validators.FieldUsername, validators.FieldPassword, validators.FieldConfirmPassword}

	for i, input := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString(" │ [")
		b.WriteString(input.View())
		b.WriteString("]\n")
		if msg, ok := m.fieldErrors[fields[i]]; ok {
			b.WriteString("          │ " + errorStyle.Render(msg) + "\n")
		}
	}

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"), "enter: submit │ tab: next field │ esc: back to sign in")
}

func (m *SignupModel) cmdSignup(username, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		err := auth.SignUp(ctx, username, password)
		return SignupResult{Err: err, Username: username}
	}
}

func (m *SignupModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
	m.submitting = false
	m.fieldErrors = nil
	m.errMsg = ""
}

func (m *SignupModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *SignupModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
