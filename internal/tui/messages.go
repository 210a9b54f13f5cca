package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/noted-app/noted/models"
)

// NavigateTo switches the active page of [RootModel]. An optional Payload
// is delivered to the target page right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the async login command. A nil Err finalizes
// the login flow in [RootModel].
type LoginResult struct {
	Err        error
	Credential models.Credential
}

// SignupResult is produced by the async sign-up command.
type SignupResult struct {
	Err      error
	Username string
}

// SignupSuccessNotice is delivered to the login page after a successful
// sign-up so it can show a confirmation banner.
type SignupSuccessNotice struct {
	Username string
}

type notesLoadedMsg struct {
	notes []models.Note
	err   error
}

type noteSavedMsg struct {
	err error
}

type noteDeletedMsg struct {
	err error
}
