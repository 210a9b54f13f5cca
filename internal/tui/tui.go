package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/noted-app/noted/internal/logger"
	"github.com/noted-app/noted/internal/service"
	"github.com/noted-app/noted/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
}

func New(services *service.Services, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo}, nil
}

// LoginFlow runs the unauthenticated part of the client: the login screen
// with a path to account creation. It blocks until the user either signs in
// or quits; a successful sign-in returns the credential the server issued.
func (t *TUI) LoginFlow(ctx context.Context) (models.Credential, error) {
	pages := map[string]tea.Model{
		"login":  NewLoginModel(ctx, t.services.Auth),
		"signup": NewSignupModel(ctx, t.services.Auth),
	}

	root := NewRootModel(pages, "login", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Credential{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Credential{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Credential{}, ErrUserQuit
	}

	return result.resultCred, nil
}

// NotesLoop runs the authenticated part of the client: the note feed with
// filtering, ordering, and the create/edit/delete flows. It returns
// logout=true when the user chose to sign out rather than quit.
func (t *TUI) NotesLoop(ctx context.Context, cred models.Credential) (logout bool, err error) {
	model := newHomeModel(ctx, t.services.Notes, cred)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(homeModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
