// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noted Authors

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/noted-app/noted/internal/config"
	"github.com/noted-app/noted/internal/logger"
	"github.com/noted-app/noted/internal/service"
	"github.com/noted-app/noted/internal/store"
	"github.com/noted-app/noted/internal/tui"
	"github.com/noted-app/noted/internal/workers"
	"github.com/noted-app/noted/models"
)

// App is the client application: the authentication gate in front of the
// note feed. A persisted session skips the login screen entirely; without
// one the user lands on the login flow first.
type App struct {
	services   *service.Services
	ui         UI
	workersCfg config.Workers
	logger     *logger.Logger
}

func NewApp(services *service.Services, ui UI, workersCfg config.Workers, l *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("services and ui are required")
	}
	return &App{
		services:   services,
		ui:         ui,
		workersCfg: workersCfg,
		logger:     l.GetChildLogger(),
	}, nil
}

// Run drives the client until the user quits. Each pass evaluates the gate
// once: restore a persisted session or run the login flow, then hand the
// terminal to the note feed. Logging out starts the next pass from the gate.
func (a *App) Run() error {
	ctx := context.Background()

	cred, err := a.services.Auth.RestoreSession(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			return fmt.Errorf("restore session: %w", err)
		}

		cred, err = a.ui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	}

	logout, err := a.runNotes(ctx, cred)
	if err != nil {
		return err
	}
	if logout {
		if err := a.services.Auth.Logout(ctx); err != nil {
			a.logger.Error().Err(err).Msg("logout cleanup failed")
		}
		a.services.Notes.Reset()
		return a.Run()
	}

	return nil
}

// runNotes hosts the note feed with the cache refresher running alongside.
func (a *App) runNotes(ctx context.Context, cred models.Credential) (bool, error) {
	refresher := service.NewNoteCacheRefresher(a.services.Notes, a.workersCfg.RefreshInterval, a.logger)

	background := workers.NewWorkers(refresher)
	background.Run()
	defer background.Stop()

	return a.ui.NotesLoop(ctx, cred)
}
