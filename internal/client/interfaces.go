// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noted Authors

package client

import (
	"context"

	"github.com/noted-app/noted/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/ui_mock.go -package=mock

// UI is the terminal surface the app drives: the unauthenticated login
// flow and the authenticated note feed. Satisfied by [tui.TUI].
type UI interface {
	// LoginFlow blocks until the user signs in or quits. A quit is
	// reported as [tui.ErrUserQuit].
	LoginFlow(ctx context.Context) (models.Credential, error)

	// NotesLoop hosts the note feed for the given credential. It returns
	// logout=true when the user chose to sign out rather than quit.
	NotesLoop(ctx context.Context, cred models.Credential) (logout bool, err error)
}
