// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noted Authors

// Package service implements the application logic of the noted client:
// authentication paired with durable session persistence, and note
// operations with a per-user cached list.
package service

import (
	"github.com/noted-app/noted/internal/adapter"
	"github.com/noted-app/noted/internal/logger"
	"github.com/noted-app/noted/internal/session"
	"github.com/noted-app/noted/internal/store"
)

// Services aggregates the client's application services behind one
// constructor so wiring stays in a single place.
type Services struct {
	Auth  AuthService
	Notes NotesService
}

// NewServices wires the transport, session holder and storages into the
// full service set.
func NewServices(api adapter.NotesAPI, sess *session.Session, storages *store.Storages, l *logger.Logger) *Services {
	return &Services{
		Auth:  NewAuthService(api, sess, storages.SessionRepository, l),
		Notes: NewNotesService(api, sess, l),
	}
}
