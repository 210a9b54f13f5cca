// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noted Authors

// Package adapter provides the transport layer for communicating with the
// remote Noted API.
//
// The primary abstraction is [NotesAPI], which decouples the service layer
// from the wire protocol. The package ships an HTTP/JSON implementation
// ([NewHTTPNotesAPI]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401). Failure responses carry
// the server's message as [ServerError.Message]. Malformed success bodies
// are rejected with [ErrMalformedResponse] instead of letting half-decoded
// values propagate.
package adapter

import (
	"context"

	"github.com/noted-app/noted/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notes_api_mock.go -package=mock

// NotesAPI defines transport-agnostic communication with the Noted server.
// Implementations are responsible for serialisation, session credential
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type NotesAPI interface {
	// SetToken stores the session token that will accompany all
	// subsequent requests. It is called when a persisted session is
	// restored at startup; after a fresh Login the implementation stores
	// the server-issued token itself.
	SetToken(token string)

	// Token returns the session token currently held, or an empty string
	// if none has been set yet.
	Token() string

	// Login authenticates with POST /login and returns the credential
	// from the response body. The server's failure message is carried in
	// the returned error verbatim. Returns [ErrMalformedResponse] if the
	// success body does not decode into a valid credential.
	Login(ctx context.Context, req models.LoginRequest) (models.Credential, error)

	// SignUp creates an account with POST /sign-up. A 2xx status is the
	// only success signal; no body is required.
	SignUp(ctx context.Context, req models.SignUpRequest) error

	// GetUserNotes fetches all notes owned by userID via
	// GET /get-user-notes?userId=<id>.
	GetUserNotes(ctx context.Context, userID string) ([]models.Note, error)

	// CreateNote submits a new note with POST /create-note.
	CreateNote(ctx context.Context, req models.CreateNoteRequest) error

	// UpdateNote replaces a note's text with PUT /update-note.
	UpdateNote(ctx context.Context, req models.UpdateNoteRequest) error

	// DeleteNote removes a note with DELETE /delete-note.
	DeleteNote(ctx context.Context, req models.DeleteNoteRequest) error
}
