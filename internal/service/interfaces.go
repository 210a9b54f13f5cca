package service

import (
	"context"

	"github.com/noted-app/noted/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// AuthService defines the client-side contract for authentication and
// session lifecycle. Implementations pair every in-memory session change
// with the corresponding durable write so the two stores stay consistent.
type AuthService interface {
	// Login authenticates against the server. On success the in-memory
	// session is set AND the durable session record is written in the
	// same call. Returns the credential, or an error carrying the
	// server's failure message.
	Login(ctx context.Context, username, password string) (models.Credential, error)

	// SignUp creates an account on the server. It does not log the user
	// in; the caller navigates back to the login flow on success.
	SignUp(ctx context.Context, username, password string) error

	// RestoreSession loads the durable session record, restores the API
	// token, and sets the in-memory session. Returns
	// [store.ErrSessionNotFound] (wrapped) when there is no usable
	// record; a record whose token has verifiably expired is deleted and
	// treated the same way.
	RestoreSession(ctx context.Context) (models.Credential, error)

	// Logout clears the in-memory session and deletes the durable record.
	Logout(ctx context.Context) error
}

// NotesService defines the client-side contract for the user's note set.
// Every operation is scoped to the current session credential; the cached
// list is keyed by user id and invalidated after each successful mutation.
type NotesService interface {
	// List returns the current user's notes, serving the per-user cache
	// when it is warm and fetching from the server otherwise. Returns
	// [ErrNotAuthenticated] without a network call when no session is
	// present.
	List(ctx context.Context) ([]models.Note, error)

	// Create submits a new note. Empty or whitespace-only text is a
	// no-op: nothing is sent. On success the cache key for the current
	// user is invalidated so the next List re-fetches.
	Create(ctx context.Context, text string) error

	// Update replaces the text of the note identified by noteID. Empty
	// or whitespace-only text is a no-op. On success the cache is
	// invalidated.
	Update(ctx context.Context, noteID, text string) error

	// Delete removes the note identified by noteID unconditionally.
	// On success the cache is invalidated.
	Delete(ctx context.Context, noteID string) error

	// Invalidate drops the cached list for the current user so the next
	// List re-fetches from the server.
	Invalidate()

	// Reset drops every cached list. Called on logout.
	Reset()
}
