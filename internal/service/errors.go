package service

import (
	"errors"

	"github.com/noted-app/noted/internal/adapter"
)

// ErrNotAuthenticated is returned by note operations when no session
// credential is present. The caller is expected to route the user back
// to the login screen instead of retrying.
var ErrNotAuthenticated = errors.New("not authenticated")

// ServerMessage extracts the human-readable part of a service error for
// display. Failure responses carry the server's message as a structured
// field on [adapter.ServerError], so messages survive intact even when
// they contain ": " themselves. Errors without that shape are returned
// whole.
func ServerMessage(err error) string {
	if err == nil {
		return ""
	}
	var srvErr *adapter.ServerError
	if errors.As(err, &srvErr) && srvErr.Message != "" {
		return srvErr.Message
	}
	return err.Error()
}
