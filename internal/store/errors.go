package store

import "errors"

var (
	// ErrSessionNotFound indicates that no durable session record exists.
	// The auth gate treats it as "not logged in".
	ErrSessionNotFound = errors.New("local session not found")
)
