package models

import "time"

// SessionRecord is the durable session row kept in the local database so a
// login survives application restarts. It mirrors the in-memory credential
// plus the API session token the server issued with it.
type SessionRecord struct {
	// Credential is the identity that was authenticated.
	Credential Credential

	// Token is the serialized session token (a JWT) the server set on
	// login. It is restored into the HTTP client so subsequent requests
	// carry the same session.
	Token string

	// SavedAt is when the record was written.
	SavedAt time.Time
}
