// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noted Authors

package models

// Credential is the authenticated identity returned by the server on login.
// An absent credential (the zero value) means there is no active session.
//
// The credential is owned by the session holder and is mutated only through
// explicit login and logout; the durable copy kept by the session store must
// stay consistent with it (write on login, delete on logout).
type Credential struct {
	// ID is the server-assigned user identifier. It partitions every
	// notes request: the client never addresses another user's id.
	ID string `json:"id"`

	// Username is the display name shown in the UI header.
	Username string `json:"username"`
}

// Valid reports whether the credential identifies a user. Responses that
// decode into an invalid credential are rejected at the network boundary.
func (c Credential) Valid() bool {
	return c.ID != "" && c.Username != ""
}
