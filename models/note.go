// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noted Authors

package models

import "time"

// Note is a user-owned text record. The server owns the canonical copy and
// assigns ID and Date on creation; the client holds a read-only cached view
// scoped to the owner.
type Note struct {
	// ID is the server-assigned note identifier.
	ID string `json:"id"`

	// Data is the note text. Updates replace it in place.
	Data string `json:"data"`

	// Date is the creation timestamp. It never changes after creation.
	Date time.Time `json:"date"`

	// UserID is the owner identifier. Every note in a rendered list
	// belongs to the currently authenticated user.
	UserID string `json:"userId"`
}
