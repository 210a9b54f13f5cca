// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noted Authors

// Package store implements the durable client-side state of the noted
// client: a single-row SQLite session record that lets a login survive
// application restarts. Schema changes are applied with goose migrations;
// queries are built with squirrel.
package store

import (
	"context"

	"github.com/noted-app/noted/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_repository_mock.go -package=mock

// SessionRepository is the durable session record under its well-known
// single-row key. Save overwrites, Load reads, Delete removes; there is at
// most one record at any time.
type SessionRepository interface {
	// Save writes rec as the durable session, replacing any previous one.
	Save(ctx context.Context, rec models.SessionRecord) error

	// Load reads the durable session. Returns [ErrSessionNotFound] when
	// no record exists or the stored row is unusable.
	Load(ctx context.Context) (models.SessionRecord, error)

	// Delete removes the durable session. Deleting an absent record is
	// not an error.
	Delete(ctx context.Context) error
}
