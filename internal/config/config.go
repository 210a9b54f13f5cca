// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noted Authors

package config

import (
	"time"
)

// Config is the top-level configuration container for the noted client. It is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// API holds settings for the remote Noted API.
	API API `envPrefix:"API_"`

	// Storage holds the local session database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the NOTED_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"NOTED_CONFIG"`
}

// API holds network settings for the remote Noted API.
type API struct {
	// Address is the base address of the Noted API, either a full URL or
	// a host:port pair (a missing scheme defaults to http).
	// Env: API_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the per-request timeout for outbound calls
	// (e.g. "15s"). A hung server fails the request instead of hanging
	// the UI affordance forever.
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds settings for the local SQLite database that keeps the
// durable session record.
type Storage struct {
	// DSN is the SQLite file path.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`
}

// Workers holds settings for background jobs.
type Workers struct {
	// RefreshInterval is how often the cached note list is invalidated
	// so the next read re-fetches from the server. Zero disables the job.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Default values applied after merging all sources. The API address default
// matches the conventional local deployment of the Noted server.
const (
	DefaultAPIAddress     = "http://127.0.0.1:5000"
	DefaultRequestTimeout = 15 * time.Second
	DefaultStorageDSN     = "noted.db"
)

// GetConfig loads, merges, and validates the client configuration from all
// available sources in the following priority order (first non-zero value
// wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Missing API and storage settings fall back to the defaults above.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
