// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noted Authors

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	t.Setenv("NOTED_CONFIG", "/path/to/config.json")
	t.Setenv("API_ADDRESS", "http://notes.example:5000")
	t.Setenv("API_REQUEST_TIMEOUT", "30s")
	t.Setenv("STORAGE_DSN", "/tmp/noted.db")
	t.Setenv("WORKERS_REFRESH_INTERVAL", "1m")

	cfg := &Config{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "http://notes.example:5000", cfg.API.Address)
	assert.Equal(t, 30*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "/tmp/noted.db", cfg.Storage.DSN)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseEnv_Empty(t *testing.T) {
	cfg := &Config{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Zero(t, *cfg)
}

func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("API_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &Config{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
