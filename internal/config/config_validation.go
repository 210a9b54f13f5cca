// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noted Authors

package config

// validate checks that the final merged [Config] satisfies all invariants
// before it is used at startup. It runs after defaults are applied, so only
// values a source set explicitly can be invalid here.
func (cfg *Config) validate() error {
	if cfg.API.Address == "" || cfg.API.RequestTimeout <= 0 {
		return ErrInvalidAPIConfigs
	}

	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
