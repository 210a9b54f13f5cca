// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noted Authors

// Package client implements the interactive client application runtime.
//
// It wires terminal UI flows, application services, and the background
// cache refresher into a single process lifecycle.
package client
