// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noted Authors

// Package session holds the in-memory authenticated identity for the
// lifetime of the client process.
//
// The session object is created once at application start and passed
// explicitly to every component that needs identity; there is no ambient
// global lookup. Setting the session does NOT persist it: durable
// persistence is the caller's responsibility at the point of login (write)
// and logout (delete), so in-memory and durable state can transiently
// diverge between a Set call and the paired storage write.
package session

import (
	"sync"

	"github.com/noted-app/noted/models"
)

// Session is the holder of the current credential. The zero value is a
// sessionless holder ready for use.
type Session struct {
	mu   sync.RWMutex
	cred models.Credential
	set  bool
}

// New returns an empty session holder.
func New() *Session {
	return &Session{}
}

// Current returns the credential and whether one is set.
func (s *Session) Current() (models.Credential, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cred, s.set
}

// Set replaces the in-memory credential. It does not touch durable storage.
func (s *Session) Set(cred models.Credential) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = cred
	s.set = cred.Valid()
}

// Clear drops the in-memory credential. It does not touch durable storage.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = models.Credential{}
	s.set = false
}
