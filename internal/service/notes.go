// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noted Authors

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/noted-app/noted/internal/adapter"
	"github.com/noted-app/noted/internal/logger"
	"github.com/noted-app/noted/internal/session"
	"github.com/noted-app/noted/models"
)

type notesService struct {
	api     adapter.NotesAPI
	session *session.Session
	logger  *logger.Logger

	mu    sync.Mutex
	cache map[string][]models.Note
}

// NewNotesService builds a [NotesService] on top of the transport and the
// in-memory session. Fetched lists are cached per user id until a mutation
// succeeds or the cache is invalidated.
func NewNotesService(api adapter.NotesAPI, sess *session.Session, l *logger.Logger) NotesService {
	return &notesService{
		api:     api,
		session: sess,
		logger:  l.GetChildLogger(),
		cache:   make(map[string][]models.Note),
	}
}

func (s *notesService) List(ctx context.Context) ([]models.Note, error) {
	cred, ok := s.session.Current()
	if !ok {
		return nil, ErrNotAuthenticated
	}

	s.mu.Lock()
	cached, warm := s.cache[cred.ID]
	s.mu.Unlock()
	if warm {
		s.logger.Debug().Str("userID", cred.ID).Int("count", len(cached)).Msg("serving notes from cache")
		return cached, nil
	}

	notes, err := s.api.GetUserNotes(ctx, cred.ID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	s.mu.Lock()
	s.cache[cred.ID] = notes
	s.mu.Unlock()

	s.logger.Debug().Str("userID", cred.ID).Int("count", len(notes)).Msg("fetched notes")
	return notes, nil
}

func (s *notesService) Create(ctx context.Context, text string) error {
	cred, ok := s.session.Current()
	if !ok {
		return ErrNotAuthenticated
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}

	err := s.api.CreateNote(ctx, models.CreateNoteRequest{Note: text, UserID: cred.ID})
	if err != nil {
		s.logger.Warn().Err(err).Str("userID", cred.ID).Msg("create note failed")
		return fmt.Errorf("create note: %w", err)
	}

	s.invalidate(cred.ID)
	return nil
}

func (s *notesService) Update(ctx context.Context, noteID, text string) error {
	cred, ok := s.session.Current()
	if !ok {
		return ErrNotAuthenticated
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}

	err := s.api.UpdateNote(ctx, models.UpdateNoteRequest{NoteID: noteID, NewNote: text, UserID: cred.ID})
	if err != nil {
		s.logger.Warn().Err(err).Str("userID", cred.ID).Str("noteID", noteID).Msg("update note failed")
		return fmt.Errorf("update note: %w", err)
	}

	s.invalidate(cred.ID)
	return nil
}

func (s *notesService) Delete(ctx context.Context, noteID string) error {
	cred, ok := s.session.Current()
	if !ok {
		return ErrNotAuthenticated
	}

	err := s.api.DeleteNote(ctx, models.DeleteNoteRequest{NoteID: noteID, UserID: cred.ID})
	if err != nil {
		s.logger.Warn().Err(err).Str("userID", cred.ID).Str("noteID", noteID).Msg("delete note failed")
		return fmt.Errorf("delete note: %w", err)
	}

	s.invalidate(cred.ID)
	return nil
}

func (s *notesService) Invalidate() {
	cred, ok := s.session.Current()
	if !ok {
		return
	}
	s.invalidate(cred.ID)
}

func (s *notesService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string][]models.Note)
}

func (s *notesService) invalidate(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cache, userID)
}
