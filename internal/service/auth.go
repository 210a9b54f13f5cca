// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noted Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/noted-app/noted/internal/adapter"
	"github.com/noted-app/noted/internal/logger"
	"github.com/noted-app/noted/internal/session"
	"github.com/noted-app/noted/internal/store"
	"github.com/noted-app/noted/models"
)

type authService struct {
	api     adapter.NotesAPI
	session *session.Session
	repo    store.SessionRepository
	now     func() time.Time
	logger  *logger.Logger
}

// NewAuthService wires the transport, the in-memory session holder and the
// durable session repository into an [AuthService].
func NewAuthService(api adapter.NotesAPI, sess *session.Session, repo store.SessionRepository, l *logger.Logger) AuthService {
	return &authService{
		api:     api,
		session: sess,
		repo:    repo,
		now:     time.Now,
		logger:  l.GetChildLogger(),
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (models.Credential, error) {
	cred, err := s.api.Login(ctx, models.LoginRequest{Username: username, Password: password})
	if err != nil {
		s.logger.Warn().Err(err).Str("username", username).Msg("login failed")
		return models.Credential{}, fmt.Errorf("login: %w", err)
	}

	s.session.Set(cred)

	rec := models.SessionRecord{
		Credential: cred,
		Token:      s.api.Token(),
		SavedAt:    s.now(),
	}
	if err := s.repo.Save(ctx, rec); err != nil {
		// The in-memory session is already usable; a failed durable write
		// only costs the user a re-login after restart.
		s.logger.Error().Err(err).Msg("saving session record failed")
	}

	s.logger.Info().Str("userID", cred.ID).Msg("logged in")
	return cred, nil
}

func (s *authService) SignUp(ctx context.Context, username, password string) error {
	err := s.api.SignUp(ctx, models.SignUpRequest{Username: username, Password: password})
	if err != nil {
		s.logger.Warn().Err(err).Str("username", username).Msg("sign-up failed")
		return fmt.Errorf("sign-up: %w", err)
	}
	s.logger.Info().Str("username", username).Msg("account created")
	return nil
}

func (s *authService) RestoreSession(ctx context.Context) (models.Credential, error) {
	rec, err := s.repo.Load(ctx)
	if err != nil {
		return models.Credential{}, fmt.Errorf("restore session: %w", err)
	}

	if tokenExpired(rec.Token, s.now()) {
		s.logger.Info().Str("userID", rec.Credential.ID).Msg("persisted session token expired")
		if err := s.repo.Delete(ctx); err != nil {
			s.logger.Error().Err(err).Msg("deleting expired session record failed")
		}
		return models.Credential{}, fmt.Errorf("restore session: %w", store.ErrSessionNotFound)
	}

	s.api.SetToken(rec.Token)
	s.session.Set(rec.Credential)

	s.logger.Info().Str("userID", rec.Credential.ID).Msg("session restored")
	return rec.Credential, nil
}

func (s *authService) Logout(ctx context.Context) error {
	cred, _ := s.session.Current()
	s.session.Clear()
	s.api.SetToken("")

	if err := s.repo.Delete(ctx); err != nil && !errors.Is(err, store.ErrSessionNotFound) {
		s.logger.Error().Err(err).Msg("deleting session record failed")
		return fmt.Errorf("logout: %w", err)
	}

	s.logger.Info().Str("userID", cred.ID).Msg("logged out")
	return nil
}

// tokenExpired reports whether token carries an exp claim in the past. The
// signature is not verified: the server remains the authority and will
// reject a bad token anyway, this check only avoids starting the UI on a
// session that is certain to fail. Tokens that do not parse, or that carry
// no exp claim, are given the benefit of the doubt.
func tokenExpired(token string, now time.Time) bool {
	if token == "" {
		return false
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
