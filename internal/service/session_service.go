package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/pkg/auth"
)

// ErrSessionInvalid is returned for unknown or expired session ids.
var ErrSessionInvalid = errors.New("invalid session")

// SessionService manages the admin session lifecycle.
// Implements auth.SessionValidator.
type SessionService struct {
	repo repository.SessionRepository
	ttl  time.Duration
}

// NewSessionService creates a SessionService with the fixed 24h TTL.
func NewSessionService(repo repository.SessionRepository) *SessionService {
	return &SessionService{repo: repo, ttl: auth.SessionDuration}
}

// CreateSession generates a new opaque session id, stores it, and returns
// the session.
func (s *SessionService) CreateSession(ctx context.Context) (*model.Session, error) {
	id, err := auth.GenerateSessionID()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	session := &model.Session{
		ID:        id,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return nil, err
	}
	slog.Debug("session created", "expires_at", session.ExpiresAt)
	return session, nil
}

// ValidateSession checks that the session exists and has not expired.
// An expired session is pruned on first sight.
// Implements auth.SessionValidator.
func (s *SessionService) ValidateSession(ctx context.Context, id string) error {
	session, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrSessionInvalid
	}
	if session.Expired(time.Now()) {
		_ = s.repo.DeleteByID(ctx, id)
		return ErrSessionInvalid
	}
	return nil
}

// DeleteSession removes a session (logout).
func (s *SessionService) DeleteSession(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}
