package repository

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// SessionRepository handles persistence for admin sessions.
type SessionRepository interface {
	Create(ctx context.Context, s *model.Session) error
	// FindByID returns ErrNotFound when the session does not exist.
	FindByID(ctx context.Context, id string) (*model.Session, error)
	DeleteByID(ctx context.Context, id string) error
}
