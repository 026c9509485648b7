package repository

import (
	"context"
	"sync"

	"github.com/portfolio/backend/internal/model"
)

// memSessionRepository keeps admin sessions in process memory. A single-admin
// site has no use for sessions that survive a restart, so sessions are
// in-memory regardless of which message backend is active.
type memSessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]model.Session
}

// NewMemSessionRepository returns an in-memory SessionRepository.
func NewMemSessionRepository() SessionRepository {
	return &memSessionRepository{sessions: make(map[string]model.Session)}
}

func (r *memSessionRepository) Create(ctx context.Context, s *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = *s
	return nil
}

func (r *memSessionRepository) FindByID(ctx context.Context, id string) (*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r *memSessionRepository) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}
