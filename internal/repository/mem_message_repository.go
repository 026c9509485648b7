package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/portfolio/backend/internal/model"
)

// MemMessageRepository is the in-memory implementation of MessageRepository.
// It is the startup fallback when no database is configured or the
// configured one is unreachable; contents are lost on process restart.
type MemMessageRepository struct {
	mu       sync.RWMutex
	seq      uint64
	messages map[string]memEntry
}

// memEntry keeps the insertion sequence alongside the message so listing
// stays newest-first even when two saves land on the same timestamp.
type memEntry struct {
	msg *model.Message
	seq uint64
}

// NewMemMessageRepository creates an empty in-memory message store.
func NewMemMessageRepository() *MemMessageRepository {
	return &MemMessageRepository{messages: make(map[string]memEntry)}
}

var _ MessageRepository = (*MemMessageRepository)(nil)

// Save assigns a fresh id and creation timestamp and stores a copy of msg.
func (r *MemMessageRepository) Save(ctx context.Context, msg *model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg.ID = uuid.NewString()
	msg.CreatedAt = time.Now().UTC()

	stored := *msg
	r.seq++
	r.messages[msg.ID] = memEntry{msg: &stored, seq: r.seq}
	return nil
}

// List returns copies of all messages, newest first.
func (r *MemMessageRepository) List(ctx context.Context) ([]*model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]memEntry, 0, len(r.messages))
	for _, e := range r.messages {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.msg.CreatedAt.Equal(b.msg.CreatedAt) {
			return a.msg.CreatedAt.After(b.msg.CreatedAt)
		}
		return a.seq > b.seq
	})

	messages := make([]*model.Message, len(entries))
	for i, e := range entries {
		m := *e.msg
		messages[i] = &m
	}
	return messages, nil
}

// Delete removes the message with the given id, reporting whether it existed.
func (r *MemMessageRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.messages[id]; !ok {
		return false, nil
	}
	delete(r.messages, id)
	return true, nil
}

// Ping always succeeds; process memory is never unreachable.
func (r *MemMessageRepository) Ping(ctx context.Context) error {
	return nil
}
