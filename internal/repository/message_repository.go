package repository

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// MessageRepository defines the persistence interface for contact messages.
// Implementations are interchangeable; one is selected at process startup
// and used for the lifetime of the process.
type MessageRepository interface {
	// Save persists a new message and populates msg.ID and msg.CreatedAt.
	Save(ctx context.Context, msg *model.Message) error

	// List returns every stored message, newest first.
	List(ctx context.Context) ([]*model.Message, error)

	// Delete removes the message with the given id. It reports whether a
	// record was actually removed, distinguishing "not found" from success.
	Delete(ctx context.Context, id string) (bool, error)

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
