package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// MessageService defines the business logic for contact messages.
type MessageService interface {
	// Submit stores a new contact message built from the validated input.
	// The returned Message carries the store-assigned id and creation time.
	Submit(ctx context.Context, input *model.MessageInsert) (*model.Message, error)

	// List returns all stored messages, newest first.
	List(ctx context.Context) ([]*model.Message, error)

	// Delete removes a message by id, reporting whether it existed.
	Delete(ctx context.Context, id string) (bool, error)
}
