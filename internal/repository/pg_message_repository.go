package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// queryTimeout bounds every database operation so a stalled connection
// surfaces as a request error instead of hanging the handler.
const queryTimeout = 5 * time.Second

// PgMessageRepository is the PostgreSQL implementation of MessageRepository.
// The database assigns the canonical id (gen_random_uuid) and created_at.
type PgMessageRepository struct {
	pool *pgxpool.Pool
}

// NewPgMessageRepository creates a PgMessageRepository backed by the given pool.
func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

var _ MessageRepository = (*PgMessageRepository)(nil)

// Save inserts a new messages row and populates msg.ID and msg.CreatedAt
// from the RETURNING clause.
func (r *PgMessageRepository) Save(ctx context.Context, msg *model.Message) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.pool.QueryRow(ctx,
		`INSERT INTO messages (name, email, subject, message)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		msg.Name, msg.Email, msg.Subject, msg.Message,
	).Scan(&msg.ID, &msg.CreatedAt)
}

// List returns all messages ordered by created_at descending.
func (r *PgMessageRepository) List(ctx context.Context) ([]*model.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, subject, message, created_at
		 FROM messages
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}

// Delete removes the message with the given id. Returns false when no row
// matched.
func (r *PgMessageRepository) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	// id::text comparison keeps a malformed id a "not found" rather than a
	// uuid parse error from the database.
	tag, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE id::text = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Ping reports database reachability for the health endpoint.
func (r *PgMessageRepository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.pool.Ping(ctx)
}
