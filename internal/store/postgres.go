package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sobara/commentbox/internal/model"
)

// PostgresCommentStore persists comments in Postgres. The comments table
// carries a secondary index on page_id for the read path.
type PostgresCommentStore struct {
	pool *pgxpool.Pool
}

func NewPostgresCommentStore(pool *pgxpool.Pool) *PostgresCommentStore {
	return &PostgresCommentStore{pool: pool}
}

func (s *PostgresCommentStore) Create(ctx context.Context, pageID, displayName, body string) (model.Comment, error) {
	const q = `
        INSERT INTO comments (id, page_id, display_name, body, approved)
        VALUES ($1, $2, $3, $4, false)
        RETURNING id, page_id, display_name, body, created_at, approved
    `
	var c model.Comment
	err := s.pool.QueryRow(ctx, q, uuid.New(), pageID, displayName, body).Scan(
		&c.ID, &c.PageID, &c.DisplayName, &c.Body, &c.CreatedAt, &c.Approved,
	)
	if err != nil {
		return model.Comment{}, err
	}
	return c, nil
}

func (s *PostgresCommentStore) GetByPage(ctx context.Context, pageID string) ([]model.Comment, error) {
	const q = `
        SELECT id, page_id, display_name, body, created_at, approved
        FROM comments
        WHERE page_id = $1
    `
	rows, err := s.pool.Query(ctx, q, pageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.PageID, &c.DisplayName, &c.Body, &c.CreatedAt, &c.Approved); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (s *PostgresCommentStore) GetByID(ctx context.Context, id uuid.UUID) (model.Comment, error) {
	const q = `
        SELECT id, page_id, display_name, body, created_at, approved
        FROM comments
        WHERE id = $1
    `
	var c model.Comment
	err := s.pool.QueryRow(ctx, q, id).Scan(
		&c.ID, &c.PageID, &c.DisplayName, &c.Body, &c.CreatedAt, &c.Approved,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Comment{}, ErrCommentNotFound
	}
	return c, err
}

// Approve flips the approved flag. The update matches the row whether or
// not it is already approved, so repeated approvals stay a no-op.
func (s *PostgresCommentStore) Approve(ctx context.Context, id uuid.UUID) error {
	const q = `
        UPDATE comments
        SET approved = true
        WHERE id = $1
    `
	tag, err := s.pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCommentNotFound
	}
	return nil
}
