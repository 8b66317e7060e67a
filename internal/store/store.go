package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sobara/commentbox/internal/model"
)

var ErrCommentNotFound = errors.New("comment not found")

// CommentStore defines the contract for comment persistence. Comments are
// addressable two ways: by id for moderation updates, by page for reads.
type CommentStore interface {
	// Create persists a new pending comment, assigning its id and
	// creation time server-side.
	Create(ctx context.Context, pageID, displayName, body string) (model.Comment, error)
	// GetByPage returns every comment for the page, pending included, in
	// no guaranteed order. Display ordering is the reader's concern.
	GetByPage(ctx context.Context, pageID string) ([]model.Comment, error)
	// GetByID returns a single comment or ErrCommentNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (model.Comment, error)
	// Approve sets the approved flag. Idempotent: approving an already
	// approved comment is a no-op. Returns ErrCommentNotFound for
	// unknown ids.
	Approve(ctx context.Context, id uuid.UUID) error
}
