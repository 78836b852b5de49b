package repository

import (
	"context"
	"errors"

	"critique/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCommentNotFound is a domain-specific error returned when a comment is not found.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines the standard operations for comment persistence.
// Create must surface the storage-level (user_id, review_id) uniqueness as a
// domain error so concurrent duplicate writers are rejected, never merged.
type CommentRepository interface {
	// FindByID retrieves a single comment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// ListByReviewID retrieves all comments on a review, oldest first.
	ListByReviewID(ctx context.Context, reviewID uuid.UUID) ([]*entity.Comment, error)

	// Create persists a new comment entity to the storage.
	Create(ctx context.Context, comment *entity.Comment) error

	// Update modifies an existing comment entity in the storage.
	Update(ctx context.Context, comment *entity.Comment) error

	// Delete removes a comment by its unique ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
