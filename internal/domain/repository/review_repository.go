package repository

import (
	"context"
	"errors"

	"critique/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is a domain-specific error returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the standard operations for review persistence.
type ReviewRepository interface {
	// FindByID retrieves a single review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// List retrieves reviews, newest first. A non-nil itemID narrows the
	// result to reviews of that item.
	List(ctx context.Context, itemID *uuid.UUID) ([]*entity.Review, error)

	// Create persists a new review entity to the storage.
	Create(ctx context.Context, review *entity.Review) error

	// Update modifies an existing review entity in the storage.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes a review by its unique ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
