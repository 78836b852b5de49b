package usecase

import (
	"context"

	"critique/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput defines the data required to create a review.
// The owner is never part of the input; it is stamped from the resolved
// caller identity.
type CreateReviewInput struct {
	ItemID uuid.UUID
	Text   string
	Score  int
}

// UpdateReviewInput defines the data required to update a review.
type UpdateReviewInput struct {
	Text  string
	Score int
}

// ReviewUsecase defines the business operations on reviews.
// Reads are public; update and delete are restricted to the review's owner.
type ReviewUsecase interface {
	CreateReview(ctx context.Context, callerID uuid.UUID, input *CreateReviewInput) (*entity.Review, error)
	GetReview(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	ListReviews(ctx context.Context, itemID *uuid.UUID) ([]*entity.Review, error)
	UpdateReview(ctx context.Context, callerID, id uuid.UUID, input *UpdateReviewInput) (*entity.Review, error)
	DeleteReview(ctx context.Context, callerID, id uuid.UUID) error
}
