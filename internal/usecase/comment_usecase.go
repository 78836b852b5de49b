package usecase

import (
	"context"

	"critique/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCommentInput defines the data required to comment on a review.
type CreateCommentInput struct {
	Content string
}

// UpdateCommentInput defines the data required to update a comment.
type UpdateCommentInput struct {
	Content string
}

// CommentUsecase defines the business operations on review comments.
// A caller may comment on a given review at most once; update and delete are
// restricted to the comment's owner.
type CommentUsecase interface {
	CreateComment(ctx context.Context, callerID, reviewID uuid.UUID, input *CreateCommentInput) (*entity.Comment, error)
	ListReviewComments(ctx context.Context, reviewID uuid.UUID) ([]*entity.Comment, error)
	UpdateComment(ctx context.Context, callerID, id uuid.UUID, input *UpdateCommentInput) (*entity.Comment, error)
	DeleteComment(ctx context.Context, callerID, id uuid.UUID) error
}
