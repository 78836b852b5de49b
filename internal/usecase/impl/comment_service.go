package impl

import (
	"context"
	"log/slog"

	deliverycontext "critique/internal/delivery/context"
	"critique/internal/domain/entity"
	domainerrors "critique/internal/domain/errors"
	"critique/internal/domain/repository"
	"critique/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// commentService implements the CommentUsecase interface.
type commentService struct {
	commentRepo repository.CommentRepository
	reviewRepo  repository.ReviewRepository
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	CommentRepo repository.CommentRepository
	ReviewRepo  repository.ReviewRepository
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		commentRepo: params.CommentRepo,
		reviewRepo:  params.ReviewRepo,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateComment adds the caller's comment to a review. The owner comes from
// the resolved identity. There is no pre-check for an earlier comment by the
// same caller: the insert races straight into the composite unique index, so
// exactly one of two concurrent duplicates survives and the other surfaces
// ErrDuplicateComment.
func (srv *commentService) CreateComment(ctx context.Context, callerID, reviewID uuid.UUID, input *usecase.CreateCommentInput) (*entity.Comment, error) {
	srv.log(ctx).Info("Creating comment", slog.Any("callerID", callerID), slog.Any("reviewID", reviewID))

	comment := &entity.Comment{
		UserID:   callerID,
		ReviewID: reviewID,
		Content:  input.Content,
	}

	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		srv.log(ctx).Warn("Failed to create comment", slog.Any("callerID", callerID), slog.Any("reviewID", reviewID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create comment")
	}

	srv.log(ctx).Debug("Comment created", slog.Any("commentID", comment.ID))

	return comment, nil
}

// ListReviewComments retrieves all comments on a review, oldest first. The
// review must exist; listing a missing review is not found, not an empty list.
func (srv *commentService) ListReviewComments(ctx context.Context, reviewID uuid.UUID) ([]*entity.Comment, error) {
	if _, err := srv.reviewRepo.FindByID(ctx, reviewID); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "review not found")
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	comments, err := srv.commentRepo.ListByReviewID(ctx, reviewID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

// UpdateComment replaces the content of an existing comment. Existence is
// settled before ownership, matching the review operations.
func (srv *commentService) UpdateComment(ctx context.Context, callerID, id uuid.UUID, input *usecase.UpdateCommentInput) (*entity.Comment, error) {
	srv.log(ctx).Info("Updating comment", slog.Any("callerID", callerID), slog.Any("commentID", id))

	comment, err := srv.commentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "comment not found")
		}

		return nil, errors.Wrap(err, "failed to find comment")
	}

	// Verify ownership
	if comment.UserID != callerID {
		srv.log(ctx).Warn("Comment update rejected", slog.Any("callerID", callerID), slog.Any("commentID", id))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "comment does not belong to user")
	}

	comment.Content = input.Content

	if err := srv.commentRepo.Update(ctx, comment); err != nil {
		srv.log(ctx).Warn("Failed to update comment", slog.Any("commentID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update comment")
	}

	return comment, nil
}

// DeleteComment removes a comment the caller owns.
func (srv *commentService) DeleteComment(ctx context.Context, callerID, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting comment", slog.Any("callerID", callerID), slog.Any("commentID", id))

	comment, err := srv.commentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "comment not found")
		}

		return errors.Wrap(err, "failed to find comment")
	}

	// Verify ownership
	if comment.UserID != callerID {
		srv.log(ctx).Warn("Comment delete rejected", slog.Any("callerID", callerID), slog.Any("commentID", id))

		return errors.Wrap(domainerrors.ErrForbidden, "comment does not belong to user")
	}

	if err := srv.commentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "comment not found")
		}

		return errors.Wrap(err, "failed to delete comment")
	}

	return nil
}
