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

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: params.ReviewRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview creates a review owned by the caller. The owner comes from the
// resolved identity, never from the request body.
func (srv *reviewService) CreateReview(ctx context.Context, callerID uuid.UUID, input *usecase.CreateReviewInput) (*entity.Review, error) {
	srv.log(ctx).Info("Creating review", slog.Any("callerID", callerID), slog.Any("itemID", input.ItemID))

	review := &entity.Review{
		UserID: callerID,
		ItemID: input.ItemID,
		Text:   input.Text,
		Score:  input.Score,
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		srv.log(ctx).Warn("Failed to create review", slog.Any("callerID", callerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.log(ctx).Debug("Review created", slog.Any("reviewID", review.ID))

	return review, nil
}

// GetReview retrieves a single review.
func (srv *reviewService) GetReview(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "review not found")
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return review, nil
}

// ListReviews retrieves reviews, newest first, optionally narrowed to one item.
func (srv *reviewService) ListReviews(ctx context.Context, itemID *uuid.UUID) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.List(ctx, itemID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// UpdateReview replaces the text and score of an existing review. Existence
// is settled before ownership: a missing review reports not found even to a
// caller who would not have owned it, while a live review owned by someone
// else reports forbidden.
func (srv *reviewService) UpdateReview(ctx context.Context, callerID, id uuid.UUID, input *usecase.UpdateReviewInput) (*entity.Review, error) {
	srv.log(ctx).Info("Updating review", slog.Any("callerID", callerID), slog.Any("reviewID", id))

	review, err := srv.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "review not found")
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	// Verify ownership
	if review.UserID != callerID {
		srv.log(ctx).Warn("Review update rejected", slog.Any("callerID", callerID), slog.Any("reviewID", id))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "review does not belong to user")
	}

	review.Text = input.Text
	review.Score = input.Score

	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		srv.log(ctx).Warn("Failed to update review", slog.Any("reviewID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update review")
	}

	return review, nil
}

// DeleteReview removes a review the caller owns, with the same existence
// before ownership ordering as UpdateReview.
func (srv *reviewService) DeleteReview(ctx context.Context, callerID, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting review", slog.Any("callerID", callerID), slog.Any("reviewID", id))

	review, err := srv.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "review not found")
		}

		return errors.Wrap(err, "failed to find review")
	}

	// Verify ownership
	if review.UserID != callerID {
		srv.log(ctx).Warn("Review delete rejected", slog.Any("callerID", callerID), slog.Any("reviewID", id))

		return errors.Wrap(domainerrors.ErrForbidden, "review does not belong to user")
	}

	if err := srv.reviewRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "review not found")
		}

		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}
