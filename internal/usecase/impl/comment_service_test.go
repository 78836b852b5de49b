package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"critique/internal/domain/entity"
	domainerrors "critique/internal/domain/errors"
	"critique/internal/domain/repository"
	mockRepo "critique/internal/mocks/repository"
	"critique/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// commentServiceFixtures holds all test dependencies for comment service tests.
type commentServiceFixtures struct {
	service     usecase.CommentUsecase
	commentRepo *mockRepo.MockCommentRepository
	reviewRepo  *mockRepo.MockReviewRepository
}

func createTestCommentService(t *testing.T) commentServiceFixtures {
	commentRepo := mockRepo.NewMockCommentRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewCommentService(CommentServiceParams{
		CommentRepo: commentRepo,
		ReviewRepo:  reviewRepo,
		Logger:      logger,
	})

	return commentServiceFixtures{
		service:     svc,
		commentRepo: commentRepo,
		reviewRepo:  reviewRepo,
	}
}

func TestCommentService_CreateComment_StampsCaller(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	callerID := uuid.New()
	reviewID := uuid.New()
	input := &usecase.CreateCommentInput{Content: "Agreed on the boiler"}

	var created *entity.Comment

	fx.commentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Comment")).
		Run(func(ctx context.Context, comment *entity.Comment) {
			comment.ID = uuid.New()
			created = comment
		}).
		Return(nil)

	comment, err := fx.service.CreateComment(ctx, callerID, reviewID, input)

	require.NoError(t, err)
	require.NotNil(t, comment)
	assert.Equal(t, callerID, created.UserID)
	assert.Equal(t, reviewID, created.ReviewID)
	assert.Equal(t, input.Content, comment.Content)
}

func TestCommentService_CreateComment_Duplicate(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	callerID := uuid.New()
	reviewID := uuid.New()

	fx.commentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Comment")).
		Return(domainerrors.ErrDuplicateComment.WrapMessage("user already commented on this review"))

	comment, err := fx.service.CreateComment(ctx, callerID, reviewID, &usecase.CreateCommentInput{Content: "again"})

	assert.Error(t, err)
	assert.Nil(t, comment)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateComment))
}

func TestCommentService_CreateComment_ReviewGone(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()

	fx.commentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Comment")).
		Return(domainerrors.ErrNotFound.WrapMessage("review does not exist"))

	comment, err := fx.service.CreateComment(ctx, uuid.New(), uuid.New(), &usecase.CreateCommentInput{Content: "late"})

	assert.Error(t, err)
	assert.Nil(t, comment)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCommentService_ListReviewComments_Success(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	reviewID := uuid.New()
	review := &entity.Review{ID: reviewID, Score: 4}
	expected := []*entity.Comment{
		{ID: uuid.New(), ReviewID: reviewID, Content: "first"},
		{ID: uuid.New(), ReviewID: reviewID, Content: "second"},
	}

	fx.reviewRepo.EXPECT().FindByID(ctx, reviewID).Return(review, nil)
	fx.commentRepo.EXPECT().ListByReviewID(ctx, reviewID).Return(expected, nil)

	comments, err := fx.service.ListReviewComments(ctx, reviewID)

	require.NoError(t, err)
	assert.Equal(t, expected, comments)
}

func TestCommentService_ListReviewComments_ReviewNotFound(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	reviewID := uuid.New()

	fx.reviewRepo.EXPECT().FindByID(ctx, reviewID).Return(nil, repository.ErrReviewNotFound)

	comments, err := fx.service.ListReviewComments(ctx, reviewID)

	assert.Error(t, err)
	assert.Nil(t, comments)
	// A missing review is an error, not an empty list.
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	fx.commentRepo.AssertNotCalled(t, "ListByReviewID", mock.Anything, mock.Anything)
}

func TestCommentService_UpdateComment_Success(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	callerID := uuid.New()
	commentID := uuid.New()
	input := &usecase.UpdateCommentInput{Content: "Edited"}

	existing := &entity.Comment{ID: commentID, UserID: callerID, Content: "Original"}

	fx.commentRepo.EXPECT().FindByID(ctx, commentID).Return(existing, nil)
	fx.commentRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Comment")).Return(nil)

	comment, err := fx.service.UpdateComment(ctx, callerID, commentID, input)

	require.NoError(t, err)
	require.NotNil(t, comment)
	assert.Equal(t, input.Content, comment.Content)
}

func TestCommentService_UpdateComment_NotOwner(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	commentID := uuid.New()

	existing := &entity.Comment{ID: commentID, UserID: uuid.New(), Content: "Original"}

	fx.commentRepo.EXPECT().FindByID(ctx, commentID).Return(existing, nil)

	comment, err := fx.service.UpdateComment(ctx, uuid.New(), commentID, &usecase.UpdateCommentInput{Content: "hijack"})

	assert.Error(t, err)
	assert.Nil(t, comment)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	fx.commentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCommentService_UpdateComment_MissingBeatsForbidden(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	commentID := uuid.New()

	fx.commentRepo.EXPECT().FindByID(ctx, commentID).Return(nil, repository.ErrCommentNotFound)

	comment, err := fx.service.UpdateComment(ctx, uuid.New(), commentID, &usecase.UpdateCommentInput{Content: "x"})

	assert.Error(t, err)
	assert.Nil(t, comment)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	assert.False(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestCommentService_DeleteComment_Success(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	callerID := uuid.New()
	commentID := uuid.New()

	existing := &entity.Comment{ID: commentID, UserID: callerID}

	fx.commentRepo.EXPECT().FindByID(ctx, commentID).Return(existing, nil)
	fx.commentRepo.EXPECT().Delete(ctx, commentID).Return(nil)

	err := fx.service.DeleteComment(ctx, callerID, commentID)

	require.NoError(t, err)
}

func TestCommentService_DeleteComment_NotOwner(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	commentID := uuid.New()

	existing := &entity.Comment{ID: commentID, UserID: uuid.New()}

	fx.commentRepo.EXPECT().FindByID(ctx, commentID).Return(existing, nil)

	err := fx.service.DeleteComment(ctx, uuid.New(), commentID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	fx.commentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCommentService_DeleteComment_NotFound(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	commentID := uuid.New()

	fx.commentRepo.EXPECT().FindByID(ctx, commentID).Return(nil, repository.ErrCommentNotFound)

	err := fx.service.DeleteComment(ctx, uuid.New(), commentID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
