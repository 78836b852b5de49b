package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"critique/config"
	"critique/internal/domain/entity"
	domainerrors "critique/internal/domain/errors"
	"critique/internal/domain/repository"
	"critique/internal/infra/auth"
	"critique/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// The fakes below stand in for the Postgres repositories and enforce the same
// constraints in memory: unique usernames, unique item titles, and one
// comment per (user, review) pair. They return the same domain errors the
// real repositories translate constraint violations into, so the services
// behave identically on top of either.

type fakeUserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user

	return &copied, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return domainerrors.ErrUsernameTaken.WrapMessage("username already exists")
		}
	}

	user.ID = uuid.New()
	copied := *user
	r.users[user.ID] = &copied

	return nil
}

func (r *fakeUserRepo) count(username string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, user := range r.users {
		if user.Username == username {
			n++
		}
	}

	return n
}

type fakeItemRepo struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[uuid.UUID]*entity.Item)}
}

func (r *fakeItemRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, repository.ErrItemNotFound
	}
	copied := *item

	return &copied, nil
}

func (r *fakeItemRepo) List(_ context.Context) ([]*entity.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Item, 0, len(r.items))
	for _, item := range r.items {
		copied := *item
		out = append(out, &copied)
	}

	return out, nil
}

func (r *fakeItemRepo) Create(_ context.Context, item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.Title == item.Title {
			return domainerrors.ErrDuplicateTitle.WrapMessage("item title already exists")
		}
	}

	item.ID = uuid.New()
	copied := *item
	r.items[item.ID] = &copied

	return nil
}

func (r *fakeItemRepo) Update(_ context.Context, item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return repository.ErrItemNotFound
	}
	copied := *item
	r.items[item.ID] = &copied

	return nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return repository.ErrItemNotFound
	}
	delete(r.items, id)

	return nil
}

type fakeReviewRepo struct {
	mu      sync.RWMutex
	reviews map[uuid.UUID]*entity.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[uuid.UUID]*entity.Review)}
}

func (r *fakeReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	review, ok := r.reviews[id]
	if !ok {
		return nil, repository.ErrReviewNotFound
	}
	copied := *review

	return &copied, nil
}

func (r *fakeReviewRepo) List(_ context.Context, itemID *uuid.UUID) ([]*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Review, 0, len(r.reviews))
	for _, review := range r.reviews {
		if itemID != nil && review.ItemID != *itemID {
			continue
		}
		copied := *review
		out = append(out, &copied)
	}

	return out, nil
}

func (r *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	review.ID = uuid.New()
	copied := *review
	r.reviews[review.ID] = &copied

	return nil
}

func (r *fakeReviewRepo) Update(_ context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reviews[review.ID]; !ok {
		return repository.ErrReviewNotFound
	}
	copied := *review
	r.reviews[review.ID] = &copied

	return nil
}

func (r *fakeReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reviews[id]; !ok {
		return repository.ErrReviewNotFound
	}
	delete(r.reviews, id)

	return nil
}

type fakeCommentRepo struct {
	mu       sync.RWMutex
	comments map[uuid.UUID]*entity.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[uuid.UUID]*entity.Comment)}
}

func (r *fakeCommentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comment, ok := r.comments[id]
	if !ok {
		return nil, repository.ErrCommentNotFound
	}
	copied := *comment

	return &copied, nil
}

func (r *fakeCommentRepo) ListByReviewID(_ context.Context, reviewID uuid.UUID) ([]*entity.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Comment, 0)
	for _, comment := range r.comments {
		if comment.ReviewID == reviewID {
			copied := *comment
			out = append(out, &copied)
		}
	}

	return out, nil
}

func (r *fakeCommentRepo) Create(_ context.Context, comment *entity.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.comments {
		if existing.UserID == comment.UserID && existing.ReviewID == comment.ReviewID {
			return domainerrors.ErrDuplicateComment.WrapMessage("user already commented on this review")
		}
	}

	comment.ID = uuid.New()
	copied := *comment
	r.comments[comment.ID] = &copied

	return nil
}

func (r *fakeCommentRepo) Update(_ context.Context, comment *entity.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.comments[comment.ID]; !ok {
		return repository.ErrCommentNotFound
	}
	copied := *comment
	r.comments[comment.ID] = &copied

	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.comments[id]; !ok {
		return repository.ErrCommentNotFound
	}
	delete(r.comments, id)

	return nil
}

// flowFixtures wires every service over the in-memory fakes with a real
// bcrypt hasher and a real JWT signer, so a whole account-and-review
// lifecycle can run without a database.
type flowFixtures struct {
	userSvc     usecase.UserUsecase
	identitySvc usecase.IdentityUsecase
	itemSvc     usecase.ItemUsecase
	reviewSvc   usecase.ReviewUsecase
	commentSvc  usecase.CommentUsecase
	userRepo    *fakeUserRepo
}

func createFlowFixtures(t *testing.T) flowFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "flow-test-secret-key-0123456789abcdef"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	userRepo := newFakeUserRepo()
	itemRepo := newFakeItemRepo()
	reviewRepo := newFakeReviewRepo()
	commentRepo := newFakeCommentRepo()

	return flowFixtures{
		userSvc: NewUserService(UserServiceParams{
			UserRepo:     userRepo,
			Hasher:       hasher,
			TokenService: tokenSvc,
			Logger:       logger,
		}),
		identitySvc: NewIdentityService(IdentityServiceParams{
			UserRepo:     userRepo,
			TokenService: tokenSvc,
			Logger:       logger,
		}),
		itemSvc: NewItemService(ItemServiceParams{
			ItemRepo: itemRepo,
			Logger:   logger,
		}),
		reviewSvc: NewReviewService(ReviewServiceParams{
			ReviewRepo: reviewRepo,
			Logger:     logger,
		}),
		commentSvc: NewCommentService(CommentServiceParams{
			CommentRepo: commentRepo,
			ReviewRepo:  reviewRepo,
			Logger:      logger,
		}),
		userRepo: userRepo,
	}
}

// registerAndLogin creates an account and resolves its token back to an
// identity, the same path the HTTP layer walks per request.
func registerAndLogin(t *testing.T, fx flowFixtures, username, password string) *entity.User {
	t.Helper()
	ctx := context.Background()

	_, err := fx.userSvc.Register(ctx, &usecase.RegisterInput{Username: username, Password: password})
	require.NoError(t, err)

	login, err := fx.userSvc.Login(ctx, &usecase.LoginInput{Username: username, Password: password})
	require.NoError(t, err)
	require.NotEmpty(t, login.AccessToken)

	user, err := fx.identitySvc.Resolve(ctx, login.AccessToken)
	require.NoError(t, err)
	require.Equal(t, login.User.ID, user.ID)

	return user
}

func TestServiceFlow_AccountAndReviewLifecycle(t *testing.T) {
	fx := createFlowFixtures(t)
	ctx := context.Background()

	alice := registerAndLogin(t, fx, "alice", "pw1-and-padding")
	bob := registerAndLogin(t, fx, "bob", "pw2-and-padding")

	// Registering alice again fails and leaves exactly one account.
	_, err := fx.userSvc.Register(ctx, &usecase.RegisterInput{Username: "alice", Password: "pw1-and-padding"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
	assert.Equal(t, 1, fx.userRepo.count("alice"))

	// Alice adds an item; anyone can read it without an identity.
	item, err := fx.itemSvc.CreateItem(ctx, alice.ID, &usecase.CreateItemInput{Title: "Book", Details: "A decent read."})
	require.NoError(t, err)

	readItem, err := fx.itemSvc.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Book", readItem.Title)

	// Alice reviews the item.
	review, err := fx.reviewSvc.CreateReview(ctx, alice.ID, &usecase.CreateReviewInput{
		ItemID: item.ID,
		Text:   "ok",
		Score:  3,
	})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, review.UserID)

	// Bob may not delete a review he does not own, and the rejected attempt
	// leaves the review untouched.
	err = fx.reviewSvc.DeleteReview(ctx, bob.ID, review.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	unchanged, err := fx.reviewSvc.GetReview(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, "ok", unchanged.Text)
	assert.Equal(t, 3, unchanged.Score)

	// Bob may comment, but only once per review.
	_, err = fx.commentSvc.CreateComment(ctx, bob.ID, review.ID, &usecase.CreateCommentInput{Content: "Fair take."})
	require.NoError(t, err)

	_, err = fx.commentSvc.CreateComment(ctx, bob.ID, review.ID, &usecase.CreateCommentInput{Content: "One more thought."})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateComment))

	comments, err := fx.commentSvc.ListReviewComments(ctx, review.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Fair take.", comments[0].Content)

	// Alice deletes her own review and it is gone for everyone.
	err = fx.reviewSvc.DeleteReview(ctx, alice.ID, review.ID)
	require.NoError(t, err)

	_, err = fx.reviewSvc.GetReview(ctx, review.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))

	// Deleting an id that never existed is not found, never forbidden.
	err = fx.reviewSvc.DeleteReview(ctx, bob.ID, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	assert.False(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestServiceFlow_StaleTokenAfterAccountRemoval(t *testing.T) {
	fx := createFlowFixtures(t)
	ctx := context.Background()

	alice := registerAndLogin(t, fx, "alice", "pw1-and-padding")

	login, err := fx.userSvc.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "pw1-and-padding"})
	require.NoError(t, err)

	// Simulate the account disappearing after the token was issued.
	fx.userRepo.mu.Lock()
	delete(fx.userRepo.users, alice.ID)
	fx.userRepo.mu.Unlock()

	_, err = fx.identitySvc.Resolve(ctx, login.AccessToken)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}
