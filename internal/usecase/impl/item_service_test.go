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

// itemServiceFixtures holds all test dependencies for item service tests.
type itemServiceFixtures struct {
	service  usecase.ItemUsecase
	itemRepo *mockRepo.MockItemRepository
}

func createTestItemService(t *testing.T) itemServiceFixtures {
	itemRepo := mockRepo.NewMockItemRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewItemService(ItemServiceParams{
		ItemRepo: itemRepo,
		Logger:   logger,
	})

	return itemServiceFixtures{
		service:  svc,
		itemRepo: itemRepo,
	}
}

func TestItemService_CreateItem_Success(t *testing.T) {
	fx := createTestItemService(t)

	ctx := context.Background()
	callerID := uuid.New()
	input := &usecase.CreateItemInput{
		Title:   "Espresso Machine",
		Details: "Dual boiler, E61 group head",
	}

	fx.itemRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Item")).
		Run(func(ctx context.Context, item *entity.Item) {
			item.ID = uuid.New()
		}).
		Return(nil)

	item, err := fx.service.CreateItem(ctx, callerID, input)

	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, input.Title, item.Title)
	assert.Equal(t, input.Details, item.Details)
	assert.NotEqual(t, uuid.Nil, item.ID)
}

func TestItemService_CreateItem_DuplicateTitle(t *testing.T) {
	fx := createTestItemService(t)

	ctx := context.Background()
	input := &usecase.CreateItemInput{Title: "Espresso Machine"}

	fx.itemRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Item")).
		Return(domainerrors.ErrDuplicateTitle.WrapMessage("item title already exists"))

	item, err := fx.service.CreateItem(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, item)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateTitle))
}

func TestItemService_GetItem_Success(t *testing.T) {
	fx := createTestItemService(t)

	ctx := context.Background()
	itemID := uuid.New()
	expected := &entity.Item{ID: itemID, Title: "Espresso Machine"}

	fx.itemRepo.EXPECT().FindByID(ctx, itemID).Return(expected, nil)

	item, err := fx.service.GetItem(ctx, itemID)

	require.NoError(t, err)
	assert.Equal(t, expected, item)
}

func TestItemService_GetItem_NotFound(t *testing.T) {
	fx := createTestItemService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().FindByID(ctx, itemID).Return(nil, repository.ErrItemNotFound)

	item, err := fx.service.GetItem(ctx, itemID)

	assert.Error(t, err)
	assert.Nil(t, item)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestItemService_ListItems_Success(t *testing.T) {
	fx := createTestItemService(t)

	ctx := context.Background()
	expected := []*entity.Item{
		{ID: uuid.New(), Title: "Espresso Machine"},
		{ID: uuid.New(), Title: "Mechanical Keyboard"},
	}

	fx.itemRepo.EXPECT().List(ctx).Return(expected, nil)

	items, err := fx.service.ListItems(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, items)
}

func TestItemService_UpdateItem_Success(t *testing.T) {
	fx := createTestItemService(t)

	ctx := context.Background()
	itemID := uuid.New()
	input := &usecase.UpdateItemInput{
		Title:   "Espresso Machine v2",
		Details: "Now with PID",
	}

	existing := &entity.Item{ID: itemID, Title: "Espresso Machine", Details: "Dual boiler"}

	fx.itemRepo.EXPECT().FindByID(ctx, itemID).Return(existing, nil)
	fx.itemRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Item")).Return(nil)

	item, err := fx.service.UpdateItem(ctx, uuid.New(), itemID, input)

	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, input.Title, item.Title)
	assert.Equal(t, input.Details, item.Details)
}

func TestItemService_UpdateItem_NotFound(t *testing.T) {
	fx := createTestItemService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().FindByID(ctx, itemID).Return(nil, repository.ErrItemNotFound)

	item, err := fx.service.UpdateItem(ctx, uuid.New(), itemID, &usecase.UpdateItemInput{Title: "x"})

	assert.Error(t, err)
	assert.Nil(t, item)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	fx.itemRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestItemService_DeleteItem_Success(t *testing.T) {
	fx := createTestItemService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().Delete(ctx, itemID).Return(nil)

	err := fx.service.DeleteItem(ctx, uuid.New(), itemID)

	require.NoError(t, err)
}

func TestItemService_DeleteItem_NotFound(t *testing.T) {
	fx := createTestItemService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().Delete(ctx, itemID).Return(repository.ErrItemNotFound)

	err := fx.service.DeleteItem(ctx, uuid.New(), itemID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
