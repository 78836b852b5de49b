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

// itemService implements the ItemUsecase interface. Items carry no owner, so
// mutations only require that the caller is authenticated; the handlers
// guarantee that by the time callerID reaches this layer.
type itemService struct {
	itemRepo repository.ItemRepository
	logger   *slog.Logger
}

// ItemServiceParams holds dependencies for ItemService, injected by Fx.
type ItemServiceParams struct {
	fx.In

	ItemRepo repository.ItemRepository
	Logger   *slog.Logger
}

// NewItemService is the constructor for itemService.
func NewItemService(params ItemServiceParams) usecase.ItemUsecase {
	return &itemService{
		itemRepo: params.ItemRepo,
		logger:   params.Logger,
	}
}

func (srv *itemService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateItem adds a new entry to the catalog. Title uniqueness is enforced by
// the storage constraint.
func (srv *itemService) CreateItem(ctx context.Context, callerID uuid.UUID, input *usecase.CreateItemInput) (*entity.Item, error) {
	srv.log(ctx).Info("Creating item", slog.Any("callerID", callerID), slog.String("title", input.Title))

	item := &entity.Item{
		Title:   input.Title,
		Details: input.Details,
	}

	if err := srv.itemRepo.Create(ctx, item); err != nil {
		srv.log(ctx).Warn("Failed to create item", slog.String("title", input.Title), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create item")
	}

	srv.log(ctx).Debug("Item created", slog.Any("itemID", item.ID))

	return item, nil
}

// GetItem retrieves a single catalog item.
func (srv *itemService) GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := srv.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "item not found")
		}

		return nil, errors.Wrap(err, "failed to find item")
	}

	return item, nil
}

// ListItems retrieves the whole catalog, newest first.
func (srv *itemService) ListItems(ctx context.Context) ([]*entity.Item, error) {
	items, err := srv.itemRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	return items, nil
}

// UpdateItem replaces the title and details of an existing item.
func (srv *itemService) UpdateItem(ctx context.Context, callerID, id uuid.UUID, input *usecase.UpdateItemInput) (*entity.Item, error) {
	srv.log(ctx).Info("Updating item", slog.Any("callerID", callerID), slog.Any("itemID", id))

	item, err := srv.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "item not found")
		}

		return nil, errors.Wrap(err, "failed to find item")
	}

	item.Title = input.Title
	item.Details = input.Details

	if err := srv.itemRepo.Update(ctx, item); err != nil {
		srv.log(ctx).Warn("Failed to update item", slog.Any("itemID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update item")
	}

	return item, nil
}

// DeleteItem removes an item from the catalog.
func (srv *itemService) DeleteItem(ctx context.Context, callerID, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting item", slog.Any("callerID", callerID), slog.Any("itemID", id))

	if err := srv.itemRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "item not found")
		}

		return errors.Wrap(err, "failed to delete item")
	}

	return nil
}
