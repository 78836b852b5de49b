package usecase

import (
	"context"

	"critique/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateItemInput defines the data required to create a catalog item.
type CreateItemInput struct {
	Title   string
	Details string
}

// UpdateItemInput defines the data required to update a catalog item.
type UpdateItemInput struct {
	Title   string
	Details string
}

// ItemUsecase defines the business operations on catalog items.
// Reads are public; mutations require an authenticated caller but are not
// owner-scoped, since items carry no owner.
type ItemUsecase interface {
	CreateItem(ctx context.Context, callerID uuid.UUID, input *CreateItemInput) (*entity.Item, error)
	GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	ListItems(ctx context.Context) ([]*entity.Item, error)
	UpdateItem(ctx context.Context, callerID, id uuid.UUID, input *UpdateItemInput) (*entity.Item, error)
	DeleteItem(ctx context.Context, callerID, id uuid.UUID) error
}
