package repository

import (
	"context"
	"errors"

	"critique/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrItemNotFound is a domain-specific error returned when an item is not found.
var ErrItemNotFound = errors.New("item not found")

// ItemRepository defines the standard operations for item persistence.
type ItemRepository interface {
	// FindByID retrieves a single item by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)

	// List retrieves all items, newest first.
	List(ctx context.Context) ([]*entity.Item, error)

	// Create persists a new item entity to the storage.
	Create(ctx context.Context, item *entity.Item) error

	// Update modifies an existing item entity in the storage.
	Update(ctx context.Context, item *entity.Item) error

	// Delete removes an item by its unique ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
