package entity

import (
	"time"

	"github.com/google/uuid"
)

// Item is a catalog entry that reviews are written against.
// Items carry no owner: any authenticated user may create or change them.
type Item struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the item.
	Title     string    // Display title, unique across the catalog.
	Details   string    // Free-form description of the item.
	CreatedAt time.Time
	UpdatedAt time.Time
}
