package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a scored write-up of an item. UserID is the owner and is stamped
// by the service from the resolved caller identity, never from request input.
// Only the owner may update or delete a review.
type Review struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the review.
	UserID    uuid.UUID // Owner of the review, set once at creation.
	ItemID    uuid.UUID // The item being reviewed.
	Text      string    // Body of the review.
	Score     int       // Rating given to the item.
	CreatedAt time.Time
	UpdatedAt time.Time
}
