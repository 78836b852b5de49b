package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a user's remark on a review. A user may comment on a given
// review at most once; the storage layer enforces the (UserID, ReviewID)
// pair uniqueness. Only the owner may update or delete a comment.
type Comment struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the comment.
	UserID    uuid.UUID // Owner of the comment, set once at creation.
	ReviewID  uuid.UUID // The review being commented on.
	Content   string    // Body of the comment.
	CreatedAt time.Time
	UpdatedAt time.Time
}
