package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. UserID carries a foreign key to
// users; ItemID is a plain indexed column. The score range is enforced twice,
// at the request boundary and by the check constraint.
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	ItemID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Text      string    `gorm:"type:varchar(255)"`
	Score     int       `gorm:"not null;check:chk_reviews_score,score >= 1 AND score <= 5"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Comments []CommentModel `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
