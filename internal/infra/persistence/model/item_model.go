package model

import (
	"time"

	"github.com/google/uuid"
)

// ItemModel mirrors the 'items' table. Reviews reference items by ID only,
// without a foreign key, so items have no association here.
type ItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Title     string    `gorm:"type:varchar(100);unique;not null"`
	Details   string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ItemModel) TableName() string {
	return "items"
}
