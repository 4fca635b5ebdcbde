package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table. The notifier
// only reads this table; account management lives in another service.
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email       string    `gorm:"type:text;not null;uniqueIndex"`
	Phone       string    `gorm:"type:text"`
	Name        string    `gorm:"type:text;not null"`
	Points      int       `gorm:"not null;default:0"`
	LastOrderAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
