package model

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscriptionModel is the GORM-specific struct for the 'push_subscriptions' table.
// It represents a browser push endpoint registered by a user. Endpoints are
// globally unique; re-registering an endpoint moves it to its new owner.
type PushSubscriptionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Endpoint  string    `gorm:"type:text;not null;uniqueIndex"`
	P256dhKey string    `gorm:"column:p256dh_key;type:text;not null"`
	AuthKey   string    `gorm:"type:text;not null"`
	UserAgent string    `gorm:"type:text"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushSubscriptionModel) TableName() string {
	return "push_subscriptions"
}
