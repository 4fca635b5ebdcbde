package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationLogModel is the GORM-specific struct for the 'notification_logs' table.
// Each row records one delivery attempt on one channel; the table is append-only.
type NotificationLogModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index"`
	Channel           string    `gorm:"type:text;not null"`
	Type              string    `gorm:"type:text;not null"`
	Recipient         string    `gorm:"type:text;not null"`
	Status            string    `gorm:"type:text;not null"`
	ProviderMessageID string    `gorm:"type:text"`
	ErrorMessage      string    `gorm:"type:text"`
	SentAt            time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationLogModel) TableName() string {
	return "notification_logs"
}
