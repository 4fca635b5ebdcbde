package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPreferenceModel is the GORM-specific struct for the 'notification_preferences' table.
// It holds the per-user channel and notification-type opt-in switches, one row per user.
type NotificationPreferenceModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`

	EmailEnabled bool `gorm:"not null;default:true"`
	PushEnabled  bool `gorm:"not null;default:true"`
	SMSEnabled   bool `gorm:"not null;default:true"`

	EmailOrderConfirmations bool `gorm:"not null;default:true"`
	EmailOrderStatus        bool `gorm:"not null;default:true"`
	EmailPromotions         bool `gorm:"not null;default:true"`
	EmailRewards            bool `gorm:"not null;default:true"`
	EmailNewsletter         bool `gorm:"not null;default:true"`
	EmailReminders          bool `gorm:"not null;default:true"`

	PushOrderConfirmations bool `gorm:"not null;default:true"`
	PushOrderStatus        bool `gorm:"not null;default:true"`
	PushPromotions         bool `gorm:"not null;default:true"`
	PushRewards            bool `gorm:"not null;default:true"`
	PushNewsletter         bool `gorm:"not null;default:true"`
	PushReminders          bool `gorm:"not null;default:true"`

	SMSOrderConfirmations bool `gorm:"not null;default:true"`
	SMSOrderStatus        bool `gorm:"not null;default:true"`
	SMSPromotions         bool `gorm:"not null;default:true"`
	SMSRewards            bool `gorm:"not null;default:true"`
	SMSNewsletter         bool `gorm:"not null;default:true"`
	SMSReminders          bool `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationPreferenceModel) TableName() string {
	return "notification_preferences"
}
