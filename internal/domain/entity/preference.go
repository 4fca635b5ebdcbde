package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPreference holds one user's per-channel notification settings.
// A per-type flag only takes effect when the channel's master toggle is on.
// Absence of a record means "allow everything" (fail-open); records are
// upserted from user settings and never deleted.
type NotificationPreference struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`

	// Master toggles per channel.
	EmailEnabled bool `json:"email_enabled"`
	PushEnabled  bool `json:"push_enabled"`
	SMSEnabled   bool `json:"sms_enabled"`

	// Per-type flags, email channel.
	EmailOrderConfirmations bool `json:"email_order_confirmations"`
	EmailOrderStatus        bool `json:"email_order_status"`
	EmailPromotions         bool `json:"email_promotions"`
	EmailRewards            bool `json:"email_rewards"`
	EmailNewsletter         bool `json:"email_newsletter"`
	EmailReminders          bool `json:"email_reminders"`

	// Per-type flags, push channel.
	PushOrderConfirmations bool `json:"push_order_confirmations"`
	PushOrderStatus        bool `json:"push_order_status"`
	PushPromotions         bool `json:"push_promotions"`
	PushRewards            bool `json:"push_rewards"`
	PushNewsletter         bool `json:"push_newsletter"`
	PushReminders          bool `json:"push_reminders"`

	// Per-type flags, SMS channel.
	SMSOrderConfirmations bool `json:"sms_order_confirmations"`
	SMSOrderStatus        bool `json:"sms_order_status"`
	SMSPromotions         bool `json:"sms_promotions"`
	SMSRewards            bool `json:"sms_rewards"`
	SMSNewsletter         bool `json:"sms_newsletter"`
	SMSReminders          bool `json:"sms_reminders"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultPreference returns the fail-open defaults used when a user has no
// stored preference record: everything allowed.
func DefaultPreference(userID uuid.UUID) *NotificationPreference {
	return &NotificationPreference{
		UserID:       userID,
		EmailEnabled: true,
		PushEnabled:  true,
		SMSEnabled:   true,

		EmailOrderConfirmations: true,
		EmailOrderStatus:        true,
		EmailPromotions:         true,
		EmailRewards:            true,
		EmailNewsletter:         true,
		EmailReminders:          true,

		PushOrderConfirmations: true,
		PushOrderStatus:        true,
		PushPromotions:         true,
		PushRewards:            true,
		PushNewsletter:         true,
		PushReminders:          true,

		SMSOrderConfirmations: true,
		SMSOrderStatus:        true,
		SMSPromotions:         true,
		SMSRewards:            true,
		SMSNewsletter:         true,
		SMSReminders:          true,
	}
}

// Allows reports whether the preference record permits sending the given
// notification type on the given channel. The channel master toggle gates
// every per-type flag; unknown combinations default to allowed.
func (p *NotificationPreference) Allows(channel Channel, notificationType NotificationType) bool {
	if !p.masterEnabled(channel) {
		return false
	}

	flag, known := p.typeFlag(channel, notificationType)
	if !known {
		return true
	}

	return flag
}

func (p *NotificationPreference) masterEnabled(channel Channel) bool {
	switch channel {
	case ChannelEmail:
		return p.EmailEnabled
	case ChannelPush:
		return p.PushEnabled
	case ChannelSMS:
		return p.SMSEnabled
	default:
		return true
	}
}

//nolint:cyclop // flat flag matrix, one case per (channel, type) pair
func (p *NotificationPreference) typeFlag(channel Channel, notificationType NotificationType) (bool, bool) {
	switch channel {
	case ChannelEmail:
		switch notificationType {
		case TypeOrderConfirmation:
			return p.EmailOrderConfirmations, true
		case TypeOrderStatus:
			return p.EmailOrderStatus, true
		case TypePromotion:
			return p.EmailPromotions, true
		case TypeReward:
			return p.EmailRewards, true
		case TypeNewsletter:
			return p.EmailNewsletter, true
		case TypeReminder:
			return p.EmailReminders, true
		}
	case ChannelPush:
		switch notificationType {
		case TypeOrderConfirmation:
			return p.PushOrderConfirmations, true
		case TypeOrderStatus:
			return p.PushOrderStatus, true
		case TypePromotion:
			return p.PushPromotions, true
		case TypeReward:
			return p.PushRewards, true
		case TypeNewsletter:
			return p.PushNewsletter, true
		case TypeReminder:
			return p.PushReminders, true
		}
	case ChannelSMS:
		switch notificationType {
		case TypeOrderConfirmation:
			return p.SMSOrderConfirmations, true
		case TypeOrderStatus:
			return p.SMSOrderStatus, true
		case TypePromotion:
			return p.SMSPromotions, true
		case TypeReward:
			return p.SMSRewards, true
		case TypeNewsletter:
			return p.SMSNewsletter, true
		case TypeReminder:
			return p.SMSReminders, true
		}
	}

	return false, false
}
