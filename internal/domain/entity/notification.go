// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Channel identifies one delivery medium.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelPush  Channel = "push"
	ChannelSMS   Channel = "sms"
)

// NotificationType identifies the logical kind of a notification. It selects
// the template/payload shape per channel and the preference flag consulted
// before sending.
type NotificationType string

const (
	TypeOrderConfirmation NotificationType = "order_confirmation"
	TypeOrderStatus       NotificationType = "order_status"
	TypePromotion         NotificationType = "promotion"
	TypeReward            NotificationType = "reward"
	TypeNewsletter        NotificationType = "newsletter"
	TypeReminder          NotificationType = "reminder"
)

// Delivery attempt statuses recorded in the notification log.
const (
	StatusSent   = "sent"
	StatusFailed = "failed"
)

// NotificationLog is one append-only row per delivery attempt (not per
// logical notification). It is never updated or deleted by this subsystem.
type NotificationLog struct {
	ID                uuid.UUID        `json:"id"`                  // The Global Unique Identifier (GUID) for the log entry.
	UserID            uuid.UUID        `json:"user_id"`             // The user the attempt was addressed to.
	Channel           Channel          `json:"channel"`             // Delivery medium of the attempt.
	Type              NotificationType `json:"type"`                // Template/type key of the notification.
	Recipient         string           `json:"recipient"`           // Email address, phone number, or push endpoint.
	Status            string           `json:"status"`              // sent or failed.
	ProviderMessageID string           `json:"provider_message_id"` // Provider-specific message id, when available.
	ErrorMessage      string           `json:"error_message"`       // Error message if the attempt failed.
	SentAt            time.Time        `json:"sent_at"`             // Timestamp of the attempt.
}
