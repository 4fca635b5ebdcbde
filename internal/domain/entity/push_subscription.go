package entity

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscription is one browser/device Web Push registration. A user may
// hold several active subscriptions (multiple devices); each is delivered to
// independently. Subscriptions are upserted by endpoint and deactivated, not
// deleted, when the push service reports the endpoint permanently gone.
type PushSubscription struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the subscription.
	UserID    uuid.UUID `json:"user_id"`    // The owning user.
	Endpoint  string    `json:"endpoint"`   // Push service endpoint URL; unique across all users.
	P256dhKey string    `json:"p256dh_key"` // Client public key for payload encryption.
	AuthKey   string    `json:"auth_key"`   // Client auth secret for payload encryption.
	UserAgent string    `json:"user_agent"` // Browser user agent captured at registration.
	IsActive  bool      `json:"is_active"`  // False once the endpoint is reported gone.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
