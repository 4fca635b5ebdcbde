package usecase

import (
	"context"

	"crave/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionInfo carries the browser-supplied push subscription fields.
type SubscriptionInfo struct {
	Endpoint  string `json:"endpoint" validate:"required,url"`
	P256dhKey string `json:"p256dh_key" validate:"required"`
	AuthKey   string `json:"auth_key" validate:"required"`
	UserAgent string `json:"user_agent"`
}

// PushPayload is the notification content shown by the browser.
type PushPayload struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// PushResult summarizes a fan-out to one user's subscriptions.
type PushResult struct {
	Total       int `json:"total"`       // Active subscriptions targeted.
	Sent        int `json:"sent"`        // Endpoints that accepted the message.
	Failed      int `json:"failed"`      // Endpoints that errored.
	Deactivated int `json:"deactivated"` // Endpoints retired as permanently gone.
}

// UserPushResult pairs a broadcast fan-out result with its user.
type UserPushResult struct {
	UserID uuid.UUID  `json:"user_id"`
	Result PushResult `json:"result"`
}

// PushUsecase defines the interface for the web push channel
type PushUsecase interface {
	// RegisterSubscription stores a browser subscription for the user.
	// Re-registering a known endpoint reassigns and reactivates it.
	RegisterSubscription(ctx context.Context, userID uuid.UUID, info *SubscriptionInfo) (*entity.PushSubscription, error)

	// Unsubscribe deactivates the subscription with the given endpoint.
	Unsubscribe(ctx context.Context, endpoint string) error

	// Send fans the payload out to every active subscription of the user.
	// One dead endpoint never aborts delivery to the others; endpoints the
	// push service reports gone are deactivated in passing.
	Send(ctx context.Context, userID uuid.UUID, notificationType entity.NotificationType, payload *PushPayload) (*PushResult, error)

	// Broadcast fans the payload out to many users with a single
	// subscription query.
	Broadcast(ctx context.Context, userIDs []uuid.UUID, notificationType entity.NotificationType, payload *PushPayload) ([]*UserPushResult, error)
}
