package usecase

import (
	"context"

	"crave/internal/domain/entity"

	"github.com/google/uuid"
)

// SendOptions describes one multi-channel notification for one user.
type SendOptions struct {
	UserID uuid.UUID
	Type   entity.NotificationType

	// Channels to attempt. Channels the user has no medium for (no email or
	// phone on file) are skipped the same way preference suppression is:
	// sent false, no error.
	Channels []entity.Channel

	// Contact media. Empty fields are looked up from the user record.
	Email string
	Phone string
	Name  string

	// Data feeds the template variables and the push payload data.
	Data map[string]string

	// Overrides force a channel decision regardless of stored preferences,
	// for must-deliver messages such as password resets.
	Overrides map[entity.Channel]bool
}

// ChannelResult reports the outcome of one channel attempt. Preference
// suppression is reported as skipped, never as an error.
type ChannelResult struct {
	Channel   entity.Channel `json:"channel"`
	Sent      bool           `json:"sent"`
	Skipped   bool           `json:"skipped,omitempty"`
	MessageID string         `json:"message_id,omitempty"`
	Delivered int            `json:"delivered,omitempty"` // Push endpoints that accepted the message.
	Failed    int            `json:"failed,omitempty"`    // Push endpoints that errored.
	Error     string         `json:"error,omitempty"`
}

// NotificationResult aggregates the per-channel outcomes of one dispatch.
// A dispatch never fails as a whole; each channel reports independently.
type NotificationResult struct {
	Email *ChannelResult `json:"email,omitempty"`
	Push  *ChannelResult `json:"push,omitempty"`
	SMS   *ChannelResult `json:"sms,omitempty"`
}

// OrderInfo carries the order fields rendered into order notifications.
type OrderInfo struct {
	OrderID      string `json:"order_id" validate:"required"`
	Total        string `json:"total"`
	ETA          string `json:"eta"`
	RestaurantID string `json:"restaurant_id"`
	Restaurant   string `json:"restaurant"`
}

// PromoInfo carries the promotion fields rendered into promo notifications.
type PromoInfo struct {
	Title     string `json:"title" validate:"required"`
	Message   string `json:"message" validate:"required"`
	PromoCode string `json:"promo_code"`
	ExpiresAt string `json:"expires_at"`
}

// NotificationUsecase is the dispatcher that fans one logical notification
// out to the requested channels
type NotificationUsecase interface {
	// Send dispatches to every requested channel concurrently and collects
	// the per-channel results. The error return covers dispatch-level
	// problems only (unknown user, no channels); everything else, including
	// an unrecognized notification type, lives in the per-channel results.
	Send(ctx context.Context, opts *SendOptions) (*NotificationResult, error)

	// SendOrderConfirmation notifies all channels about a placed order.
	SendOrderConfirmation(ctx context.Context, userID uuid.UUID, order *OrderInfo) (*NotificationResult, error)

	// SendOrderStatus notifies email and push about an order state change.
	SendOrderStatus(ctx context.Context, userID uuid.UUID, orderID, status string) (*NotificationResult, error)

	// SendPromotion notifies email and push about a promotion.
	SendPromotion(ctx context.Context, userID uuid.UUID, promo *PromoInfo) (*NotificationResult, error)

	// SendReward notifies email and push about earned loyalty points.
	SendReward(ctx context.Context, userID uuid.UUID, points int, reason string) (*NotificationResult, error)

	// GetRecentNotifications retrieves the user's newest delivery attempts.
	GetRecentNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.NotificationLog, error)
}
