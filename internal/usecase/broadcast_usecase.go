package usecase

import (
	"context"

	"crave/internal/domain/entity"

	"github.com/google/uuid"
)

// BroadcastPayload is the content sent to every member of an audience.
type BroadcastPayload struct {
	Type    entity.NotificationType `json:"type" validate:"required"`
	Title   string                  `json:"title" validate:"required"`
	Message string                  `json:"message" validate:"required"`
	Data    map[string]string       `json:"data,omitempty"`

	// Channels to attempt per user; defaults to push only.
	Channels []entity.Channel `json:"channels,omitempty"`
}

// UserNotificationResult pairs a per-user dispatch outcome with its user.
type UserNotificationResult struct {
	UserID uuid.UUID           `json:"user_id"`
	Result *NotificationResult `json:"result"`
}

// EmailRecipient is one address in a batch email run. Variables feed the
// template per recipient; the name is injected when not already present.
type EmailRecipient struct {
	UserID    uuid.UUID         `json:"user_id" validate:"required"`
	Email     string            `json:"email" validate:"required,email"`
	Name      string            `json:"name"`
	Variables map[string]string `json:"variables,omitempty"`
}

// BatchEmailResult summarizes a batch email run. Success, Skipped and Failed
// add up to the recipient count.
type BatchEmailResult struct {
	Success int      `json:"success"`
	Skipped int      `json:"skipped"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}

// BroadcastUsecase fans notifications out to many users at once
type BroadcastUsecase interface {
	// NotifyUsers dispatches the payload to each listed user sequentially.
	// Unknown user ids are skipped with a warning; one user's failure never
	// stops the rest.
	NotifyUsers(ctx context.Context, userIDs []uuid.UUID, payload *BroadcastPayload) ([]*UserNotificationResult, error)

	// NotifySegment resolves a named audience and dispatches to it.
	NotifySegment(ctx context.Context, segment entity.Segment, payload *BroadcastPayload) ([]*UserNotificationResult, error)

	// SendBatchEmail renders the stored template per recipient, with the
	// recipient's own variables, and sends to each in turn.
	SendBatchEmail(ctx context.Context, recipients []EmailRecipient, notificationType entity.NotificationType, templateKey string) (*BatchEmailResult, error)
}
