package usecase

import (
	"context"

	"crave/internal/domain/entity"

	"github.com/google/uuid"
)

// SMSOptions describes one outbound text message.
type SMSOptions struct {
	UserID  uuid.UUID
	Type    entity.NotificationType
	Phone   string
	Message string
}

// SMSUsecase defines the interface for the SMS channel
type SMSUsecase interface {
	// Send normalizes the phone number, truncates the message to the
	// configured length and delivers it through the selected vendor. The
	// attempt is recorded in the notification log whether it succeeds or not.
	Send(ctx context.Context, opts *SMSOptions) (string, error)
}
