package usecase

import (
	"context"

	"crave/internal/domain/entity"

	"github.com/google/uuid"
)

// EmailOptions describes one outbound email. When TemplateKey is set the
// subject and bodies are loaded from the template store and rendered with
// Variables; explicit Subject/HTMLBody/TextBody are used as-is otherwise.
type EmailOptions struct {
	UserID uuid.UUID
	Type   entity.NotificationType

	To     string
	ToName string

	TemplateKey string
	Variables   map[string]string

	Subject  string
	HTMLBody string
	TextBody string
}

// EmailUsecase defines the interface for the transactional email channel
type EmailUsecase interface {
	// Send delivers one email and records the attempt in the notification
	// log. It returns the provider message id when the vendor supplies one.
	Send(ctx context.Context, opts *EmailOptions) (string, error)
}
