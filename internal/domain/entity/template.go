package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailTemplate is a stored email body keyed by a stable template key.
// Looked up read-only by the email channel; managed elsewhere in the platform.
type EmailTemplate struct {
	ID          uuid.UUID `json:"id"`
	TemplateKey string    `json:"template_key"` // Stable lookup key, e.g. "order_confirmation".
	Subject     string    `json:"subject"`      // Subject line, may contain {{placeholders}}.
	HTMLContent string    `json:"html_content"` // HTML body, may contain {{placeholders}}.
	TextContent string    `json:"text_content"` // Optional plain-text body.
	IsActive    bool      `json:"is_active"`    // Inactive templates are treated as not found.
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
