package repository

import (
	"context"

	"crave/internal/domain/entity"
	"crave/internal/errors"
)

// ErrTemplateNotFound is returned when no active template exists for a key.
var ErrTemplateNotFound = errors.New("email template not found")

// TemplateRepository defines read-only access to stored email templates.
type TemplateRepository interface {
	// FindActiveByKey retrieves the active template for the given key.
	// Inactive templates are treated as not found.
	FindActiveByKey(ctx context.Context, templateKey string) (*entity.EmailTemplate, error)
}
