// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"crave/internal/domain/entity"
	"crave/internal/errors"

	"github.com/google/uuid"
)

// ErrPreferenceNotFound is returned when a user has no stored preference
// record. Callers treat this as "allow everything" (fail-open).
var ErrPreferenceNotFound = errors.New("notification preference not found")

// PreferenceRepository defines preference-related database operations.
type PreferenceRepository interface {
	// FindByUser retrieves the user's preference record (at most one row).
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error)

	// Upsert creates or replaces the user's preference record. Preferences
	// are never deleted.
	Upsert(ctx context.Context, preference *entity.NotificationPreference) error
}
