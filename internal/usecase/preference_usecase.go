// Package usecase defines the application-layer interfaces of the notifier.
package usecase

import (
	"context"

	"crave/internal/domain/entity"

	"github.com/google/uuid"
)

// PreferenceUsecase defines the interface for notification preference management
type PreferenceUsecase interface {
	// GetPreferences retrieves the user's preference record, or the all-true
	// defaults when the user never saved one.
	GetPreferences(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error)

	// UpdatePreferences creates or replaces the user's preference record.
	UpdatePreferences(ctx context.Context, preference *entity.NotificationPreference) error

	// IsAllowed reports whether a notification of the given type may be sent
	// on the given channel. Missing records and store errors both allow the
	// send; preferences must never block transactional mail outright.
	IsAllowed(ctx context.Context, userID uuid.UUID, channel entity.Channel, notificationType entity.NotificationType) bool
}
