package repository

import (
	"context"

	"crave/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationLogRepository defines the append-only delivery audit store.
// Rows are inserted once and never updated or deleted by this subsystem.
type NotificationLogRepository interface {
	// Create persists a single delivery attempt.
	Create(ctx context.Context, log *entity.NotificationLog) error

	// BatchCreate persists multiple delivery attempts in one round trip.
	BatchCreate(ctx context.Context, logs []*entity.NotificationLog) error

	// FindRecentByUser retrieves the most recent attempts for a user, newest
	// first. Used for audit/debugging only.
	FindRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.NotificationLog, error)
}
