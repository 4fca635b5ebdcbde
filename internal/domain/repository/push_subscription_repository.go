package repository

import (
	"context"

	"crave/internal/domain/entity"
	"crave/internal/errors"

	"github.com/google/uuid"
)

// ErrSubscriptionNotFound is returned when a push subscription lookup misses.
var ErrSubscriptionNotFound = errors.New("push subscription not found")

// PushSubscriptionRepository defines push-subscription database operations.
type PushSubscriptionRepository interface {
	// UpsertByEndpoint creates the subscription or, when the endpoint is
	// already registered, updates its owner, keys and user agent and
	// reactivates it. Endpoints are unique across all users.
	UpsertByEndpoint(ctx context.Context, subscription *entity.PushSubscription) error

	// FindActiveByUser retrieves all active subscriptions for one user.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushSubscription, error)

	// FindActiveByUsers retrieves all active subscriptions for a set of users
	// in one query, for broadcast fan-out.
	FindActiveByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.PushSubscription, error)

	// Deactivate marks the subscription with the given endpoint inactive.
	// Deactivating an already inactive or unknown endpoint is a no-op.
	Deactivate(ctx context.Context, endpoint string) error
}
