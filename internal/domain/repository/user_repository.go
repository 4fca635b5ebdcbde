package repository

import (
	"context"

	"crave/internal/domain/entity"
	"crave/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for identity lookups.
var (
	// ErrUserNotFound is returned when a user lookup misses.
	ErrUserNotFound = errors.New("user not found")
	// ErrUnknownSegment is returned for a segment name with no query.
	ErrUnknownSegment = errors.New("unknown audience segment")
)

// UserRepository defines the identity reads the notifier needs: contact
// media for channel selection and segment queries for broadcast targeting.
type UserRepository interface {
	// FindByID retrieves a single user.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByIDs retrieves the users that exist among the given ids; ids
	// missing from the store are simply absent from the result.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error)

	// FindBySegment resolves a named audience segment into users.
	FindBySegment(ctx context.Context, segment entity.Segment) ([]*entity.User, error)
}
