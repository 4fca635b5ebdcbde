// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "crave/internal/delivery/context"
	"crave/internal/domain/entity"
	"crave/internal/domain/repository"
	"crave/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// preferenceService implements the PreferenceUsecase interface.
type preferenceService struct {
	preferenceRepo repository.PreferenceRepository
	logger         *slog.Logger
}

// NewPreferenceService is the constructor for preferenceService.
func NewPreferenceService(
	preferenceRepo repository.PreferenceRepository,
	logger *slog.Logger,
) usecase.PreferenceUsecase {
	return &preferenceService{
		preferenceRepo: preferenceRepo,
		logger:         logger,
	}
}

func (srv *preferenceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetPreferences retrieves the user's preference record, falling back to the
// all-true defaults when none was ever saved.
func (srv *preferenceService) GetPreferences(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error) {
	preference, err := srv.preferenceRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferenceNotFound) {
			return entity.DefaultPreference(userID), nil
		}

		return nil, errors.Wrap(err, "failed to load preferences")
	}

	return preference, nil
}

// UpdatePreferences creates or replaces the user's preference record.
func (srv *preferenceService) UpdatePreferences(ctx context.Context, preference *entity.NotificationPreference) error {
	if preference.UserID == uuid.Nil {
		return errors.New("user id is required")
	}

	if err := srv.preferenceRepo.Upsert(ctx, preference); err != nil {
		return errors.Wrap(err, "failed to save preferences")
	}

	srv.log(ctx).Info("Preferences updated",
		slog.Any("user_id", preference.UserID),
	)

	return nil
}

// IsAllowed reports whether the user permits the given (channel, type) pair.
// A missing record and a store error both allow the send: a broken
// preference store must not silence order confirmations.
func (srv *preferenceService) IsAllowed(ctx context.Context, userID uuid.UUID, channel entity.Channel, notificationType entity.NotificationType) bool {
	preference, err := srv.preferenceRepo.FindByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrPreferenceNotFound) {
			srv.log(ctx).Warn("Preference lookup failed, allowing send",
				slog.Any("user_id", userID),
				slog.String("channel", string(channel)),
				slog.Any("error", err),
			)
		}

		return true
	}

	return preference.Allows(channel, notificationType)
}
