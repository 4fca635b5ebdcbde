package postgres

import (
	"context"

	"crave/internal/domain/entity"
	"crave/internal/domain/repository"
	"crave/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pushSubscriptionRepository implements the repository.PushSubscriptionRepository interface.
type pushSubscriptionRepository struct {
	db *gorm.DB
}

// NewPushSubscriptionRepository is the constructor for pushSubscriptionRepository.
func NewPushSubscriptionRepository(db *gorm.DB) repository.PushSubscriptionRepository {
	return &pushSubscriptionRepository{
		db: db,
	}
}

// UpsertByEndpoint registers a subscription. The endpoint is the conflict key:
// re-registering moves the subscription to its new owner, refreshes the keys
// and reactivates it.
func (repo *pushSubscriptionRepository) UpsertByEndpoint(ctx context.Context, subscription *entity.PushSubscription) error {
	subscriptionM := fromPushSubscriptionDomain(subscription)
	subscriptionM.IsActive = true

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "endpoint"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"user_id", "p256dh_key", "auth_key", "user_agent", "is_active", "updated_at",
			}),
		}).
		Create(subscriptionM).Error; err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to upsert push subscription")
	}

	subscription.ID = subscriptionM.ID
	subscription.IsActive = subscriptionM.IsActive
	subscription.CreatedAt = subscriptionM.CreatedAt
	subscription.UpdatedAt = subscriptionM.UpdatedAt

	return nil
}

// FindActiveByUser retrieves all active subscriptions for one user.
func (repo *pushSubscriptionRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushSubscription, error) {
	var subscriptionModels []*model.PushSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at ASC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active subscriptions by user")
	}

	subscriptions := make([]*entity.PushSubscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toPushSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// FindActiveByUsers retrieves all active subscriptions for a set of users in one query.
func (repo *pushSubscriptionRepository) FindActiveByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.PushSubscription, error) {
	if len(userIDs) == 0 {
		return []*entity.PushSubscription{}, nil
	}

	var subscriptionModels []*model.PushSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ? AND is_active = ?", userIDs, true).
		Order("created_at ASC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active subscriptions by users")
	}

	subscriptions := make([]*entity.PushSubscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toPushSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// Deactivate marks the subscription with the given endpoint inactive.
// Unknown or already inactive endpoints are a no-op, so provider-driven
// cleanup and explicit unsubscribes can race safely.
func (repo *pushSubscriptionRepository) Deactivate(ctx context.Context, endpoint string) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.PushSubscriptionModel{}).
		Where("endpoint = ?", endpoint).
		Update("is_active", false).Error; err != nil {
		return errors.Wrap(err, "failed to deactivate push subscription")
	}

	return nil
}

// --- Mapper Functions ---

// toPushSubscriptionDomain converts a GORM PushSubscriptionModel to a domain PushSubscription entity.
func toPushSubscriptionDomain(data *model.PushSubscriptionModel) *entity.PushSubscription {
	if data == nil {
		return nil
	}

	return &entity.PushSubscription{
		ID:        data.ID,
		UserID:    data.UserID,
		Endpoint:  data.Endpoint,
		P256dhKey: data.P256dhKey,
		AuthKey:   data.AuthKey,
		UserAgent: data.UserAgent,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPushSubscriptionDomain converts a domain PushSubscription entity to a GORM PushSubscriptionModel.
func fromPushSubscriptionDomain(data *entity.PushSubscription) *model.PushSubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.PushSubscriptionModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Endpoint:  data.Endpoint,
		P256dhKey: data.P256dhKey,
		AuthKey:   data.AuthKey,
		UserAgent: data.UserAgent,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
