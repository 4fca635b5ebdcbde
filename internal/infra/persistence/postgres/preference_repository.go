// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// preferenceFlagColumns are the columns replaced on upsert. Identity and
// created_at stay untouched when the row already exists.
var preferenceFlagColumns = []string{
	"email_enabled", "push_enabled", "sms_enabled",
	"email_order_confirmations", "email_order_status", "email_promotions",
	"email_rewards", "email_newsletter", "email_reminders",
	"push_order_confirmations", "push_order_status", "push_promotions",
	"push_rewards", "push_newsletter", "push_reminders",
	"sms_order_confirmations", "sms_order_status", "sms_promotions",
	"sms_rewards", "sms_newsletter", "sms_reminders",
	"updated_at",
}

// preferenceRepository implements the repository.PreferenceRepository interface.
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{
		db: db,
	}
}

// FindByUser retrieves the user's single preference record.
func (repo *preferenceRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error) {
	var preferenceM model.NotificationPreferenceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&preferenceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find preference by user")
	}

	return toPreferenceDomain(&preferenceM), nil
}

// Upsert creates or replaces the user's preference record in one statement.
func (repo *preferenceRepository) Upsert(ctx context.Context, preference *entity.NotificationPreference) error {
	preferenceM := fromPreferenceDomain(preference)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns(preferenceFlagColumns),
		}).
		Create(preferenceM).Error; err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to upsert preference")
	}

	preference.ID = preferenceM.ID
	preference.CreatedAt = preferenceM.CreatedAt
	preference.UpdatedAt = preferenceM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toPreferenceDomain converts a GORM NotificationPreferenceModel to a domain NotificationPreference entity.
func toPreferenceDomain(data *model.NotificationPreferenceModel) *entity.NotificationPreference {
	if data == nil {
		return nil
	}

	return &entity.NotificationPreference{
		ID:     data.ID,
		UserID: data.UserID,

		EmailEnabled: data.EmailEnabled,
		PushEnabled:  data.PushEnabled,
		SMSEnabled:   data.SMSEnabled,

		EmailOrderConfirmations: data.EmailOrderConfirmations,
		EmailOrderStatus:        data.EmailOrderStatus,
		EmailPromotions:         data.EmailPromotions,
		EmailRewards:            data.EmailRewards,
		EmailNewsletter:         data.EmailNewsletter,
		EmailReminders:          data.EmailReminders,

		PushOrderConfirmations: data.PushOrderConfirmations,
		PushOrderStatus:        data.PushOrderStatus,
		PushPromotions:         data.PushPromotions,
		PushRewards:            data.PushRewards,
		PushNewsletter:         data.PushNewsletter,
		PushReminders:          data.PushReminders,

		SMSOrderConfirmations: data.SMSOrderConfirmations,
		SMSOrderStatus:        data.SMSOrderStatus,
		SMSPromotions:         data.SMSPromotions,
		SMSRewards:            data.SMSRewards,
		SMSNewsletter:         data.SMSNewsletter,
		SMSReminders:          data.SMSReminders,

		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPreferenceDomain converts a domain NotificationPreference entity to a GORM NotificationPreferenceModel.
func fromPreferenceDomain(data *entity.NotificationPreference) *model.NotificationPreferenceModel {
	if data == nil {
		return nil
	}

	return &model.NotificationPreferenceModel{
		ID:     data.ID,
		UserID: data.UserID,

		EmailEnabled: data.EmailEnabled,
		PushEnabled:  data.PushEnabled,
		SMSEnabled:   data.SMSEnabled,

		EmailOrderConfirmations: data.EmailOrderConfirmations,
		EmailOrderStatus:        data.EmailOrderStatus,
		EmailPromotions:         data.EmailPromotions,
		EmailRewards:            data.EmailRewards,
		EmailNewsletter:         data.EmailNewsletter,
		EmailReminders:          data.EmailReminders,

		PushOrderConfirmations: data.PushOrderConfirmations,
		PushOrderStatus:        data.PushOrderStatus,
		PushPromotions:         data.PushPromotions,
		PushRewards:            data.PushRewards,
		PushNewsletter:         data.PushNewsletter,
		PushReminders:          data.PushReminders,

		SMSOrderConfirmations: data.SMSOrderConfirmations,
		SMSOrderStatus:        data.SMSOrderStatus,
		SMSPromotions:         data.SMSPromotions,
		SMSRewards:            data.SMSRewards,
		SMSNewsletter:         data.SMSNewsletter,
		SMSReminders:          data.SMSReminders,

		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
