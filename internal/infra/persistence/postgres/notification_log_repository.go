package postgres

import (
	"context"

	"crave/internal/domain/entity"
	"crave/internal/domain/repository"
	"crave/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const logInsertBatchSize = 100

// notificationLogRepository implements the repository.NotificationLogRepository interface.
type notificationLogRepository struct {
	db *gorm.DB
}

// NewNotificationLogRepository is the constructor for notificationLogRepository.
func NewNotificationLogRepository(db *gorm.DB) repository.NotificationLogRepository {
	return &notificationLogRepository{
		db: db,
	}
}

// Create persists a single delivery attempt.
func (repo *notificationLogRepository) Create(ctx context.Context, log *entity.NotificationLog) error {
	logM := fromNotificationLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return errors.Wrap(err, "failed to create notification log")
	}

	log.ID = logM.ID

	return nil
}

// BatchCreate persists multiple delivery attempts in chunked inserts.
func (repo *notificationLogRepository) BatchCreate(ctx context.Context, logs []*entity.NotificationLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.NotificationLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, fromNotificationLogDomain(log))
	}

	if err := repo.db.WithContext(ctx).
		CreateInBatches(logModels, logInsertBatchSize).Error; err != nil {
		return errors.Wrap(err, "failed to batch create notification logs")
	}

	for i, logM := range logModels {
		logs[i].ID = logM.ID
	}

	return nil
}

// FindRecentByUser retrieves the newest delivery attempts for a user.
func (repo *notificationLogRepository) FindRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.NotificationLog, error) {
	var logModels []*model.NotificationLogModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sent_at DESC").
		Limit(limit).
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notification logs by user")
	}

	logs := make([]*entity.NotificationLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toNotificationLogDomain(logM))
	}

	return logs, nil
}

// --- Mapper Functions ---

// toNotificationLogDomain converts a GORM NotificationLogModel to a domain NotificationLog entity.
func toNotificationLogDomain(data *model.NotificationLogModel) *entity.NotificationLog {
	if data == nil {
		return nil
	}

	return &entity.NotificationLog{
		ID:                data.ID,
		UserID:            data.UserID,
		Channel:           entity.Channel(data.Channel),
		Type:              entity.NotificationType(data.Type),
		Recipient:         data.Recipient,
		Status:            data.Status,
		ProviderMessageID: data.ProviderMessageID,
		ErrorMessage:      data.ErrorMessage,
		SentAt:            data.SentAt,
	}
}

// fromNotificationLogDomain converts a domain NotificationLog entity to a GORM NotificationLogModel.
func fromNotificationLogDomain(data *entity.NotificationLog) *model.NotificationLogModel {
	if data == nil {
		return nil
	}

	return &model.NotificationLogModel{
		ID:                data.ID,
		UserID:            data.UserID,
		Channel:           string(data.Channel),
		Type:              string(data.Type),
		Recipient:         data.Recipient,
		Status:            data.Status,
		ProviderMessageID: data.ProviderMessageID,
		ErrorMessage:      data.ErrorMessage,
		SentAt:            data.SentAt,
	}
}
