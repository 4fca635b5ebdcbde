package impl

import (
	"context"
	"testing"
	"time"

	"crave/config"
	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/repository"
	"crave/internal/domain/service"
	mockRepo "crave/internal/mocks/repository"
	mockSvc "crave/internal/mocks/service"
	"crave/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func emailTestConfig() *config.Config {
	return &config.Config{
		Providers: config.ProvidersConfig{Timeout: 5 * time.Second},
	}
}

func TestEmailService_Send_DirectContent(t *testing.T) {
	mockSender := mockSvc.NewMockEmailSender(t)
	mockTemplateRepo := mockRepo.NewMockTemplateRepository(t)
	mockLogRepo := mockRepo.NewMockNotificationLogRepository(t)
	svc := NewEmailService(mockSender, mockTemplateRepo, mockLogRepo, emailTestConfig(), testLogger())

	ctx := context.Background()
	userID := uuid.New()

	mockSender.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.EmailMessage")).
		Run(func(_ context.Context, message *service.EmailMessage) {
			assert.Equal(t, "diner@example.com", message.To)
			assert.Equal(t, "Ada", message.ToName)
			assert.Equal(t, "Your order is confirmed", message.Subject)
			assert.Equal(t, string(entity.TypeOrderConfirmation), message.Tag)
		}).
		Return("pm-123", nil)

	var recorded *entity.NotificationLog
	mockLogRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.NotificationLog")).
		Run(func(_ context.Context, log *entity.NotificationLog) {
			recorded = log
		}).
		Return(nil)

	messageID, err := svc.Send(ctx, &usecase.EmailOptions{
		UserID:   userID,
		Type:     entity.TypeOrderConfirmation,
		To:       "diner@example.com",
		ToName:   "Ada",
		Subject:  "Your order is confirmed",
		HTMLBody: "<p>Thanks!</p>",
		TextBody: "Thanks!",
	})
	require.NoError(t, err)
	assert.Equal(t, "pm-123", messageID)

	require.NotNil(t, recorded)
	assert.Equal(t, userID, recorded.UserID)
	assert.Equal(t, entity.ChannelEmail, recorded.Channel)
	assert.Equal(t, "diner@example.com", recorded.Recipient)
	assert.Equal(t, entity.StatusSent, recorded.Status)
	assert.Equal(t, "pm-123", recorded.ProviderMessageID)
}

func TestEmailService_Send_RendersTemplate(t *testing.T) {
	mockSender := mockSvc.NewMockEmailSender(t)
	mockTemplateRepo := mockRepo.NewMockTemplateRepository(t)
	mockLogRepo := mockRepo.NewMockNotificationLogRepository(t)
	svc := NewEmailService(mockSender, mockTemplateRepo, mockLogRepo, emailTestConfig(), testLogger())

	ctx := context.Background()

	mockTemplateRepo.EXPECT().
		FindActiveByKey(ctx, "order_confirmation").
		Return(&entity.EmailTemplate{
			TemplateKey: "order_confirmation",
			Subject:     "Order {{order_id}} confirmed",
			HTMLContent: "<p>Hi {{name}}, order {{order_id}} is on its way.</p>",
			TextContent: "Hi {{name}}, order {{order_id}} is on its way.",
			IsActive:    true,
		}, nil)

	mockSender.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.EmailMessage")).
		Run(func(_ context.Context, message *service.EmailMessage) {
			assert.Equal(t, "Order ORD-42 confirmed", message.Subject)
			assert.Equal(t, "<p>Hi Ada, order ORD-42 is on its way.</p>", message.HTMLBody)
			assert.Equal(t, "Hi Ada, order ORD-42 is on its way.", message.TextBody)
		}).
		Return("pm-456", nil)

	mockLogRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.NotificationLog")).
		Return(nil)

	messageID, err := svc.Send(ctx, &usecase.EmailOptions{
		UserID:      uuid.New(),
		Type:        entity.TypeOrderConfirmation,
		To:          "diner@example.com",
		TemplateKey: "order_confirmation",
		Variables:   map[string]string{"name": "Ada", "order_id": "ORD-42"},
	})
	require.NoError(t, err)
	assert.Equal(t, "pm-456", messageID)
}

func TestEmailService_Send_TemplateNotFound(t *testing.T) {
	mockSender := mockSvc.NewMockEmailSender(t)
	mockTemplateRepo := mockRepo.NewMockTemplateRepository(t)
	mockLogRepo := mockRepo.NewMockNotificationLogRepository(t)
	svc := NewEmailService(mockSender, mockTemplateRepo, mockLogRepo, emailTestConfig(), testLogger())

	ctx := context.Background()

	mockTemplateRepo.EXPECT().
		FindActiveByKey(ctx, "missing_key").
		Return(nil, repository.ErrTemplateNotFound)

	var recorded *entity.NotificationLog
	mockLogRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.NotificationLog")).
		Run(func(_ context.Context, log *entity.NotificationLog) {
			recorded = log
		}).
		Return(nil)

	_, err := svc.Send(ctx, &usecase.EmailOptions{
		UserID:      uuid.New(),
		Type:        entity.TypeNewsletter,
		To:          "diner@example.com",
		TemplateKey: "missing_key",
	})
	require.Error(t, err)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindTemplateNotFound))

	require.NotNil(t, recorded)
	assert.Equal(t, entity.StatusFailed, recorded.Status)
	assert.NotEmpty(t, recorded.ErrorMessage)
}

func TestEmailService_Send_MissingRecipient(t *testing.T) {
	mockSender := mockSvc.NewMockEmailSender(t)
	mockTemplateRepo := mockRepo.NewMockTemplateRepository(t)
	mockLogRepo := mockRepo.NewMockNotificationLogRepository(t)
	svc := NewEmailService(mockSender, mockTemplateRepo, mockLogRepo, emailTestConfig(), testLogger())

	ctx := context.Background()

	mockLogRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.NotificationLog")).
		Return(nil)

	_, err := svc.Send(ctx, &usecase.EmailOptions{
		UserID:  uuid.New(),
		Type:    entity.TypePromotion,
		Subject: "Hello",
	})
	require.Error(t, err)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidation))
}

func TestEmailService_Send_ChannelNotConfigured(t *testing.T) {
	mockTemplateRepo := mockRepo.NewMockTemplateRepository(t)
	mockLogRepo := mockRepo.NewMockNotificationLogRepository(t)
	svc := NewEmailService(nil, mockTemplateRepo, mockLogRepo, emailTestConfig(), testLogger())

	ctx := context.Background()

	var recorded *entity.NotificationLog
	mockLogRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.NotificationLog")).
		Run(func(_ context.Context, log *entity.NotificationLog) {
			recorded = log
		}).
		Return(nil)

	_, err := svc.Send(ctx, &usecase.EmailOptions{
		UserID:  uuid.New(),
		Type:    entity.TypePromotion,
		To:      "diner@example.com",
		Subject: "Hello",
	})
	require.Error(t, err)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindConfiguration))

	require.NotNil(t, recorded)
	assert.Equal(t, entity.StatusFailed, recorded.Status)
}

func TestEmailService_Send_ProviderFailureStillAudited(t *testing.T) {
	mockSender := mockSvc.NewMockEmailSender(t)
	mockTemplateRepo := mockRepo.NewMockTemplateRepository(t)
	mockLogRepo := mockRepo.NewMockNotificationLogRepository(t)
	svc := NewEmailService(mockSender, mockTemplateRepo, mockLogRepo, emailTestConfig(), testLogger())

	ctx := context.Background()

	mockSender.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.EmailMessage")).
		Return("", errors.New("smtp connection reset"))

	var recorded *entity.NotificationLog
	mockLogRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.NotificationLog")).
		Run(func(_ context.Context, log *entity.NotificationLog) {
			recorded = log
		}).
		Return(nil)

	_, err := svc.Send(ctx, &usecase.EmailOptions{
		UserID:  uuid.New(),
		Type:    entity.TypeReminder,
		To:      "diner@example.com",
		Subject: "Reminder",
	})
	require.Error(t, err)

	require.NotNil(t, recorded)
	assert.Equal(t, entity.StatusFailed, recorded.Status)
	assert.Contains(t, recorded.ErrorMessage, "smtp connection reset")
}

func TestEmailService_Send_AuditFailureDoesNotFailSend(t *testing.T) {
	mockSender := mockSvc.NewMockEmailSender(t)
	mockTemplateRepo := mockRepo.NewMockTemplateRepository(t)
	mockLogRepo := mockRepo.NewMockNotificationLogRepository(t)
	svc := NewEmailService(mockSender, mockTemplateRepo, mockLogRepo, emailTestConfig(), testLogger())

	ctx := context.Background()

	mockSender.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.EmailMessage")).
		Return("pm-789", nil)

	mockLogRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.NotificationLog")).
		Return(errors.New("insert failed"))

	messageID, err := svc.Send(ctx, &usecase.EmailOptions{
		UserID:  uuid.New(),
		Type:    entity.TypeReward,
		To:      "diner@example.com",
		Subject: "You earned points",
	})
	require.NoError(t, err)
	assert.Equal(t, "pm-789", messageID)
}
