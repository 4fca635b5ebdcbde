package impl

import (
	"context"
	"testing"

	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/repository"
	mockRepo "crave/internal/mocks/repository"
	mockUC "crave/internal/mocks/usecase"
	"crave/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatcherMocks struct {
	preferenceUC *mockUC.MockPreferenceUsecase
	emailUC      *mockUC.MockEmailUsecase
	pushUC       *mockUC.MockPushUsecase
	smsUC        *mockUC.MockSMSUsecase
	userRepo     *mockRepo.MockUserRepository
	logRepo      *mockRepo.MockNotificationLogRepository
}

func newDispatcher(t *testing.T) (usecase.NotificationUsecase, *dispatcherMocks) {
	t.Helper()

	mocks := &dispatcherMocks{
		preferenceUC: mockUC.NewMockPreferenceUsecase(t),
		emailUC:      mockUC.NewMockEmailUsecase(t),
		pushUC:       mockUC.NewMockPushUsecase(t),
		smsUC:        mockUC.NewMockSMSUsecase(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		logRepo:      mockRepo.NewMockNotificationLogRepository(t),
	}

	svc := NewNotificationService(
		mocks.preferenceUC,
		mocks.emailUC,
		mocks.pushUC,
		mocks.smsUC,
		mocks.userRepo,
		mocks.logRepo,
		testLogger(),
	)

	return svc, mocks
}

func TestNotificationService_Send_NoChannels(t *testing.T) {
	svc, _ := newDispatcher(t)

	_, err := svc.Send(context.Background(), &usecase.SendOptions{
		UserID: uuid.New(),
		Type:   entity.TypePromotion,
	})
	require.Error(t, err)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidation))
}

func TestNotificationService_Send_UnknownTypeFailsEveryChannel(t *testing.T) {
	svc, mocks := newDispatcher(t)

	result, err := svc.Send(context.Background(), &usecase.SendOptions{
		UserID:   uuid.New(),
		Type:     entity.NotificationType("telegram_sticker"),
		Channels: []entity.Channel{entity.ChannelEmail, entity.ChannelPush},
		Email:    "diner@example.com",
	})
	require.NoError(t, err)

	require.NotNil(t, result.Email)
	assert.False(t, result.Email.Sent)
	assert.Contains(t, result.Email.Error, "unknown notification type")

	require.NotNil(t, result.Push)
	assert.False(t, result.Push.Sent)
	assert.Contains(t, result.Push.Error, "unknown notification type")

	assert.Nil(t, result.SMS)
	mocks.emailUC.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	mocks.pushUC.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNotificationService_Send_UnknownUser(t *testing.T) {
	svc, mocks := newDispatcher(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	_, err := svc.Send(ctx, &usecase.SendOptions{
		UserID:   userID,
		Type:     entity.TypeOrderConfirmation,
		Channels: []entity.Channel{entity.ChannelEmail},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestNotificationService_Send_AllChannels(t *testing.T) {
	svc, mocks := newDispatcher(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.preferenceUC.EXPECT().
		GetPreferences(ctx, userID).
		Return(entity.DefaultPreference(userID), nil).
		Once()

	mocks.emailUC.EXPECT().
		Send(ctx, mock.AnythingOfType("*usecase.EmailOptions")).
		Run(func(_ context.Context, opts *usecase.EmailOptions) {
			assert.Equal(t, "diner@example.com", opts.To)
			assert.Equal(t, "order_confirmation", opts.TemplateKey)
			assert.Equal(t, "Ada", opts.Variables["name"])
			assert.Equal(t, "ORD-1", opts.Variables["order_id"])
		}).
		Return("pm-1", nil)

	mocks.pushUC.EXPECT().
		Send(ctx, userID, entity.TypeOrderConfirmation, mock.AnythingOfType("*usecase.PushPayload")).
		Run(func(_ context.Context, _ uuid.UUID, _ entity.NotificationType, payload *usecase.PushPayload) {
			assert.Equal(t, "Order confirmed", payload.Title)
			assert.Equal(t, "Your order ORD-1 from Nonna's is confirmed. ETA 30 min.", payload.Body)
		}).
		Return(&usecase.PushResult{Total: 1, Sent: 1}, nil)

	mocks.smsUC.EXPECT().
		Send(ctx, mock.AnythingOfType("*usecase.SMSOptions")).
		Run(func(_ context.Context, opts *usecase.SMSOptions) {
			assert.Equal(t, "+15551234567", opts.Phone)
			assert.Equal(t, "Your order ORD-1 is confirmed! Total: $24.50. ETA: 30 min.", opts.Message)
		}).
		Return("sms-1", nil)

	result, err := svc.Send(ctx, &usecase.SendOptions{
		UserID:   userID,
		Type:     entity.TypeOrderConfirmation,
		Channels: []entity.Channel{entity.ChannelEmail, entity.ChannelPush, entity.ChannelSMS},
		Email:    "diner@example.com",
		Phone:    "+15551234567",
		Name:     "Ada",
		Data: map[string]string{
			"order_id":   "ORD-1",
			"total":      "$24.50",
			"eta":        "30 min",
			"restaurant": "Nonna's",
		},
	})
	require.NoError(t, err)

	require.NotNil(t, result.Email)
	assert.True(t, result.Email.Sent)
	assert.Equal(t, "pm-1", result.Email.MessageID)

	require.NotNil(t, result.Push)
	assert.True(t, result.Push.Sent)
	assert.Equal(t, 1, result.Push.Delivered)

	require.NotNil(t, result.SMS)
	assert.True(t, result.SMS.Sent)
	assert.Equal(t, "sms-1", result.SMS.MessageID)
}

func TestNotificationService_Send_PreferenceSuppressionSkips(t *testing.T) {
	svc, mocks := newDispatcher(t)

	ctx := context.Background()
	userID := uuid.New()

	preference := entity.DefaultPreference(userID)
	preference.EmailPromotions = false

	mocks.preferenceUC.EXPECT().
		GetPreferences(ctx, userID).
		Return(preference, nil).
		Once()

	mocks.pushUC.EXPECT().
		Send(ctx, userID, entity.TypePromotion, mock.AnythingOfType("*usecase.PushPayload")).
		Return(&usecase.PushResult{Total: 1, Sent: 1}, nil)

	result, err := svc.Send(ctx, &usecase.SendOptions{
		UserID:   userID,
		Type:     entity.TypePromotion,
		Channels: []entity.Channel{entity.ChannelEmail, entity.ChannelPush},
		Email:    "diner@example.com",
		Phone:    "+15551234567",
		Name:     "Ada",
		Data:     map[string]string{"title": "Deal", "message": "Half price"},
	})
	require.NoError(t, err)

	require.NotNil(t, result.Email)
	assert.True(t, result.Email.Skipped)
	assert.False(t, result.Email.Sent)
	assert.Empty(t, result.Email.Error)

	require.NotNil(t, result.Push)
	assert.True(t, result.Push.Sent)
	mocks.emailUC.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestNotificationService_Send_OverrideForcesSuppressedChannel(t *testing.T) {
	svc, mocks := newDispatcher(t)

	ctx := context.Background()
	userID := uuid.New()

	preference := entity.DefaultPreference(userID)
	preference.EmailEnabled = false

	mocks.preferenceUC.EXPECT().
		GetPreferences(ctx, userID).
		Return(preference, nil).
		Once()

	mocks.emailUC.EXPECT().
		Send(ctx, mock.AnythingOfType("*usecase.EmailOptions")).
		Return("pm-2", nil)

	result, err := svc.Send(ctx, &usecase.SendOptions{
		UserID:    userID,
		Type:      entity.TypePromotion,
		Channels:  []entity.Channel{entity.ChannelEmail},
		Email:     "diner@example.com",
		Phone:     "+15551234567",
		Name:      "Ada",
		Data:      map[string]string{"title": "Deal", "message": "Half price"},
		Overrides: map[entity.Channel]bool{entity.ChannelEmail: true},
	})
	require.NoError(t, err)

	require.NotNil(t, result.Email)
	assert.True(t, result.Email.Sent)
}

func TestNotificationService_Send_OverrideSuppressesAllowedChannel(t *testing.T) {
	svc, mocks := newDispatcher(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.preferenceUC.EXPECT().
		GetPreferences(ctx, userID).
		Return(entity.DefaultPreference(userID), nil).
		Once()

	result, err := svc.Send(ctx, &usecase.SendOptions{
		UserID:    userID,
		Type:      entity.TypePromotion,
		Channels:  []entity.Channel{entity.ChannelEmail},
		Email:     "diner@example.com",
		Phone:     "+15551234567",
		Name:      "Ada",
		Data:      map[string]string{"title": "Deal", "message": "Half price"},
		Overrides: map[entity.Channel]bool{entity.ChannelEmail: false},
	})
	require.NoError(t, err)

	require.NotNil(t, result.Email)
	assert.True(t, result.Email.Skipped)
	mocks.emailUC.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestNotificationService_Send_PreferenceLoadFailureAllowsAll(t *testing.T) {
	svc, mocks := newDispatcher(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.preferenceUC.EXPECT().
		GetPreferences(ctx, userID).
		Return(nil, errors.New("preference store down")).
		Once()

	mocks.emailUC.EXPECT().
		Send(ctx, mock.AnythingOfType("*usecase.EmailOptions")).
		Return("pm-3", nil)

	result, err := svc.Send(ctx, &usecase.SendOptions{
		UserID:   userID,
		Type:     entity.TypePromotion,
		Channels: []entity.Channel{entity.ChannelEmail},
		Email:    "diner@example.com",
		Phone:    "+15551234567",
		Name:     "Ada",
		Data:     map[string]string{"title": "Deal", "message": "Half price"},
	})
	require.NoError(t, err)
	assert.True(t, result.Email.Sent)
}

func TestNotificationService_Send_ChannelErrorBecomesResult(t *testing.T) {
	svc, mocks := newDispatcher(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.preferenceUC.EXPECT().
		GetPreferences(ctx, userID).
		Return(entity.DefaultPreference(userID), nil).
		Once()

	mocks.emailUC.EXPECT().
		Send(ctx, mock.AnythingOfType("*usecase.EmailOptions")).
		Return("", errors.New("provider timeout"))

	result, err := svc.Send(ctx, &usecase.SendOptions{
		UserID:   userID,
		Type:     entity.TypeOrderStatus,
		Channels: []entity.Channel{entity.ChannelEmail},
		Email:    "diner@example.com",
		Phone:    "+15551234567",
		Name:     "Ada",
		Data:     map[string]string{"order_id": "ORD-1", "status": "delivered"},
	})
	require.NoError(t, err)

	require.NotNil(t, result.Email)
	assert.False(t, result.Email.Sent)
	assert.Contains(t, result.Email.Error, "provider timeout")
}

func TestNotificationService_Send_ZeroSubscriptionsIsNotAnError(t *testing.T) {
	svc, mocks := newDispatcher(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.preferenceUC.EXPECT().
		GetPreferences(ctx, userID).
		Return(entity.DefaultPreference(userID), nil).
		Once()

	mocks.pushUC.EXPECT().
		Send(ctx, userID, entity.TypeOrderStatus, mock.AnythingOfType("*usecase.PushPayload")).
		Return(&usecase.PushResult{}, nil)

	result, err := svc.Send(ctx, &usecase.SendOptions{
		UserID:   userID,
		Type:     entity.TypeOrderStatus,
		Channels: []entity.Channel{entity.ChannelPush},
		Email:    "diner@example.com",
		Phone:    "+15551234567",
		Name:     "Ada",
		Data:     map[string]string{"order_id": "ORD-1", "status": "delivered"},
	})
	require.NoError(t, err)

	require.NotNil(t, result.Push)
	assert.True(t, result.Push.Sent)
	assert.Equal(t, 0, result.Push.Delivered)
	assert.Equal(t, 0, result.Push.Failed)
	assert.Empty(t, result.Push.Error)
}

func TestNotificationService_Send_NoPhoneOnFile(t *testing.T) {
	svc, mocks := newDispatcher(t)

	ctx := context.Background()
	userID := uuid.New()

	// Phone is empty, so the dispatcher falls back to the user record,
	// which has no phone either.
	mocks.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: "diner@example.com", Name: "Ada"}, nil)

	mocks.preferenceUC.EXPECT().
		GetPreferences(ctx, userID).
		Return(entity.DefaultPreference(userID), nil).
		Once()

	result, err := svc.Send(ctx, &usecase.SendOptions{
		UserID:   userID,
		Type:     entity.TypeOrderConfirmation,
		Channels: []entity.Channel{entity.ChannelSMS},
		Data:     map[string]string{"order_id": "ORD-1"},
	})
	require.NoError(t, err)

	require.NotNil(t, result.SMS)
	assert.False(t, result.SMS.Sent)
	assert.True(t, result.SMS.Skipped)
	assert.Empty(t, result.SMS.Error)
	mocks.smsUC.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestNotificationService_Send_NoEmailOnFile(t *testing.T) {
	svc, mocks := newDispatcher(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Phone: "+15551234567", Name: "Ada"}, nil)

	mocks.preferenceUC.EXPECT().
		GetPreferences(ctx, userID).
		Return(entity.DefaultPreference(userID), nil).
		Once()

	result, err := svc.Send(ctx, &usecase.SendOptions{
		UserID:   userID,
		Type:     entity.TypeOrderConfirmation,
		Channels: []entity.Channel{entity.ChannelEmail},
		Data:     map[string]string{"order_id": "ORD-1"},
	})
	require.NoError(t, err)

	require.NotNil(t, result.Email)
	assert.False(t, result.Email.Sent)
	assert.True(t, result.Email.Skipped)
	assert.Empty(t, result.Email.Error)
	mocks.emailUC.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestNotificationService_Send_FillsContactFromUserRecord(t *testing.T) {
	svc, mocks := newDispatcher(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{
			ID:    userID,
			Email: "diner@example.com",
			Phone: "+15551234567",
			Name:  "Ada",
		}, nil)

	mocks.preferenceUC.EXPECT().
		GetPreferences(ctx, userID).
		Return(entity.DefaultPreference(userID), nil).
		Once()

	mocks.emailUC.EXPECT().
		Send(ctx, mock.AnythingOfType("*usecase.EmailOptions")).
		Run(func(_ context.Context, opts *usecase.EmailOptions) {
			assert.Equal(t, "diner@example.com", opts.To)
			assert.Equal(t, "Ada", opts.ToName)
		}).
		Return("pm-4", nil)

	_, err := svc.Send(ctx, &usecase.SendOptions{
		UserID:   userID,
		Type:     entity.TypeReward,
		Channels: []entity.Channel{entity.ChannelEmail},
		Data:     map[string]string{"points": "50", "reason": "Order milestone"},
	})
	require.NoError(t, err)
}

func TestNotificationService_SendReward_BuildsContent(t *testing.T) {
	svc, mocks := newDispatcher(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: "diner@example.com", Phone: "+15551234567", Name: "Ada"}, nil)

	mocks.preferenceUC.EXPECT().
		GetPreferences(ctx, userID).
		Return(entity.DefaultPreference(userID), nil).
		Once()

	mocks.emailUC.EXPECT().
		Send(ctx, mock.AnythingOfType("*usecase.EmailOptions")).
		Run(func(_ context.Context, opts *usecase.EmailOptions) {
			assert.Equal(t, "reward", opts.TemplateKey)
			assert.Equal(t, "150", opts.Variables["points"])
			assert.Equal(t, "Birthday bonus", opts.Variables["reason"])
		}).
		Return("pm-5", nil)

	mocks.pushUC.EXPECT().
		Send(ctx, userID, entity.TypeReward, mock.AnythingOfType("*usecase.PushPayload")).
		Run(func(_ context.Context, _ uuid.UUID, _ entity.NotificationType, payload *usecase.PushPayload) {
			assert.Equal(t, "You earned points!", payload.Title)
			assert.Equal(t, "You earned 150 points: Birthday bonus", payload.Body)
		}).
		Return(&usecase.PushResult{Total: 1, Sent: 1}, nil)

	result, err := svc.SendReward(ctx, userID, 150, "Birthday bonus")
	require.NoError(t, err)
	assert.True(t, result.Email.Sent)
	assert.True(t, result.Push.Sent)
	assert.Nil(t, result.SMS)
}

func TestNotificationService_GetRecentNotifications_DefaultLimit(t *testing.T) {
	svc, mocks := newDispatcher(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.logRepo.EXPECT().
		FindRecentByUser(ctx, userID, defaultRecentLimit).
		Return([]*entity.NotificationLog{}, nil)

	logs, err := svc.GetRecentNotifications(ctx, userID, 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
