package impl

import (
	"context"
	"testing"

	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	mockRepo "crave/internal/mocks/repository"
	mockSvc "crave/internal/mocks/service"
	"crave/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPushService_RegisterSubscription(t *testing.T) {
	mockSender := mockSvc.NewMockPushSender(t)
	mockSubRepo := mockRepo.NewMockPushSubscriptionRepository(t)
	mockLogRepo := mockRepo.NewMockNotificationLogRepository(t)
	svc := NewPushService(mockSender, mockSubRepo, mockLogRepo, testLogger())

	ctx := context.Background()
	userID := uuid.New()

	mockSubRepo.EXPECT().
		UpsertByEndpoint(ctx, mock.AnythingOfType("*entity.PushSubscription")).
		Return(nil)

	subscription, err := svc.RegisterSubscription(ctx, userID, &usecase.SubscriptionInfo{
		Endpoint:  "https://push.example.com/sub/abc",
		P256dhKey: "p256dh-key",
		AuthKey:   "auth-key",
		UserAgent: "Mozilla/5.0",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, subscription.UserID)
	assert.Equal(t, "https://push.example.com/sub/abc", subscription.Endpoint)
	assert.True(t, subscription.IsActive)
}

func TestPushService_Unsubscribe(t *testing.T) {
	mockSender := mockSvc.NewMockPushSender(t)
	mockSubRepo := mockRepo.NewMockPushSubscriptionRepository(t)
	mockLogRepo := mockRepo.NewMockNotificationLogRepository(t)
	svc := NewPushService(mockSender, mockSubRepo, mockLogRepo, testLogger())

	ctx := context.Background()

	mockSubRepo.EXPECT().
		Deactivate(ctx, "https://push.example.com/sub/abc").
		Return(nil)

	require.NoError(t, svc.Unsubscribe(ctx, "https://push.example.com/sub/abc"))
}

func TestPushService_Unsubscribe_MissingEndpoint(t *testing.T) {
	mockSender := mockSvc.NewMockPushSender(t)
	mockSubRepo := mockRepo.NewMockPushSubscriptionRepository(t)
	mockLogRepo := mockRepo.NewMockNotificationLogRepository(t)
	svc := NewPushService(mockSender, mockSubRepo, mockLogRepo, testLogger())

	err := svc.Unsubscribe(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint is required")
}

func TestPushService_Send_ChannelNotConfigured(t *testing.T) {
	mockSubRepo := mockRepo.NewMockPushSubscriptionRepository(t)
	mockLogRepo := mockRepo.NewMockNotificationLogRepository(t)
	svc := NewPushService(nil, mockSubRepo, mockLogRepo, testLogger())

	_, err := svc.Send(context.Background(), uuid.New(), entity.TypePromotion, &usecase.PushPayload{Title: "Deal"})
	require.Error(t, err)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindConfiguration))
}

func TestPushService_Send_FanOutIsolatesFailures(t *testing.T) {
	mockSender := mockSvc.NewMockPushSender(t)
	mockSubRepo := mockRepo.NewMockPushSubscriptionRepository(t)
	mockLogRepo := mockRepo.NewMockNotificationLogRepository(t)
	svc := NewPushService(mockSender, mockSubRepo, mockLogRepo, testLogger())

	ctx := context.Background()
	userID := uuid.New()

	healthy := &entity.PushSubscription{UserID: userID, Endpoint: "https://push.example.com/sub/healthy", IsActive: true}
	gone := &entity.PushSubscription{UserID: userID, Endpoint: "https://push.example.com/sub/gone", IsActive: true}

	mockSubRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return([]*entity.PushSubscription{healthy, gone}, nil)

	mockSender.EXPECT().
		Send(ctx, healthy, mock.AnythingOfType("*service.PushMessage")).
		Return(nil)

	mockSender.EXPECT().
		Send(ctx, gone, mock.AnythingOfType("*service.PushMessage")).
		Return(domainerrors.NewSubscriptionGone(gone.Endpoint))

	mockSubRepo.EXPECT().
		Deactivate(ctx, gone.Endpoint).
		Return(nil)

	var recordedLogs []*entity.NotificationLog
	mockLogRepo.EXPECT().
		BatchCreate(ctx, mock.AnythingOfType("[]*entity.NotificationLog")).
		Run(func(_ context.Context, logs []*entity.NotificationLog) {
			recordedLogs = logs
		}).
		Return(nil)

	result, err := svc.Send(ctx, userID, entity.TypeOrderStatus, &usecase.PushPayload{
		Title: "Order update",
		Body:  "Your order is out for delivery",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Deactivated)

	// One audit row per endpoint attempted.
	require.Len(t, recordedLogs, 2)
	assert.Equal(t, entity.StatusSent, recordedLogs[0].Status)
	assert.Equal(t, healthy.Endpoint, recordedLogs[0].Recipient)
	assert.Equal(t, entity.StatusFailed, recordedLogs[1].Status)
	assert.Equal(t, gone.Endpoint, recordedLogs[1].Recipient)
}

func TestPushService_Send_TransientFailureKeepsSubscription(t *testing.T) {
	mockSender := mockSvc.NewMockPushSender(t)
	mockSubRepo := mockRepo.NewMockPushSubscriptionRepository(t)
	mockLogRepo := mockRepo.NewMockNotificationLogRepository(t)
	svc := NewPushService(mockSender, mockSubRepo, mockLogRepo, testLogger())

	ctx := context.Background()
	userID := uuid.New()

	subscription := &entity.PushSubscription{UserID: userID, Endpoint: "https://push.example.com/sub/a", IsActive: true}

	mockSubRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return([]*entity.PushSubscription{subscription}, nil)

	mockSender.EXPECT().
		Send(ctx, subscription, mock.AnythingOfType("*service.PushMessage")).
		Return(errors.New("push service unavailable"))

	mockLogRepo.EXPECT().
		BatchCreate(ctx, mock.AnythingOfType("[]*entity.NotificationLog")).
		Return(nil)

	result, err := svc.Send(ctx, userID, entity.TypeReminder, &usecase.PushPayload{Title: "Reminder"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 0, result.Deactivated)
	mockSubRepo.AssertNotCalled(t, "Deactivate", mock.Anything, mock.Anything)
}

func TestPushService_Send_NoSubscriptions(t *testing.T) {
	mockSender := mockSvc.NewMockPushSender(t)
	mockSubRepo := mockRepo.NewMockPushSubscriptionRepository(t)
	mockLogRepo := mockRepo.NewMockNotificationLogRepository(t)
	svc := NewPushService(mockSender, mockSubRepo, mockLogRepo, testLogger())

	ctx := context.Background()
	userID := uuid.New()

	mockSubRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(nil, nil)

	result, err := svc.Send(ctx, userID, entity.TypePromotion, &usecase.PushPayload{Title: "Deal"})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)
	mockLogRepo.AssertNotCalled(t, "BatchCreate", mock.Anything, mock.Anything)
}

func TestPushService_Broadcast_SingleQueryGroupsByUser(t *testing.T) {
	mockSender := mockSvc.NewMockPushSender(t)
	mockSubRepo := mockRepo.NewMockPushSubscriptionRepository(t)
	mockLogRepo := mockRepo.NewMockNotificationLogRepository(t)
	svc := NewPushService(mockSender, mockSubRepo, mockLogRepo, testLogger())

	ctx := context.Background()
	userA := uuid.New()
	userB := uuid.New()
	userC := uuid.New()

	subA1 := &entity.PushSubscription{UserID: userA, Endpoint: "https://push.example.com/sub/a1", IsActive: true}
	subA2 := &entity.PushSubscription{UserID: userA, Endpoint: "https://push.example.com/sub/a2", IsActive: true}
	subB := &entity.PushSubscription{UserID: userB, Endpoint: "https://push.example.com/sub/b", IsActive: true}

	mockSubRepo.EXPECT().
		FindActiveByUsers(ctx, []uuid.UUID{userA, userB, userC}).
		Return([]*entity.PushSubscription{subA1, subA2, subB}, nil)

	mockSender.EXPECT().
		Send(ctx, mock.AnythingOfType("*entity.PushSubscription"), mock.AnythingOfType("*service.PushMessage")).
		Return(nil).
		Times(3)

	mockLogRepo.EXPECT().
		BatchCreate(ctx, mock.AnythingOfType("[]*entity.NotificationLog")).
		Run(func(_ context.Context, logs []*entity.NotificationLog) {
			assert.Len(t, logs, 3)
		}).
		Return(nil)

	results, err := svc.Broadcast(ctx, []uuid.UUID{userA, userB, userC}, entity.TypePromotion, &usecase.PushPayload{
		Title: "Flash sale",
		Body:  "Half price tonight",
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, userA, results[0].UserID)
	assert.Equal(t, 2, results[0].Result.Total)
	assert.Equal(t, 2, results[0].Result.Sent)

	assert.Equal(t, userB, results[1].UserID)
	assert.Equal(t, 1, results[1].Result.Total)

	// Users without an active subscription still appear with zero counts.
	assert.Equal(t, userC, results[2].UserID)
	assert.Equal(t, 0, results[2].Result.Total)
}
