package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "crave/internal/delivery/context"
	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/repository"
	"crave/internal/domain/service"
	"crave/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// pushService implements the PushUsecase interface.
type pushService struct {
	sender           service.PushSender
	subscriptionRepo repository.PushSubscriptionRepository
	logRepo          repository.NotificationLogRepository
	logger           *slog.Logger
}

// NewPushService is the constructor for pushService. A nil sender means the
// push channel is disabled; sends then fail as configuration errors.
func NewPushService(
	sender service.PushSender,
	subscriptionRepo repository.PushSubscriptionRepository,
	logRepo repository.NotificationLogRepository,
	logger *slog.Logger,
) usecase.PushUsecase {
	return &pushService{
		sender:           sender,
		subscriptionRepo: subscriptionRepo,
		logRepo:          logRepo,
		logger:           logger,
	}
}

func (srv *pushService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterSubscription stores a browser subscription for the user.
func (srv *pushService) RegisterSubscription(ctx context.Context, userID uuid.UUID, info *usecase.SubscriptionInfo) (*entity.PushSubscription, error) {
	subscription := &entity.PushSubscription{
		UserID:    userID,
		Endpoint:  info.Endpoint,
		P256dhKey: info.P256dhKey,
		AuthKey:   info.AuthKey,
		UserAgent: info.UserAgent,
		IsActive:  true,
	}

	if err := srv.subscriptionRepo.UpsertByEndpoint(ctx, subscription); err != nil {
		return nil, errors.Wrap(err, "failed to register push subscription")
	}

	srv.log(ctx).Info("Push subscription registered",
		slog.Any("user_id", userID),
	)

	return subscription, nil
}

// Unsubscribe deactivates the subscription with the given endpoint.
func (srv *pushService) Unsubscribe(ctx context.Context, endpoint string) error {
	if endpoint == "" {
		return errors.New("endpoint is required")
	}

	return srv.subscriptionRepo.Deactivate(ctx, endpoint)
}

// Send fans the payload out to every active subscription of the user.
func (srv *pushService) Send(ctx context.Context, userID uuid.UUID, notificationType entity.NotificationType, payload *usecase.PushPayload) (*usecase.PushResult, error) {
	if srv.sender == nil {
		return nil, domainerrors.NewConfigurationError("push channel is not configured")
	}

	subscriptions, err := srv.subscriptionRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load push subscriptions")
	}

	result, logs := srv.fanOut(ctx, subscriptions, notificationType, payload)
	srv.auditBatch(ctx, logs)

	return result, nil
}

// Broadcast fans the payload out to many users with one subscription query.
// Users without an active subscription appear in the result with zero counts.
func (srv *pushService) Broadcast(ctx context.Context, userIDs []uuid.UUID, notificationType entity.NotificationType, payload *usecase.PushPayload) ([]*usecase.UserPushResult, error) {
	if srv.sender == nil {
		return nil, domainerrors.NewConfigurationError("push channel is not configured")
	}

	subscriptions, err := srv.subscriptionRepo.FindActiveByUsers(ctx, userIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load push subscriptions")
	}

	byUser := make(map[uuid.UUID][]*entity.PushSubscription, len(userIDs))
	for _, subscription := range subscriptions {
		byUser[subscription.UserID] = append(byUser[subscription.UserID], subscription)
	}

	results := make([]*usecase.UserPushResult, 0, len(userIDs))
	var allLogs []*entity.NotificationLog

	for _, userID := range userIDs {
		result, logs := srv.fanOut(ctx, byUser[userID], notificationType, payload)
		allLogs = append(allLogs, logs...)
		results = append(results, &usecase.UserPushResult{
			UserID: userID,
			Result: *result,
		})
	}

	srv.auditBatch(ctx, allLogs)

	return results, nil
}

// fanOut sends to each subscription in turn. One dead endpoint never aborts
// the others; endpoints the push service reports gone are deactivated.
func (srv *pushService) fanOut(ctx context.Context, subscriptions []*entity.PushSubscription, notificationType entity.NotificationType, payload *usecase.PushPayload) (*usecase.PushResult, []*entity.NotificationLog) {
	result := &usecase.PushResult{Total: len(subscriptions)}
	logs := make([]*entity.NotificationLog, 0, len(subscriptions))

	message := &service.PushMessage{
		Title: payload.Title,
		Body:  payload.Body,
		Data:  payload.Data,
	}

	for _, subscription := range subscriptions {
		log := &entity.NotificationLog{
			UserID:    subscription.UserID,
			Channel:   entity.ChannelPush,
			Type:      notificationType,
			Recipient: subscription.Endpoint,
			Status:    entity.StatusSent,
			SentAt:    time.Now(),
		}

		if err := srv.sender.Send(ctx, subscription, message); err != nil {
			result.Failed++
			log.Status = entity.StatusFailed
			log.ErrorMessage = err.Error()

			if domainerrors.IsKind(err, domainerrors.KindSubscriptionGone) {
				srv.retireSubscription(ctx, subscription)
				result.Deactivated++
			}
		} else {
			result.Sent++
		}

		logs = append(logs, log)
	}

	return result, logs
}

func (srv *pushService) retireSubscription(ctx context.Context, subscription *entity.PushSubscription) {
	if err := srv.subscriptionRepo.Deactivate(ctx, subscription.Endpoint); err != nil {
		srv.log(ctx).Warn("Failed to deactivate gone subscription",
			slog.Any("user_id", subscription.UserID),
			slog.Any("error", err),
		)

		return
	}

	srv.log(ctx).Info("Deactivated gone push subscription",
		slog.Any("user_id", subscription.UserID),
	)
}

func (srv *pushService) auditBatch(ctx context.Context, logs []*entity.NotificationLog) {
	if len(logs) == 0 {
		return
	}

	if err := srv.logRepo.BatchCreate(ctx, logs); err != nil {
		srv.log(ctx).Warn("Failed to record push attempts",
			slog.Int("count", len(logs)),
			slog.Any("error", err),
		)
	}
}
