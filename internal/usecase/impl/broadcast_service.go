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

// broadcastService implements the BroadcastUsecase interface.
type broadcastService struct {
	notificationUC usecase.NotificationUsecase
	pushUC         usecase.PushUsecase
	preferenceUC   usecase.PreferenceUsecase
	emailUC        usecase.EmailUsecase
	userRepo       repository.UserRepository
	logger         *slog.Logger
}

// NewBroadcastService is the constructor for broadcastService.
func NewBroadcastService(
	notificationUC usecase.NotificationUsecase,
	pushUC usecase.PushUsecase,
	preferenceUC usecase.PreferenceUsecase,
	emailUC usecase.EmailUsecase,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.BroadcastUsecase {
	return &broadcastService{
		notificationUC: notificationUC,
		pushUC:         pushUC,
		preferenceUC:   preferenceUC,
		emailUC:        emailUC,
		userRepo:       userRepo,
		logger:         logger,
	}
}

func (srv *broadcastService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// NotifyUsers dispatches the payload to each listed user. Ids with no user
// record are skipped with a warning; one user's failure never stops the rest.
func (srv *broadcastService) NotifyUsers(ctx context.Context, userIDs []uuid.UUID, payload *usecase.BroadcastPayload) ([]*usecase.UserNotificationResult, error) {
	if len(userIDs) == 0 {
		return []*usecase.UserNotificationResult{}, nil
	}

	users, err := srv.userRepo.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load broadcast audience")
	}

	byID := make(map[uuid.UUID]*entity.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}

	found := make([]uuid.UUID, 0, len(users))
	for _, userID := range userIDs {
		if _, ok := byID[userID]; !ok {
			srv.log(ctx).Warn("Skipping unknown user in broadcast",
				slog.Any("user_id", userID),
			)

			continue
		}
		found = append(found, userID)
	}

	channels := payload.Channels
	if len(channels) == 0 {
		channels = []entity.Channel{entity.ChannelPush}
	}

	if isPushOnly(channels) {
		return srv.broadcastPush(ctx, found, payload)
	}

	return srv.broadcastPerUser(ctx, found, byID, channels, payload), nil
}

// NotifySegment resolves a named audience and dispatches to it.
func (srv *broadcastService) NotifySegment(ctx context.Context, segment entity.Segment, payload *usecase.BroadcastPayload) ([]*usecase.UserNotificationResult, error) {
	users, err := srv.userRepo.FindBySegment(ctx, segment)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve segment")
	}

	srv.log(ctx).Info("Broadcasting to segment",
		slog.String("segment", string(segment)),
		slog.Int("audience", len(users)),
	)

	userIDs := make([]uuid.UUID, 0, len(users))
	for _, user := range users {
		userIDs = append(userIDs, user.ID)
	}

	return srv.NotifyUsers(ctx, userIDs, payload)
}

// SendBatchEmail renders the stored template once per recipient with that
// recipient's variables. Every recipient lands in exactly one counter, so
// the totals reconcile with the input list.
func (srv *broadcastService) SendBatchEmail(ctx context.Context, recipients []usecase.EmailRecipient, notificationType entity.NotificationType, templateKey string) (*usecase.BatchEmailResult, error) {
	result := &usecase.BatchEmailResult{}

	for _, recipient := range recipients {
		if !srv.preferenceUC.IsAllowed(ctx, recipient.UserID, entity.ChannelEmail, notificationType) {
			result.Skipped++

			continue
		}

		_, err := srv.emailUC.Send(ctx, &usecase.EmailOptions{
			UserID:      recipient.UserID,
			Type:        notificationType,
			To:          recipient.Email,
			ToName:      recipient.Name,
			TemplateKey: templateKey,
			Variables:   recipientVariables(recipient),
		})
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, recipient.Email+": "+err.Error())

			continue
		}

		result.Success++
	}

	return result, nil
}

func recipientVariables(recipient usecase.EmailRecipient) map[string]string {
	variables := make(map[string]string, len(recipient.Variables)+1)
	for key, value := range recipient.Variables {
		variables[key] = value
	}
	if _, ok := variables["name"]; !ok {
		variables["name"] = recipient.Name
	}

	return variables
}

// broadcastPush is the fast path for push-only payloads: one subscription
// query for the whole audience instead of one per user. The preference gate
// still runs per user before the fan-out.
func (srv *broadcastService) broadcastPush(ctx context.Context, userIDs []uuid.UUID, payload *usecase.BroadcastPayload) ([]*usecase.UserNotificationResult, error) {
	results := make([]*usecase.UserNotificationResult, 0, len(userIDs))

	allowed := make([]uuid.UUID, 0, len(userIDs))
	for _, userID := range userIDs {
		if srv.preferenceUC.IsAllowed(ctx, userID, entity.ChannelPush, payload.Type) {
			allowed = append(allowed, userID)

			continue
		}

		results = append(results, &usecase.UserNotificationResult{
			UserID: userID,
			Result: &usecase.NotificationResult{
				Push: &usecase.ChannelResult{Channel: entity.ChannelPush, Skipped: true},
			},
		})
	}

	pushResults, err := srv.pushUC.Broadcast(ctx, allowed, payload.Type, &usecase.PushPayload{
		Title: payload.Title,
		Body:  payload.Message,
		Data:  payload.Data,
	})
	if err != nil {
		return nil, err
	}

	for _, pushResult := range pushResults {
		// A user with no registered devices counts as delivered-to-zero,
		// not as a failure.
		channelResult := &usecase.ChannelResult{
			Channel:   entity.ChannelPush,
			Sent:      pushResult.Result.Sent > 0 || pushResult.Result.Total == 0,
			Delivered: pushResult.Result.Sent,
			Failed:    pushResult.Result.Failed,
		}

		results = append(results, &usecase.UserNotificationResult{
			UserID: pushResult.UserID,
			Result: &usecase.NotificationResult{Push: channelResult},
		})
	}

	return results, nil
}

// broadcastPerUser runs the full dispatcher for each user sequentially.
func (srv *broadcastService) broadcastPerUser(ctx context.Context, userIDs []uuid.UUID, byID map[uuid.UUID]*entity.User, channels []entity.Channel, payload *usecase.BroadcastPayload) []*usecase.UserNotificationResult {
	results := make([]*usecase.UserNotificationResult, 0, len(userIDs))

	for _, userID := range userIDs {
		user := byID[userID]

		result, err := srv.notificationUC.Send(ctx, &usecase.SendOptions{
			UserID:   userID,
			Type:     payload.Type,
			Channels: channels,
			Email:    user.Email,
			Phone:    user.Phone,
			Name:     user.Name,
			Data:     broadcastData(payload),
		})
		if err != nil {
			srv.log(ctx).Warn("Broadcast dispatch failed for user",
				slog.Any("user_id", userID),
				slog.Any("error", err),
			)

			continue
		}

		results = append(results, &usecase.UserNotificationResult{
			UserID: userID,
			Result: result,
		})
	}

	return results
}

func isPushOnly(channels []entity.Channel) bool {
	for _, channel := range channels {
		if channel != entity.ChannelPush {
			return false
		}
	}

	return len(channels) > 0
}

func broadcastData(payload *usecase.BroadcastPayload) map[string]string {
	data := make(map[string]string, len(payload.Data)+2)
	for key, value := range payload.Data {
		data[key] = value
	}
	data["title"] = payload.Title
	data["message"] = payload.Message

	return data
}
