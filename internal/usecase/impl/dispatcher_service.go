package impl

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	deliverycontext "crave/internal/delivery/context"
	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/repository"
	"crave/internal/template"
	"crave/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultRecentLimit = 20

// channelContent is the per-channel rendering of one notification type.
type channelContent struct {
	templateKey string
	pushTitle   string
	pushBody    string
	smsText     string
}

// notificationService implements the NotificationUsecase interface. It is
// the dispatcher: one logical notification in, one result per channel out.
type notificationService struct {
	preferenceUC usecase.PreferenceUsecase
	emailUC      usecase.EmailUsecase
	pushUC       usecase.PushUsecase
	smsUC        usecase.SMSUsecase
	userRepo     repository.UserRepository
	logRepo      repository.NotificationLogRepository
	logger       *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(
	preferenceUC usecase.PreferenceUsecase,
	emailUC usecase.EmailUsecase,
	pushUC usecase.PushUsecase,
	smsUC usecase.SMSUsecase,
	userRepo repository.UserRepository,
	logRepo repository.NotificationLogRepository,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		preferenceUC: preferenceUC,
		emailUC:      emailUC,
		pushUC:       pushUC,
		smsUC:        smsUC,
		userRepo:     userRepo,
		logRepo:      logRepo,
		logger:       logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Send dispatches one notification to the requested channels concurrently.
// Channel failures are converted to result values; the error return is
// reserved for dispatch-level problems such as an unknown user.
func (srv *notificationService) Send(ctx context.Context, opts *usecase.SendOptions) (*usecase.NotificationResult, error) {
	if len(opts.Channels) == 0 {
		return nil, domainerrors.NewValidationError("at least one channel is required")
	}

	content, err := buildContent(opts.Type, opts.Data)
	if err != nil {
		// An unrecognized type fails every requested channel instead of the
		// dispatch, so one bad payload in a broadcast cannot drop a user.
		return channelFailures(opts.Channels, err), nil
	}

	if err := srv.fillContact(ctx, opts); err != nil {
		return nil, err
	}

	// One preference read decides every channel of this dispatch.
	preference := srv.loadPreference(ctx, opts.UserID)

	result := &usecase.NotificationResult{}
	var wg sync.WaitGroup

	for _, channel := range opts.Channels {
		allowed := srv.channelAllowed(preference, channel, opts)

		switch channel {
		case entity.ChannelEmail:
			wg.Add(1)
			go func() {
				defer wg.Done()
				result.Email = srv.sendEmail(ctx, opts, content, allowed)
			}()
		case entity.ChannelPush:
			wg.Add(1)
			go func() {
				defer wg.Done()
				result.Push = srv.sendPush(ctx, opts, content, allowed)
			}()
		case entity.ChannelSMS:
			wg.Add(1)
			go func() {
				defer wg.Done()
				result.SMS = srv.sendSMS(ctx, opts, content, allowed)
			}()
		default:
			srv.log(ctx).Warn("Ignoring unknown channel",
				slog.String("channel", string(channel)),
			)
		}
	}

	wg.Wait()

	return result, nil
}

// SendOrderConfirmation notifies all channels about a placed order.
func (srv *notificationService) SendOrderConfirmation(ctx context.Context, userID uuid.UUID, order *usecase.OrderInfo) (*usecase.NotificationResult, error) {
	return srv.Send(ctx, &usecase.SendOptions{
		UserID:   userID,
		Type:     entity.TypeOrderConfirmation,
		Channels: []entity.Channel{entity.ChannelEmail, entity.ChannelPush, entity.ChannelSMS},
		Data: map[string]string{
			"order_id":   order.OrderID,
			"total":      order.Total,
			"eta":        order.ETA,
			"restaurant": order.Restaurant,
		},
	})
}

// SendOrderStatus notifies email and push about an order state change.
func (srv *notificationService) SendOrderStatus(ctx context.Context, userID uuid.UUID, orderID, status string) (*usecase.NotificationResult, error) {
	return srv.Send(ctx, &usecase.SendOptions{
		UserID:   userID,
		Type:     entity.TypeOrderStatus,
		Channels: []entity.Channel{entity.ChannelEmail, entity.ChannelPush},
		Data: map[string]string{
			"order_id": orderID,
			"status":   status,
		},
	})
}

// SendPromotion notifies email and push about a promotion.
func (srv *notificationService) SendPromotion(ctx context.Context, userID uuid.UUID, promo *usecase.PromoInfo) (*usecase.NotificationResult, error) {
	return srv.Send(ctx, &usecase.SendOptions{
		UserID:   userID,
		Type:     entity.TypePromotion,
		Channels: []entity.Channel{entity.ChannelEmail, entity.ChannelPush},
		Data: map[string]string{
			"title":      promo.Title,
			"message":    promo.Message,
			"promo_code": promo.PromoCode,
			"expires_at": promo.ExpiresAt,
		},
	})
}

// SendReward notifies email and push about earned loyalty points.
func (srv *notificationService) SendReward(ctx context.Context, userID uuid.UUID, points int, reason string) (*usecase.NotificationResult, error) {
	return srv.Send(ctx, &usecase.SendOptions{
		UserID:   userID,
		Type:     entity.TypeReward,
		Channels: []entity.Channel{entity.ChannelEmail, entity.ChannelPush},
		Data: map[string]string{
			"points": strconv.Itoa(points),
			"reason": reason,
		},
	})
}

// GetRecentNotifications retrieves the user's newest delivery attempts.
func (srv *notificationService) GetRecentNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.NotificationLog, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	return srv.logRepo.FindRecentByUser(ctx, userID, limit)
}

// fillContact loads the user record when the caller left contact fields empty.
func (srv *notificationService) fillContact(ctx context.Context, opts *usecase.SendOptions) error {
	if opts.Email != "" && opts.Phone != "" && opts.Name != "" {
		return nil
	}

	user, err := srv.userRepo.FindByID(ctx, opts.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return err
		}

		return errors.Wrap(err, "failed to load user for dispatch")
	}

	if opts.Email == "" {
		opts.Email = user.Email
	}
	if opts.Phone == "" {
		opts.Phone = user.Phone
	}
	if opts.Name == "" {
		opts.Name = user.Name
	}

	return nil
}

func (srv *notificationService) loadPreference(ctx context.Context, userID uuid.UUID) *entity.NotificationPreference {
	preference, err := srv.preferenceUC.GetPreferences(ctx, userID)
	if err != nil {
		srv.log(ctx).Warn("Preference load failed, allowing all channels",
			slog.Any("user_id", userID),
			slog.Any("error", err),
		)

		return entity.DefaultPreference(userID)
	}

	return preference
}

func (srv *notificationService) channelAllowed(preference *entity.NotificationPreference, channel entity.Channel, opts *usecase.SendOptions) bool {
	if forced, ok := opts.Overrides[channel]; ok {
		return forced
	}

	return preference.Allows(channel, opts.Type)
}

func (srv *notificationService) sendEmail(ctx context.Context, opts *usecase.SendOptions, content *channelContent, allowed bool) *usecase.ChannelResult {
	result := &usecase.ChannelResult{Channel: entity.ChannelEmail}
	if !allowed || opts.Email == "" {
		result.Skipped = true

		return result
	}

	variables := cloneData(opts.Data)
	variables["name"] = opts.Name

	messageID, err := srv.emailUC.Send(ctx, &usecase.EmailOptions{
		UserID:      opts.UserID,
		Type:        opts.Type,
		To:          opts.Email,
		ToName:      opts.Name,
		TemplateKey: content.templateKey,
		Variables:   variables,
	})
	if err != nil {
		result.Error = err.Error()

		return result
	}

	result.Sent = true
	result.MessageID = messageID

	return result
}

func (srv *notificationService) sendPush(ctx context.Context, opts *usecase.SendOptions, content *channelContent, allowed bool) *usecase.ChannelResult {
	result := &usecase.ChannelResult{Channel: entity.ChannelPush}
	if !allowed {
		result.Skipped = true

		return result
	}

	pushResult, err := srv.pushUC.Send(ctx, opts.UserID, opts.Type, &usecase.PushPayload{
		Title: content.pushTitle,
		Body:  content.pushBody,
		Data:  opts.Data,
	})
	if err != nil {
		result.Error = err.Error()

		return result
	}

	result.Delivered = pushResult.Sent
	result.Failed = pushResult.Failed

	// A user with no registered devices is a normal state, not a failure.
	result.Sent = pushResult.Sent > 0 || pushResult.Total == 0

	return result
}

func (srv *notificationService) sendSMS(ctx context.Context, opts *usecase.SendOptions, content *channelContent, allowed bool) *usecase.ChannelResult {
	result := &usecase.ChannelResult{Channel: entity.ChannelSMS}
	if !allowed || opts.Phone == "" {
		// A missing phone number is treated like preference suppression;
		// the vendor is never invoked and no error is reported.
		result.Skipped = true

		return result
	}

	messageID, err := srv.smsUC.Send(ctx, &usecase.SMSOptions{
		UserID:  opts.UserID,
		Type:    opts.Type,
		Phone:   opts.Phone,
		Message: content.smsText,
	})
	if err != nil {
		result.Error = err.Error()

		return result
	}

	result.Sent = true
	result.MessageID = messageID

	return result
}

// buildContent renders the per-channel content for one notification type.
// Email content lives in the template store and is keyed by the type name;
// push and SMS content is rendered inline from the dispatch data.
func buildContent(notificationType entity.NotificationType, data map[string]string) (*channelContent, error) {
	var pushTitle, pushBody, smsText string

	switch notificationType {
	case entity.TypeOrderConfirmation:
		pushTitle = "Order confirmed"
		pushBody = "Your order {{order_id}} from {{restaurant}} is confirmed. ETA {{eta}}."
		smsText = "Your order {{order_id}} is confirmed! Total: {{total}}. ETA: {{eta}}."
	case entity.TypeOrderStatus:
		pushTitle = "Order update"
		pushBody = "Order {{order_id}} is now {{status}}."
		smsText = "Order {{order_id}} update: {{status}}."
	case entity.TypePromotion:
		pushTitle = "{{title}}"
		pushBody = "{{message}}"
		smsText = "{{title}}: {{message}}"
	case entity.TypeReward:
		pushTitle = "You earned points!"
		pushBody = "You earned {{points}} points: {{reason}}"
		smsText = "You earned {{points}} points! {{reason}}"
	case entity.TypeNewsletter, entity.TypeReminder:
		pushTitle = "{{title}}"
		pushBody = "{{message}}"
		smsText = "{{title}}: {{message}}"
	default:
		return nil, domainerrors.NewValidationError("unknown notification type: " + string(notificationType))
	}

	return &channelContent{
		templateKey: string(notificationType),
		pushTitle:   template.Render(pushTitle, data),
		pushBody:    template.Render(pushBody, data),
		smsText:     template.Render(smsText, data),
	}, nil
}

// channelFailures reports the same failure on every requested channel.
func channelFailures(channels []entity.Channel, err error) *usecase.NotificationResult {
	result := &usecase.NotificationResult{}

	for _, channel := range channels {
		channelResult := &usecase.ChannelResult{Channel: channel, Error: err.Error()}

		switch channel {
		case entity.ChannelEmail:
			result.Email = channelResult
		case entity.ChannelPush:
			result.Push = channelResult
		case entity.ChannelSMS:
			result.SMS = channelResult
		}
	}

	return result
}

func cloneData(data map[string]string) map[string]string {
	clone := make(map[string]string, len(data)+1)
	for key, value := range data {
		clone[key] = value
	}

	return clone
}
