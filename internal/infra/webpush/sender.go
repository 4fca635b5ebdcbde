// Package webpush delivers notifications to browser push endpoints using the
// Web Push protocol with VAPID authentication.
package webpush

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"crave/config"
	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/service"

	webpushgo "github.com/SherClockHolmes/webpush-go"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type sender struct {
	options webpushgo.Options
}

// Params holds dependencies for the push sender, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates a PushSender based on configuration. A nil sender means the
// push channel is disabled.
func New(params Params) (service.PushSender, error) {
	cfg := params.Config.WebPush
	logger := params.Logger

	if cfg == nil || cfg.VAPIDPublicKey == "" {
		logger.Info("WebPush not configured, channel disabled")

		return nil, nil
	}

	if cfg.VAPIDPrivateKey == "" {
		return nil, errors.New("VAPID private key is required for web push")
	}
	if cfg.Subscriber == "" {
		return nil, errors.New("subscriber contact is required for web push")
	}

	logger.Info("Using Web Push sender",
		slog.String("subscriber", cfg.Subscriber),
	)

	return &sender{
		options: webpushgo.Options{
			Subscriber:      cfg.Subscriber,
			VAPIDPublicKey:  cfg.VAPIDPublicKey,
			VAPIDPrivateKey: cfg.VAPIDPrivateKey,
			TTL:             cfg.TTL,
			HTTPClient:      &http.Client{Timeout: params.Config.Providers.Timeout},
		},
	}, nil
}

// Send encrypts and delivers one message to one subscription endpoint.
// A 404 or 410 from the push service means the subscription no longer
// exists; callers deactivate it on that error kind.
func (s *sender) Send(ctx context.Context, subscription *entity.PushSubscription, message *service.PushMessage) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return errors.Wrap(err, "failed to marshal push payload")
	}

	resp, err := webpushgo.SendNotificationWithContext(ctx, payload, &webpushgo.Subscription{
		Endpoint: subscription.Endpoint,
		Keys: webpushgo.Keys{
			P256dh: subscription.P256dhKey,
			Auth:   subscription.AuthKey,
		},
	}, &s.options)
	if err != nil {
		return domainerrors.NewProviderError("web push send failed", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return domainerrors.NewSubscriptionGone(subscription.Endpoint)
	case resp.StatusCode >= http.StatusBadRequest:
		return domainerrors.NewProviderError(
			"push service returned "+resp.Status, nil)
	}

	return nil
}
