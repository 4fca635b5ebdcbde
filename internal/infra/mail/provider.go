// Package mail contains the outbound email backends for the email channel.
package mail

import (
	"log/slog"

	"crave/config"
	"crave/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Provider names accepted in the email configuration.
const (
	ProviderPostmark = "postmark"
	ProviderSMTP     = "smtp"
)

// Params holds dependencies for the email sender, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates an EmailSender based on configuration. A nil sender means the
// email channel is disabled; callers report attempts as configuration
// failures instead of crashing.
func New(params Params) (service.EmailSender, error) {
	cfg := params.Config.Email
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Email not configured, channel disabled")

		return nil, nil
	}

	if cfg.FromEmail == "" {
		return nil, errors.New("fromEmail is required for email sending")
	}

	switch cfg.Provider {
	case ProviderPostmark:
		if cfg.Postmark.ServerToken == "" {
			return nil, errors.New("server token is required for postmark provider")
		}
		logger.Info("Using Postmark email sender",
			slog.String("from", cfg.FromEmail),
		)

		return NewPostmarkSender(cfg), nil

	case ProviderSMTP:
		if cfg.SMTP.Host == "" || cfg.SMTP.Port == 0 {
			return nil, errors.New("host and port are required for smtp provider")
		}
		logger.Info("Using SMTP email sender",
			slog.String("host", cfg.SMTP.Host),
			slog.Int("port", cfg.SMTP.Port),
		)

		return NewSMTPSender(cfg), nil

	default:
		return nil, errors.Errorf("unknown email provider: %s", cfg.Provider)
	}
}
