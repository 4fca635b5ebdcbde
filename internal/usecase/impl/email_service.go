package impl

import (
	"context"
	"log/slog"
	"time"

	"crave/config"
	deliverycontext "crave/internal/delivery/context"
	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/repository"
	"crave/internal/domain/service"
	"crave/internal/template"
	"crave/internal/usecase"

	"github.com/pkg/errors"
)

// emailService implements the EmailUsecase interface.
type emailService struct {
	sender       service.EmailSender
	templateRepo repository.TemplateRepository
	logRepo      repository.NotificationLogRepository
	callTimeout  time.Duration
	logger       *slog.Logger
}

// NewEmailService is the constructor for emailService. A nil sender means
// the email channel is disabled; sends then fail as configuration errors.
func NewEmailService(
	sender service.EmailSender,
	templateRepo repository.TemplateRepository,
	logRepo repository.NotificationLogRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.EmailUsecase {
	return &emailService{
		sender:       sender,
		templateRepo: templateRepo,
		logRepo:      logRepo,
		callTimeout:  cfg.Providers.Timeout,
		logger:       logger,
	}
}

func (srv *emailService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Send delivers one email and records the attempt. Every invocation leaves
// exactly one audit row, whether the send reached the provider or not.
func (srv *emailService) Send(ctx context.Context, opts *usecase.EmailOptions) (string, error) {
	messageID, err := srv.send(ctx, opts)
	srv.audit(ctx, opts, messageID, err)

	return messageID, err
}

func (srv *emailService) send(ctx context.Context, opts *usecase.EmailOptions) (string, error) {
	if opts.To == "" {
		return "", domainerrors.NewValidationError("recipient email address is required")
	}
	if srv.sender == nil {
		return "", domainerrors.NewConfigurationError("email channel is not configured")
	}

	subject, htmlBody, textBody := opts.Subject, opts.HTMLBody, opts.TextBody
	if opts.TemplateKey != "" {
		tmpl, err := srv.templateRepo.FindActiveByKey(ctx, opts.TemplateKey)
		if err != nil {
			if errors.Is(err, repository.ErrTemplateNotFound) {
				return "", domainerrors.NewTemplateNotFound(opts.TemplateKey)
			}

			return "", domainerrors.NewProviderError("template lookup failed", err)
		}

		subject = template.Render(tmpl.Subject, opts.Variables)
		htmlBody = template.Render(tmpl.HTMLContent, opts.Variables)
		textBody = template.Render(tmpl.TextContent, opts.Variables)
	}

	sendCtx, cancel := context.WithTimeout(ctx, srv.callTimeout)
	defer cancel()

	return srv.sender.Send(sendCtx, &service.EmailMessage{
		To:       opts.To,
		ToName:   opts.ToName,
		Subject:  subject,
		HTMLBody: htmlBody,
		TextBody: textBody,
		Tag:      string(opts.Type),
	})
}

func (srv *emailService) audit(ctx context.Context, opts *usecase.EmailOptions, messageID string, sendErr error) {
	log := &entity.NotificationLog{
		UserID:            opts.UserID,
		Channel:           entity.ChannelEmail,
		Type:              opts.Type,
		Recipient:         opts.To,
		Status:            entity.StatusSent,
		ProviderMessageID: messageID,
		SentAt:            time.Now(),
	}
	if sendErr != nil {
		log.Status = entity.StatusFailed
		log.ErrorMessage = sendErr.Error()
	}

	if err := srv.logRepo.Create(ctx, log); err != nil {
		srv.log(ctx).Warn("Failed to record email attempt",
			slog.Any("user_id", opts.UserID),
			slog.Any("error", err),
		)
	}
}
