package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"crave/config"
	deliverycontext "crave/internal/delivery/context"
	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/repository"
	"crave/internal/domain/service"
	"crave/internal/usecase"
)

const (
	minPhoneDigits     = 10
	truncationEllipsis = "..."
)

// smsService implements the SMSUsecase interface.
type smsService struct {
	vendor      service.SMSVendor
	logRepo     repository.NotificationLogRepository
	countryCode string
	maxLength   int
	logger      *slog.Logger
}

// NewSMSService is the constructor for smsService. A nil vendor means the
// SMS channel is disabled; sends then fail as configuration errors.
func NewSMSService(
	vendor service.SMSVendor,
	logRepo repository.NotificationLogRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SMSUsecase {
	countryCode := "1"
	maxLength := 160
	if cfg.SMS != nil {
		if cfg.SMS.CountryCode != "" {
			countryCode = cfg.SMS.CountryCode
		}
		if cfg.SMS.MaxLength > 0 {
			maxLength = cfg.SMS.MaxLength
		}
	}

	return &smsService{
		vendor:      vendor,
		logRepo:     logRepo,
		countryCode: countryCode,
		maxLength:   maxLength,
		logger:      logger,
	}
}

func (srv *smsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Send normalizes, truncates and delivers one text message. Every invocation
// leaves exactly one audit row; validation failures are recorded without
// any network call.
func (srv *smsService) Send(ctx context.Context, opts *usecase.SMSOptions) (string, error) {
	messageID, recipient, err := srv.send(ctx, opts)
	srv.audit(ctx, opts, recipient, messageID, err)

	return messageID, err
}

func (srv *smsService) send(ctx context.Context, opts *usecase.SMSOptions) (string, string, error) {
	if srv.vendor == nil {
		return "", opts.Phone, domainerrors.NewConfigurationError("sms channel is not configured")
	}

	phone, err := NormalizePhone(opts.Phone, srv.countryCode)
	if err != nil {
		return "", opts.Phone, err
	}

	message := TruncateMessage(opts.Message, srv.maxLength)
	if message != opts.Message {
		srv.log(ctx).Debug("SMS message truncated",
			slog.Any("user_id", opts.UserID),
			slog.Int("max_length", srv.maxLength),
		)
	}

	messageID, err := srv.vendor.Send(ctx, phone, message)

	return messageID, phone, err
}

func (srv *smsService) audit(ctx context.Context, opts *usecase.SMSOptions, recipient, messageID string, sendErr error) {
	log := &entity.NotificationLog{
		UserID:            opts.UserID,
		Channel:           entity.ChannelSMS,
		Type:              opts.Type,
		Recipient:         recipient,
		Status:            entity.StatusSent,
		ProviderMessageID: messageID,
		SentAt:            time.Now(),
	}
	if sendErr != nil {
		log.Status = entity.StatusFailed
		log.ErrorMessage = sendErr.Error()
	}

	if err := srv.logRepo.Create(ctx, log); err != nil {
		srv.log(ctx).Warn("Failed to record sms attempt",
			slog.Any("user_id", opts.UserID),
			slog.Any("error", err),
		)
	}
}

// NormalizePhone converts a raw phone number into vendor-ready digits with a
// country code. The transform is idempotent: feeding a normalized number back
// in returns it unchanged.
func NormalizePhone(phone, countryCode string) (string, error) {
	digits := keepDigits(phone)
	if len(digits) < minPhoneDigits {
		return "", domainerrors.NewValidationError("phone number has too few digits")
	}

	ccDigits := keepDigits(countryCode)

	switch {
	case strings.HasPrefix(digits, "0"):
		// Domestic format with a trunk prefix.
		return ccDigits + digits[1:], nil
	case len(digits) == minPhoneDigits:
		// Bare national number.
		return ccDigits + digits, nil
	default:
		// Longer numbers already carry a country code.
		return digits, nil
	}
}

func keepDigits(value string) string {
	var builder strings.Builder
	builder.Grow(len(value))

	for _, r := range value {
		if unicode.IsDigit(r) {
			builder.WriteRune(r)
		}
	}

	return builder.String()
}

// TruncateMessage caps the message at maxLength runes, replacing the tail
// with an ellipsis so the cut is visible to the recipient.
func TruncateMessage(message string, maxLength int) string {
	runes := []rune(message)
	if len(runes) <= maxLength {
		return message
	}

	keep := maxLength - len(truncationEllipsis)
	if keep < 0 {
		keep = 0
	}

	return string(runes[:keep]) + truncationEllipsis
}
