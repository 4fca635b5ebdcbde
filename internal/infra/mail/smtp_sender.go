package mail

import (
	"context"

	"crave/config"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/service"

	"gopkg.in/gomail.v2"
)

type smtpSender struct {
	dialer    *gomail.Dialer
	fromEmail string
	fromName  string
}

// NewSMTPSender creates an EmailSender that delivers through a plain SMTP
// relay, used for self-hosted and development setups.
func NewSMTPSender(cfg *config.EmailConfig) service.EmailSender {
	return &smtpSender{
		dialer:    gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

// Send delivers one email over SMTP. The protocol has no message id to
// return, so the id is always empty on success.
func (s *smtpSender) Send(ctx context.Context, message *service.EmailMessage) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", domainerrors.NewProviderError("smtp send aborted", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(s.fromEmail, s.fromName))
	if message.ToName != "" {
		msg.SetHeader("To", msg.FormatAddress(message.To, message.ToName))
	} else {
		msg.SetHeader("To", message.To)
	}
	msg.SetHeader("Subject", message.Subject)

	if message.TextBody != "" {
		msg.SetBody("text/plain", message.TextBody)
		if message.HTMLBody != "" {
			msg.AddAlternative("text/html", message.HTMLBody)
		}
	} else {
		msg.SetBody("text/html", message.HTMLBody)
	}

	if err := s.dialer.DialAndSend(msg); err != nil {
		return "", domainerrors.NewProviderError("smtp send failed", err)
	}

	return "", nil
}
