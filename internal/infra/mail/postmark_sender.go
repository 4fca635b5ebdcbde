package mail

import (
	"context"
	"fmt"

	"crave/config"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/service"

	"github.com/mrz1836/postmark"
)

type postmarkSender struct {
	client    *postmark.Client
	fromEmail string
	fromName  string
}

// NewPostmarkSender creates an EmailSender backed by the Postmark API.
func NewPostmarkSender(cfg *config.EmailConfig) service.EmailSender {
	return &postmarkSender{
		client:    postmark.NewClient(cfg.Postmark.ServerToken, cfg.Postmark.AccountToken),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

// Send delivers one email through Postmark and returns the provider message id.
func (s *postmarkSender) Send(ctx context.Context, message *service.EmailMessage) (string, error) {
	email := postmark.Email{
		From:     s.fromAddress(),
		To:       message.To,
		Subject:  message.Subject,
		HTMLBody: message.HTMLBody,
		TextBody: message.TextBody,
		Tag:      message.Tag,
	}

	resp, err := s.client.SendEmail(ctx, email)
	if err != nil {
		return "", domainerrors.NewProviderError("postmark send failed", err)
	}

	// Postmark reports per-message rejections with a 200 response and a
	// non-zero error code in the body.
	if resp.ErrorCode != 0 {
		return "", domainerrors.NewProviderError(
			fmt.Sprintf("postmark rejected message (code %d): %s", resp.ErrorCode, resp.Message), nil)
	}

	return resp.MessageID, nil
}

func (s *postmarkSender) fromAddress() string {
	if s.fromName == "" {
		return s.fromEmail
	}

	return fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
}
