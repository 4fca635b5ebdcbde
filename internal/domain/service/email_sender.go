// Package service defines the interfaces for outbound delivery collaborators.
package service

import "context"

// EmailMessage is one fully rendered email, ready for delivery.
type EmailMessage struct {
	To       string
	ToName   string
	Subject  string
	HTMLBody string
	TextBody string
	Tag      string // Provider-side category tag, e.g. the notification type.
}

// EmailSender performs exactly one external delivery call per invocation.
// Implementations return the provider message id when the vendor supplies one.
type EmailSender interface {
	Send(ctx context.Context, msg *EmailMessage) (messageID string, err error)
}
