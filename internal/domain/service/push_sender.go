package service

import (
	"context"

	"crave/internal/domain/entity"
)

// PushMessage is the payload delivered to one push endpoint.
type PushMessage struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// PushSender delivers one message to one Web Push subscription. A permanently
// invalid endpoint surfaces as a subscription-gone dispatch error so the
// caller can deactivate the subscription; any other failure is transient from
// the caller's point of view.
type PushSender interface {
	Send(ctx context.Context, subscription *entity.PushSubscription, msg *PushMessage) error
}
