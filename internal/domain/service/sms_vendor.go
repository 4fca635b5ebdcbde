package service

import "context"

// SMSVendor is one interchangeable SMS backend. The active vendor is selected
// once at startup; Send receives an already normalized, already truncated
// message.
type SMSVendor interface {
	// Name identifies the vendor, e.g. "twilio".
	Name() string

	// Configured reports whether every credential the vendor requires is set.
	// An unconfigured vendor must not be called over the network.
	Configured() bool

	// Send performs one delivery call and returns the vendor message id.
	Send(ctx context.Context, phone, message string) (messageID string, err error)
}
