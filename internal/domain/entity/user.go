package entity

import (
	"time"

	"github.com/google/uuid"
)

// Segment names a queryable audience subset used for broadcast targeting.
type Segment string

const (
	SegmentActive Segment = "active" // Ordered within the configured activity window.
	SegmentNew    Segment = "new"    // Joined within the configured window.
	SegmentVIP    Segment = "vip"    // Loyalty points at or above the configured threshold.
)

// User is the identity record the notifier reads: contact media plus the
// loyalty fields segments are computed from. The full customer profile lives
// in the platform's account service.
type User struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`         // Empty when the user has no email on file.
	Phone       string     `json:"phone"`         // Empty when the user has no phone on file.
	Name        string     `json:"name"`          // Display name used in greetings.
	Points      int        `json:"points"`        // Loyalty point balance.
	LastOrderAt *time.Time `json:"last_order_at"` // Nil until the first order.
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
