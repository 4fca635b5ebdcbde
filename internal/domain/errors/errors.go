// Package errors defines the delivery error taxonomy shared by all
// notification channels.
package errors

import (
	"fmt"

	"crave/internal/errors"
)

// Kind classifies a delivery failure. Configuration, validation and
// template-not-found failures are detected before any network call;
// provider and subscription-gone failures come back from the vendor.
type Kind string

const (
	KindConfiguration    Kind = "configuration"
	KindValidation       Kind = "validation"
	KindTemplateNotFound Kind = "template_not_found"
	KindProvider         Kind = "provider"
	KindSubscriptionGone Kind = "subscription_gone"
)

// DispatchError is the error value every channel failure is converted to.
// Preference suppression is not an error and never produces one.
type DispatchError struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *DispatchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *DispatchError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError reports absent or incomplete provider credentials;
// the send was never attempted.
func NewConfigurationError(message string) *DispatchError {
	return &DispatchError{Kind: KindConfiguration, Message: message}
}

// NewValidationError reports malformed caller input; the send was never
// attempted.
func NewValidationError(message string) *DispatchError {
	return &DispatchError{Kind: KindValidation, Message: message}
}

// NewTemplateNotFound reports a template lookup miss; the send was never
// attempted.
func NewTemplateNotFound(templateKey string) *DispatchError {
	return &DispatchError{
		Kind:    KindTemplateNotFound,
		Message: fmt.Sprintf("email template %q not found or inactive", templateKey),
	}
}

// NewProviderError reports that the external call was attempted and the
// vendor rejected or failed it.
func NewProviderError(message string, cause error) *DispatchError {
	return &DispatchError{Kind: KindProvider, Message: message, Cause: cause}
}

// NewSubscriptionGone reports a push endpoint the delivery service declared
// permanently unreachable; the subscription should be deactivated, not
// retried.
func NewSubscriptionGone(endpoint string) *DispatchError {
	return &DispatchError{
		Kind:    KindSubscriptionGone,
		Message: fmt.Sprintf("push endpoint permanently gone: %s", endpoint),
	}
}

// IsKind reports whether err carries a DispatchError of the given kind
// anywhere in its tree.
func IsKind(err error, kind Kind) bool {
	var dispatchErr *DispatchError
	if !errors.As(err, &dispatchErr) {
		return false
	}

	return dispatchErr.Kind == kind
}
