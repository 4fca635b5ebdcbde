package errors

import (
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsKind(t *testing.T) {
	t.Parallel()

	err := NewValidationError("phone number has too few digits")
	assert.True(t, IsKind(err, KindValidation))
	assert.False(t, IsKind(err, KindProvider))
	assert.False(t, IsKind(nil, KindValidation))
	assert.False(t, IsKind(pkgerrors.New("plain"), KindValidation))
}

func TestIsKind_Wrapped(t *testing.T) {
	t.Parallel()

	err := pkgerrors.Wrap(NewSubscriptionGone("https://push.example.com/sub/a"), "send failed")
	assert.True(t, IsKind(err, KindSubscriptionGone))
}

func TestProviderError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := pkgerrors.New("connection reset")
	err := NewProviderError("vendor call failed", cause)

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "vendor call failed")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestNewTemplateNotFound(t *testing.T) {
	t.Parallel()

	err := NewTemplateNotFound("order_confirmation")
	assert.True(t, IsKind(err, KindTemplateNotFound))
	assert.Contains(t, err.Error(), "order_confirmation")
}
