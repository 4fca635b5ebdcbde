package response

import (
	"net/http"

	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Response unified API response structure
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "USER_NOT_FOUND"
	Details string `json:"details"` // Detailed error description
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// BindingError binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

// NotFound 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, "")
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}

// HandleAppError maps application errors to HTTP responses. Channel-level
// delivery failures never reach this path; they travel inside result bodies.
func HandleAppError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found", err.Error())
	case errors.Is(err, repository.ErrUnknownSegment):
		return Error(c, http.StatusBadRequest, "UNKNOWN_SEGMENT", "Unknown audience segment", err.Error())
	case domainerrors.IsKind(err, domainerrors.KindValidation):
		return Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
	case domainerrors.IsKind(err, domainerrors.KindTemplateNotFound):
		return Error(c, http.StatusNotFound, "TEMPLATE_NOT_FOUND", "Template not found", err.Error())
	case domainerrors.IsKind(err, domainerrors.KindConfiguration):
		return Error(c, http.StatusServiceUnavailable, "CHANNEL_NOT_CONFIGURED", "Channel not configured", err.Error())
	case domainerrors.IsKind(err, domainerrors.KindSubscriptionGone):
		return Error(c, http.StatusGone, "SUBSCRIPTION_GONE", "Push subscription gone", err.Error())
	case domainerrors.IsKind(err, domainerrors.KindProvider):
		return Error(c, http.StatusBadGateway, "PROVIDER_ERROR", "Delivery provider failed", err.Error())
	default:
		return InternalServerError(c, "INTERNAL_ERROR", err.Error())
	}
}
