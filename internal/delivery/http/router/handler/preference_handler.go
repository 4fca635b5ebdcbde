package handler

import (
	"log/slog"
	"net/http"

	"crave/internal/delivery/http/response"
	"crave/internal/domain/entity"
	"crave/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PreferenceHandlerParams holds dependencies for PreferenceHandler, injected by Fx.
type PreferenceHandlerParams struct {
	fx.In

	PreferenceUC usecase.PreferenceUsecase
	Logger       *slog.Logger
}

// PreferenceHandler holds dependencies for preference-related handlers
type PreferenceHandler struct {
	preferenceUC usecase.PreferenceUsecase
	logger       *slog.Logger
}

// NewPreferenceHandler is the constructor for PreferenceHandler
func NewPreferenceHandler(params PreferenceHandlerParams) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceUC: params.PreferenceUC,
		logger:       params.Logger,
	}
}

// GetPreferences handles retrieving the caller's notification preferences.
// Users who never saved preferences receive the all-enabled defaults.
func (h *PreferenceHandler) GetPreferences(c echo.Context) error {
	userID, ok := userIDFromHeader(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_USER", "Missing or invalid user id header")
	}

	preferences, err := h.preferenceUC.GetPreferences(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, preferences, "Preferences retrieved successfully")
}

// UpdatePreferences handles replacing the caller's notification preferences.
func (h *PreferenceHandler) UpdatePreferences(c echo.Context) error {
	userID, ok := userIDFromHeader(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_USER", "Missing or invalid user id header")
	}

	var req entity.NotificationPreference
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preference input")
	}
	req.UserID = userID

	if err := h.preferenceUC.UpdatePreferences(c.Request().Context(), &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, req, "Preferences updated successfully")
}
