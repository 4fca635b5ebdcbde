package handler

import (
	"log/slog"
	"net/http"

	"crave/internal/delivery/http/response"
	"crave/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	PushUC usecase.PushUsecase
	Logger *slog.Logger
}

// SubscriptionHandler holds dependencies for push-subscription handlers
type SubscriptionHandler struct {
	pushUC usecase.PushUsecase
	logger *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		pushUC: params.PushUC,
		logger: params.Logger,
	}
}

// UnsubscribeRequest represents the request body for removing a subscription
type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint" validate:"required,url"`
}

// RegisterSubscription handles storing a browser push subscription
func (h *SubscriptionHandler) RegisterSubscription(c echo.Context) error {
	userID, ok := userIDFromHeader(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_USER", "Missing or invalid user id header")
	}

	var req usecase.SubscriptionInfo
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if req.UserAgent == "" {
		req.UserAgent = c.Request().UserAgent()
	}

	subscription, err := h.pushUC.RegisterSubscription(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, subscription, "Push subscription registered successfully")
}

// Unsubscribe handles deactivating a push subscription by endpoint
func (h *SubscriptionHandler) Unsubscribe(c echo.Context) error {
	if _, ok := userIDFromHeader(c); !ok {
		return response.Unauthorized(c, "MISSING_USER", "Missing or invalid user id header")
	}

	var req UnsubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid unsubscribe input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.pushUC.Unsubscribe(c.Request().Context(), req.Endpoint); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Unsubscribed"}, "Push subscription removed successfully")
}
