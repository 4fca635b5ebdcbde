package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"crave/internal/delivery/http/response"
	"crave/internal/domain/entity"
	"crave/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler holds dependencies for dispatch and history handlers
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// TestSendRequest represents the request body for the admin test dispatch
type TestSendRequest struct {
	UserID    uuid.UUID               `json:"user_id" validate:"required"`
	Type      entity.NotificationType `json:"type" validate:"required"`
	Channels  []entity.Channel        `json:"channels" validate:"required,min=1"`
	Data      map[string]string       `json:"data"`
	Overrides map[entity.Channel]bool `json:"overrides"`
}

// OrderPlacedRequest represents the order-placed event body
type OrderPlacedRequest struct {
	UserID uuid.UUID          `json:"user_id" validate:"required"`
	Order  *usecase.OrderInfo `json:"order" validate:"required"`
}

// OrderStatusRequest represents the order-status event body
type OrderStatusRequest struct {
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	OrderID string    `json:"order_id" validate:"required"`
	Status  string    `json:"status" validate:"required"`
}

// PromotionRequest represents the promotion event body
type PromotionRequest struct {
	UserID uuid.UUID          `json:"user_id" validate:"required"`
	Promo  *usecase.PromoInfo `json:"promo" validate:"required"`
}

// RewardRequest represents the reward event body
type RewardRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Points int       `json:"points" validate:"required,gt=0"`
	Reason string    `json:"reason" validate:"required"`
}

// TestSend handles the admin test dispatch across arbitrary channels
func (h *NotificationHandler) TestSend(c echo.Context) error {
	var req TestSendRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dispatch input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.notificationUC.Send(c.Request().Context(), &usecase.SendOptions{
		UserID:    req.UserID,
		Type:      req.Type,
		Channels:  req.Channels,
		Data:      req.Data,
		Overrides: req.Overrides,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Notification dispatched")
}

// OrderPlaced handles the order-placed event from the ordering service
func (h *NotificationHandler) OrderPlaced(c echo.Context) error {
	var req OrderPlacedRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order event input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.notificationUC.SendOrderConfirmation(c.Request().Context(), req.UserID, req.Order)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Order confirmation dispatched")
}

// OrderStatus handles the order-status event from the ordering service
func (h *NotificationHandler) OrderStatus(c echo.Context) error {
	var req OrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order event input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.notificationUC.SendOrderStatus(c.Request().Context(), req.UserID, req.OrderID, req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Order status dispatched")
}

// Promotion handles the promotion event from the marketing service
func (h *NotificationHandler) Promotion(c echo.Context) error {
	var req PromotionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promotion input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.notificationUC.SendPromotion(c.Request().Context(), req.UserID, req.Promo)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Promotion dispatched")
}

// Reward handles the loyalty reward event
func (h *NotificationHandler) Reward(c echo.Context) error {
	var req RewardRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reward input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.notificationUC.SendReward(c.Request().Context(), req.UserID, req.Points, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Reward notification dispatched")
}

// GetRecentNotifications handles retrieving the caller's delivery history
func (h *NotificationHandler) GetRecentNotifications(c echo.Context) error {
	userID, ok := userIDFromHeader(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_USER", "Missing or invalid user id header")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	logs, err := h.notificationUC.GetRecentNotifications(c.Request().Context(), userID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, logs, "Notifications retrieved successfully")
}
