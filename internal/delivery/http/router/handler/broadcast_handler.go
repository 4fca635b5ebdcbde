package handler

import (
	"log/slog"
	"net/http"

	"crave/internal/delivery/http/response"
	"crave/internal/domain/entity"
	"crave/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BroadcastHandlerParams holds dependencies for BroadcastHandler, injected by Fx.
type BroadcastHandlerParams struct {
	fx.In

	BroadcastUC usecase.BroadcastUsecase
	Logger      *slog.Logger
}

// BroadcastHandler holds dependencies for audience-wide dispatch handlers
type BroadcastHandler struct {
	broadcastUC usecase.BroadcastUsecase
	logger      *slog.Logger
}

// NewBroadcastHandler is the constructor for BroadcastHandler
func NewBroadcastHandler(params BroadcastHandlerParams) *BroadcastHandler {
	return &BroadcastHandler{
		broadcastUC: params.BroadcastUC,
		logger:      params.Logger,
	}
}

// BroadcastRequest represents the request body for an audience broadcast.
// Either UserIDs or Segment selects the audience.
type BroadcastRequest struct {
	UserIDs []uuid.UUID               `json:"user_ids"`
	Segment entity.Segment            `json:"segment"`
	Payload *usecase.BroadcastPayload `json:"payload" validate:"required"`
}

// BatchEmailRequest represents the request body for a batch email run
type BatchEmailRequest struct {
	Recipients  []usecase.EmailRecipient `json:"recipients" validate:"required,min=1,dive"`
	Type        entity.NotificationType  `json:"type" validate:"required"`
	TemplateKey string                   `json:"template_key" validate:"required"`
}

// Broadcast handles dispatching one payload to a list of users or a segment
func (h *BroadcastHandler) Broadcast(c echo.Context) error {
	var req BroadcastRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid broadcast input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if len(req.UserIDs) == 0 && req.Segment == "" {
		return response.BadRequest(c, "EMPTY_AUDIENCE", "Either user_ids or segment is required")
	}

	ctx := c.Request().Context()

	var (
		results []*usecase.UserNotificationResult
		err     error
	)
	if req.Segment != "" {
		results, err = h.broadcastUC.NotifySegment(ctx, req.Segment, req.Payload)
	} else {
		results, err = h.broadcastUC.NotifyUsers(ctx, req.UserIDs, req.Payload)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, results, "Broadcast dispatched")
}

// BatchEmail handles sending one templated email to a recipient list
func (h *BroadcastHandler) BatchEmail(c echo.Context) error {
	var req BatchEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid batch email input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.broadcastUC.SendBatchEmail(c.Request().Context(), req.Recipients, req.Type, req.TemplateKey)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Batch email completed")
}
