// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"crave/internal/delivery/http/middleware"
	"crave/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PreferenceHandler   *handler.PreferenceHandler
	SubscriptionHandler *handler.SubscriptionHandler
	NotificationHandler *handler.NotificationHandler
	BroadcastHandler    *handler.BroadcastHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	preferenceHandler   *handler.PreferenceHandler
	subscriptionHandler *handler.SubscriptionHandler
	notificationHandler *handler.NotificationHandler
	broadcastHandler    *handler.BroadcastHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		preferenceHandler:   params.PreferenceHandler,
		subscriptionHandler: params.SubscriptionHandler,
		notificationHandler: params.NotificationHandler,
		broadcastHandler:    params.BroadcastHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Self-service routes; the user id comes from the gateway header.
	meGroup := e.Group("/me")
	{
		meGroup.GET("/preferences", r.preferenceHandler.GetPreferences)
		meGroup.PUT("/preferences", r.preferenceHandler.UpdatePreferences)
		meGroup.POST("/push-subscriptions", r.subscriptionHandler.RegisterSubscription)
		meGroup.DELETE("/push-subscriptions", r.subscriptionHandler.Unsubscribe)
		meGroup.GET("/notifications", r.notificationHandler.GetRecentNotifications)
	}

	// Event routes called by sibling services.
	eventGroup := e.Group("/internal/events")
	{
		eventGroup.POST("/order-placed", r.notificationHandler.OrderPlaced)
		eventGroup.POST("/order-status", r.notificationHandler.OrderStatus)
		eventGroup.POST("/promotion", r.notificationHandler.Promotion)
		eventGroup.POST("/reward", r.notificationHandler.Reward)
	}

	// Admin routes; authorization happens at the gateway.
	adminGroup := e.Group("/admin")
	{
		adminGroup.POST("/notifications/test", r.notificationHandler.TestSend)
		adminGroup.POST("/notifications/broadcast", r.broadcastHandler.Broadcast)
		adminGroup.POST("/emails/batch", r.broadcastHandler.BatchEmail)
	}
}
