// Package handler contains the echo request handlers of the HTTP delivery.
package handler

import (
	"net/http"

	"crave/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXUserID carries the acting user's id, set by the API gateway after
// authentication. This service trusts it; auth happens upstream.
const HeaderXUserID = "X-User-Id"

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service healthy")
}

// userIDFromHeader extracts and parses the authenticated user id header.
func userIDFromHeader(c echo.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.Request().Header.Get(HeaderXUserID))
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}
