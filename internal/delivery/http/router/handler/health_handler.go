package handler

import (
	"github.com/labstack/echo/v4"

	"ishop/internal/delivery/http/response"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Message(c, "Service is healthy", map[string]string{"status": "ok"})
}
