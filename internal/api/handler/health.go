package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/liderlab/assessment-system/internal/core/ports"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	users ports.UserRepository
}

func NewHealthHandler(users ports.UserRepository) *HealthHandler {
	return &HealthHandler{users: users}
}

// Liveness confirms the process is alive.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Readiness confirms the storage backend is reachable.
func (h *HealthHandler) Readiness(c echo.Context) error {
	if _, err := h.users.List(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
			"error":  "storage not reachable",
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ready",
	})
}
