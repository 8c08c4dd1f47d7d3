package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/liderlab/assessment-system/internal/api/middleware"
	"github.com/liderlab/assessment-system/internal/core/domain"
)

// currentUser extracts the acting user injected by the auth middleware.
// Presence proves the middleware ran; handlers never trust anything else.
func currentUser(c echo.Context) (domain.User, error) {
	user, ok := c.Get(middleware.ContextUserKey).(domain.User)
	if !ok || user.Email == "" {
		return domain.User{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
