package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/liderlab/assessment-system/internal/api/metrics"
	"github.com/liderlab/assessment-system/internal/api/middleware"
	"github.com/liderlab/assessment-system/internal/core/domain"
	"github.com/liderlab/assessment-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginForm renders the login page.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", map[string]any{
		"Flash": takeFlash(c),
	})
}

// Login authenticates the submitted credentials and establishes the cookie
// session.
func (h *AuthHandler) Login(c echo.Context) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	user, err := h.authService.Verify(c.Request().Context(), email, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		setFlash(c, "danger", "Neuspješna prijava. Provjerite podatke.")
		return c.Redirect(http.StatusFound, "/login")
	}

	if err := middleware.EstablishSession(c, *user); err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	setFlash(c, "success", "Dobrodošli natrag!")
	return c.Redirect(http.StatusFound, "/")
}

// Logout clears the session.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := middleware.ClearSession(c); err != nil {
		return err
	}
	setFlash(c, "info", "Odjavljeni ste.")
	return c.Redirect(http.StatusFound, "/login")
}

type apiLoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type apiLoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// APILogin authenticates a user and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      apiLoginRequest  true  "Login credentials"
// @Success      200   {object}  apiLoginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) APILogin(c echo.Context) error {
	var req apiLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Verify(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	token, err := h.authService.IssueToken(*user)
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, apiLoginResponse{Token: token, User: user})
}
