package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/liderlab/assessment-system/internal/core/domain"
)

// ContextUserKey is the echo context key under which the resolved acting
// user is stored.
const ContextUserKey = "user"

// WebAuth resolves the current user from the cookie session; anonymous
// requests are redirected to the login page.
func WebAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := sessionUser(c)
			if !ok {
				return c.Redirect(http.StatusFound, "/login")
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// APIAuth resolves the current user from a Bearer JWT, falling back to an
// established cookie session so browser scripts can reuse their login.
func APIAuth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				user, ok := sessionUser(c)
				if !ok {
					return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
				}
				c.Set(ContextUserKey, user)
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			email, _ := claims["email"].(string)
			role, _ := claims["role"].(string)
			if email == "" || role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			c.Set(ContextUserKey, domain.User{Email: email, Role: role})
			return next(c)
		}
	}
}
