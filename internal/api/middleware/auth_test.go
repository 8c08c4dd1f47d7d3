package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/liderlab/assessment-system/internal/core/domain"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAPIAuth_ValidToken(t *testing.T) {
	e := echo.New()
	signed := signToken(t, "secret", jwt.MapClaims{
		"email": "ana@example.com",
		"role":  domain.RoleMaster,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := APIAuth("secret")(func(c echo.Context) error {
		called = true
		user, ok := c.Get(ContextUserKey).(domain.User)
		if !ok {
			t.Fatal("user not set in context")
		}
		if user.Email != "ana@example.com" || user.Role != domain.RoleMaster {
			t.Fatalf("unexpected user: %+v", user)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatal("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAPIAuth_MissingAuthentication(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := APIAuth("secret")(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})

	err := handler(c)
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAPIAuth_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := APIAuth("secret")(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})

	assertHTTPError(t, handler(c), http.StatusUnauthorized)
}

func TestAPIAuth_WrongSecret(t *testing.T) {
	e := echo.New()
	signed := signToken(t, "other-secret", jwt.MapClaims{
		"email": "ana@example.com",
		"role":  domain.RoleStandard,
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := APIAuth("secret")(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})

	assertHTTPError(t, handler(c), http.StatusUnauthorized)
}

func TestAPIAuth_MissingClaims(t *testing.T) {
	e := echo.New()
	signed := signToken(t, "secret", jwt.MapClaims{
		"email": "ana@example.com",
		// role deliberately absent
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := APIAuth("secret")(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})

	assertHTTPError(t, handler(c), http.StatusUnauthorized)
}

func TestAPIAuth_SessionFallback(t *testing.T) {
	e := echo.New()
	e.Use(session.Middleware(NewSessionStore("session-secret")))

	// Log in once to obtain the session cookie.
	e.GET("/establish", func(c echo.Context) error {
		if err := EstablishSession(c, domain.User{Email: "ana@example.com", Role: domain.RoleStandard}); err != nil {
			return err
		}
		return c.NoContent(http.StatusOK)
	})

	e.GET("/protected", func(c echo.Context) error {
		user, ok := c.Get(ContextUserKey).(domain.User)
		if !ok {
			t.Fatal("user not set in context")
		}
		if user.Email != "ana@example.com" {
			t.Fatalf("unexpected user: %+v", user)
		}
		return c.NoContent(http.StatusOK)
	}, APIAuth("secret"))

	loginReq := httptest.NewRequest(http.MethodGet, "/establish", nil)
	loginRec := httptest.NewRecorder()
	e.ServeHTTP(loginRec, loginReq)
	if loginRec.Code != http.StatusOK {
		t.Fatalf("establish session: expected 200, got %d", loginRec.Code)
	}
	cookies := loginRec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 via session fallback, got %d", rec.Code)
	}
}

func TestWebAuth_RedirectsAnonymous(t *testing.T) {
	e := echo.New()
	e.Use(session.Middleware(NewSessionStore("session-secret")))
	e.GET("/", func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	}, WebAuth())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func assertHTTPError(t *testing.T, err error, wantCode int) {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != wantCode {
		t.Fatalf("expected status %d, got %d", wantCode, httpErr.Code)
	}
}
