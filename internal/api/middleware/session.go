package middleware

import (
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/liderlab/assessment-system/internal/core/domain"
)

const (
	sessionName     = "assessment_session"
	sessionEmailKey = "user_email"
	sessionRoleKey  = "user_role"

	sessionMaxAge = 7 * 24 * 60 * 60 // seconds
)

// NewSessionStore builds the cookie store used by the session middleware.
func NewSessionStore(secret string) sessions.Store {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
	}
	return store
}

// EstablishSession records the authenticated user in the cookie session.
// Only email and role are stored; the user is re-derived on every request.
func EstablishSession(c echo.Context, user domain.User) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.Values[sessionEmailKey] = user.Email
	sess.Values[sessionRoleKey] = user.Role
	return sess.Save(c.Request(), c.Response())
}

// ClearSession removes the login from the cookie session.
func ClearSession(c echo.Context) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	delete(sess.Values, sessionEmailKey)
	delete(sess.Values, sessionRoleKey)
	sess.Options.MaxAge = -1
	return sess.Save(c.Request(), c.Response())
}

func sessionUser(c echo.Context) (domain.User, bool) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return domain.User{}, false
	}
	email, _ := sess.Values[sessionEmailKey].(string)
	role, _ := sess.Values[sessionRoleKey].(string)
	if email == "" || role == "" {
		return domain.User{}, false
	}
	return domain.User{Email: email, Role: role}, true
}
