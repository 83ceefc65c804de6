package auth

import (
	"fmt"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/aciky/community-api/internal/core/domain"
)

// SessionName is the cookie under which the gorilla session travels.
const SessionName = "aciky_session"

const (
	sessionKeyUserID   = "userId"
	sessionKeyUsername = "username"
	sessionKeyEmail    = "email"
	sessionKeyRole     = "role"
)

// SessionUserID reads the logged-in user id from the request session.
func SessionUserID(c echo.Context) (int64, bool) {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return 0, false
	}
	id, ok := sess.Values[sessionKeyUserID].(int64)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

// SessionRole reads the cached role claim from the session. Only advisory:
// the role gates re-read from the user store, this is used for the admin
// rate-limit exemption where a stale claim is harmless.
func SessionRole(c echo.Context) string {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return ""
	}
	role, _ := sess.Values[sessionKeyRole].(string)
	return role
}

// SessionIdentity returns the full cached identity for GET /api/auth/check.
func SessionIdentity(c echo.Context) (*domain.PublicUser, bool) {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return nil, false
	}
	id, ok := sess.Values[sessionKeyUserID].(int64)
	if !ok || id == 0 {
		return nil, false
	}
	username, _ := sess.Values[sessionKeyUsername].(string)
	email, _ := sess.Values[sessionKeyEmail].(string)
	role, _ := sess.Values[sessionKeyRole].(string)
	return &domain.PublicUser{ID: id, Username: username, Email: email, Role: role}, true
}

// EstablishSession records a fresh login in the session.
func EstablishSession(c echo.Context, user *domain.User) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	sess.Values[sessionKeyUserID] = user.ID
	sess.Values[sessionKeyUsername] = user.Username
	sess.Values[sessionKeyEmail] = user.Email
	sess.Values[sessionKeyRole] = user.Role
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// RefreshSessionIdentity updates the cached username/email after a profile
// change so /api/auth/check reflects it without a re-login.
func RefreshSessionIdentity(c echo.Context, username, email string) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	sess.Values[sessionKeyUsername] = username
	sess.Values[sessionKeyEmail] = email
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// writeBackUserID stores a bearer-resolved id into the session so later
// middleware in the same request sees one consistent identity.
func writeBackUserID(c echo.Context, id int64) {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return
	}
	sess.Values[sessionKeyUserID] = id
	// Save errors are non-fatal here: the id is already resolved for this
	// request, the write-back only helps the next middleware hop.
	_ = sess.Save(c.Request(), c.Response())
}

// DestroySession expires the session cookie. Idempotent: logging out twice
// succeeds both times.
func DestroySession(c echo.Context) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	sess.Values = map[any]any{}
	sess.Options = &sessions.Options{MaxAge: -1, Path: "/", HttpOnly: true}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}
