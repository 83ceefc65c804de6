package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aciky/community-api/internal/auth"
	"github.com/aciky/community-api/internal/core/domain"
)

// stubRoleReader serves roles from a map and can be forced to fail.
type stubRoleReader struct {
	roles map[int64]string
	err   error
}

func (r *stubRoleReader) RoleByID(_ context.Context, id int64) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	role, ok := r.roles[id]
	if !ok {
		return "", domain.ErrUserNotFound
	}
	return role, nil
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func request(e *echo.Echo, bearerID int64) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if bearerID != 0 {
		req.Header.Set(echo.HeaderAuthorization, auth.EncodeBearerToken(bearerID, time.Now()))
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	e := echo.New()
	e.GET("/", func(c echo.Context) error {
		id, ok := c.Get(CtxUserIDKey).(int64)
		if !ok || id != 5 {
			t.Errorf("context user id = %v", c.Get(CtxUserIDKey))
		}
		return c.NoContent(http.StatusOK)
	}, RequireAuth())

	if rec := request(e, 0); rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous status = %d, want 401", rec.Code)
	}
	if rec := request(e, 5); rec.Code != http.StatusOK {
		t.Errorf("authenticated status = %d, want 200", rec.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	users := &stubRoleReader{roles: map[int64]string{
		1: domain.RoleAdmin,
		2: domain.RoleUser,
		3: domain.RoleInstructor,
	}}
	e := echo.New()
	e.GET("/", okHandler, RequireAdmin(users))

	cases := []struct {
		name string
		id   int64
		want int
	}{
		{"anonymous", 0, http.StatusUnauthorized},
		{"admin", 1, http.StatusOK},
		{"user", 2, http.StatusForbidden},
		{"instructor", 3, http.StatusForbidden},
		{"deleted account", 9, http.StatusForbidden},
	}
	for _, tc := range cases {
		if rec := request(e, tc.id); rec.Code != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.name, rec.Code, tc.want)
		}
	}
}

func TestRequireAdmin_StoreFailure(t *testing.T) {
	users := &stubRoleReader{err: errors.New("db down")}
	e := echo.New()
	e.GET("/", okHandler, RequireAdmin(users))

	if rec := request(e, 1); rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestRequireInstructor(t *testing.T) {
	users := &stubRoleReader{roles: map[int64]string{
		1: domain.RoleAdmin,
		2: domain.RoleInstructor,
		3: domain.RoleTeacher,
		4: domain.RoleUser,
	}}
	e := echo.New()
	e.GET("/", okHandler, RequireInstructor(users))

	cases := []struct {
		name string
		id   int64
		want int
	}{
		{"admin", 1, http.StatusOK},
		{"instructor", 2, http.StatusOK},
		{"legacy teacher", 3, http.StatusOK},
		{"user", 4, http.StatusForbidden},
	}
	for _, tc := range cases {
		if rec := request(e, tc.id); rec.Code != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.name, rec.Code, tc.want)
		}
	}
}

func TestRequireRole_FreshRead(t *testing.T) {
	// A role change takes effect on the next request without a new login.
	users := &stubRoleReader{roles: map[int64]string{1: domain.RoleAdmin}}
	e := echo.New()
	e.GET("/", okHandler, RequireAdmin(users))

	if rec := request(e, 1); rec.Code != http.StatusOK {
		t.Fatalf("admin status = %d", rec.Code)
	}

	users.roles[1] = domain.RoleUser
	if rec := request(e, 1); rec.Code != http.StatusForbidden {
		t.Errorf("demoted status = %d, want 403", rec.Code)
	}
}
