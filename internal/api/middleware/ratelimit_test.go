package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	authpkg "github.com/aciky/community-api/internal/auth"
	"github.com/aciky/community-api/internal/core/domain"
	"github.com/aciky/community-api/internal/ratelimit"
)

func newLimitedEcho(cfg ratelimit.Config, store ratelimit.Store) *echo.Echo {
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("test-secret"))))
	e.GET("/", okHandler, RateLimit(cfg, store, zerolog.Nop()))
	return e
}

func TestRateLimit_BlocksOverMax(t *testing.T) {
	e := newLimitedEcho(ratelimit.Config{
		Name:        "auth",
		Window:      15 * time.Minute,
		MaxRequests: 5,
		Message:     "Too many authentication attempts. Please try again in 15 minutes.",
	}, ratelimit.NewMemoryStore())

	for i := 1; i <= 5; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("6th request: status = %d, want 429", rec.Code)
	}
}

func TestRateLimit_PerIP(t *testing.T) {
	e := newLimitedEcho(ratelimit.Config{
		Name: "auth", Window: time.Minute, MaxRequests: 1, Message: "slow down",
	}, ratelimit.NewMemoryStore())

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderXRealIP, ip)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := send("1.1.1.1"); code != http.StatusOK {
		t.Fatalf("first from A: %d", code)
	}
	if code := send("1.1.1.1"); code != http.StatusTooManyRequests {
		t.Fatalf("second from A: %d, want 429", code)
	}
	if code := send("2.2.2.2"); code != http.StatusOK {
		t.Fatalf("first from B: %d, want 200", code)
	}
}

type failingStore struct{}

func (failingStore) Incr(context.Context, string, time.Duration) (int64, error) {
	return 0, errors.New("store down")
}

func TestRateLimit_FailOpen(t *testing.T) {
	e := newLimitedEcho(ratelimit.Config{
		Name: "auth", Window: time.Minute, MaxRequests: 1, Message: "slow down",
	}, failingStore{})

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d with failing store: status = %d", i+1, rec.Code)
		}
	}
}

func TestRateLimit_AdminExempt(t *testing.T) {
	store := ratelimit.NewMemoryStore()
	cfg := ratelimit.Config{
		Name: "general", Window: time.Minute, MaxRequests: 1,
		Message: "slow down", ExemptAdmin: true,
	}

	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("test-secret"))))
	e.POST("/login", func(c echo.Context) error {
		return authpkg.EstablishSession(c, &domain.User{
			ID: 1, Username: "root", Email: "root@x.com", Role: domain.RoleAdmin,
		})
	})
	e.GET("/", okHandler, RateLimit(cfg, store, zerolog.Nop()))

	loginRec := httptest.NewRecorder()
	e.ServeHTTP(loginRec, httptest.NewRequest(http.MethodPost, "/login", nil))
	cookies := loginRec.Result().Cookies()

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for _, ck := range cookies {
			req.AddCookie(ck)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("admin request %d: status = %d", i+1, rec.Code)
		}
	}

	// Anonymous traffic on the same limiter is still capped.
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("first anonymous: status = %d", rec.Code)
	}
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second anonymous: status = %d, want 429", rec.Code)
	}
}
