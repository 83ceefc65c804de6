package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/aciky/community-api/internal/api/metrics"
	"github.com/aciky/community-api/internal/auth"
	"github.com/aciky/community-api/internal/core/domain"
	"github.com/aciky/community-api/internal/ratelimit"
)

// RateLimit enforces a named fixed-window cap per client IP. Counting happens
// before the handler runs; rejected requests never reach it. A failing store
// lets the request through (fail open).
func RateLimit(cfg ratelimit.Config, store ratelimit.Store, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg.ExemptAdmin && auth.SessionRole(c) == domain.RoleAdmin {
				return next(c)
			}

			key := cfg.Name + ":" + c.RealIP()
			count, err := store.Incr(c.Request().Context(), key, cfg.Window)
			if err != nil {
				log.Warn().Err(err).Str("limiter", cfg.Name).Msg("rate limit store unavailable")
				return next(c)
			}

			if count > cfg.MaxRequests {
				metrics.RateLimitedTotal.WithLabelValues(cfg.Name).Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, cfg.Message)
			}

			return next(c)
		}
	}
}
