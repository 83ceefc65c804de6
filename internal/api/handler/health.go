package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const dependencyTimeout = 2 * time.Second

// HealthHandler serves the liveness probe.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness reports that the process is up.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// ReadinessHandler checks the backing stores. The redis client is nil when
// the in-memory rate-limit store is in use.
type ReadinessHandler struct {
	db  *sql.DB
	rdb *redis.Client
}

func NewReadinessHandler(db *sql.DB, rdb *redis.Client) *ReadinessHandler {
	return &ReadinessHandler{db: db, rdb: rdb}
}

// Readiness pings each dependency and reports per-dependency status. Returns
// 503 when any dependency is down.
func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dependencyTimeout)
	defer cancel()

	status := echo.Map{}
	healthy := true

	if h.db != nil {
		if err := h.db.PingContext(ctx); err != nil {
			status["database"] = "down"
			healthy = false
		} else {
			status["database"] = "up"
		}
	}

	if h.rdb != nil {
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			status["redis"] = "down"
			healthy = false
		} else {
			status["redis"] = "up"
		}
	}

	code := http.StatusOK
	if !healthy {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, status)
}
