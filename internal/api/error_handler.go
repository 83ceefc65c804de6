package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/aciky/community-api/internal/core/domain"
)

// errorEnvelope is the canonical error body: {success:false, message, ...}.
// ErrorID correlates a client report with the server log line. Detail is only
// populated outside production.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ErrorID string `json:"errorId,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps domain
// errors to their status codes, logs unexpected failures with request
// context, and redacts internals from clients in production.
func NewHTTPErrorHandler(log zerolog.Logger, production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, expected := resolveError(err)
		env := errorEnvelope{Success: false, Message: msg}

		if !expected {
			env.ErrorID = uuid.NewString()
			log.Error().
				Err(err).
				Str("error_id", env.ErrorID).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("unhandled error")
			if production {
				env.Message = "An error occurred. Please try again later."
			} else {
				env.Detail = err.Error()
			}
		}

		_ = c.JSON(code, env)
	}
}

// resolveError maps an error to its HTTP status and client message. The
// third return reports whether the error is an expected request-level
// failure (client's fault, no server log needed).
func resolveError(err error) (int, string, bool) {
	// Echo's own errors: bind failures, router 404s, and the statuses the
	// middleware raises (401/403/429).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), he.Code < http.StatusInternalServerError
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Message, true
	}

	// Duplicates render as 400, not 409, for compatibility with existing
	// clients of this API.
	var ce *domain.ConflictError
	if errors.As(err, &ce) {
		return http.StatusBadRequest, ce.Message, true
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials", true
	case errors.Is(err, domain.ErrWrongPassword):
		return http.StatusUnauthorized, "Current password is incorrect", true
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "Authentication required", true
	case errors.Is(err, domain.ErrSelfRoleChange):
		return http.StatusForbidden, "Cannot change your own admin role", true
	case errors.Is(err, domain.ErrSelfDelete):
		return http.StatusForbidden, "Cannot delete your own account", true
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Access forbidden", true
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found", true
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Not found", true
	}

	return http.StatusInternalServerError, "Internal server error", false
}
