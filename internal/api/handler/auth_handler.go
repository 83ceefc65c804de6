package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aciky/community-api/internal/api/metrics"
	"github.com/aciky/community-api/internal/auth"
	"github.com/aciky/community-api/internal/core/domain"
	"github.com/aciky/community-api/internal/core/ports"
)

// AuthHandler is the HTTP layer for account self-service.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Register creates a new account with the default user role.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	userID, err := h.authService.Register(c.Request().Context(), ports.RegisterParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "User registered successfully",
		"userId":  userID,
	})
}

// Login verifies credentials and establishes the session.
//
// @Summary      Login
// @Tags         auth
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		outcome := "error"
		if err == domain.ErrInvalidCredentials {
			outcome = "invalid_credentials"
		}
		metrics.LoginAttemptsTotal.WithLabelValues(outcome).Inc()
		return err
	}

	if err := auth.EstablishSession(c, user); err != nil {
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Login successful",
		"user":    user.Public(),
	})
}

// Logout destroys the session. Idempotent: logging out while logged out
// still succeeds.
//
// @Summary      Logout
// @Tags         auth
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := auth.DestroySession(c); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Logout failed")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Logout successful",
	})
}

// Check reports whether the caller has a live session. Always 200; the
// answer is in the body.
//
// @Summary      Check authentication status
// @Tags         auth
// @Router       /api/auth/check [get]
func (h *AuthHandler) Check(c echo.Context) error {
	if identity, ok := auth.SessionIdentity(c); ok {
		return c.JSON(http.StatusOK, echo.Map{
			"success":         true,
			"isAuthenticated": true,
			"user":            identity,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":         true,
		"isAuthenticated": false,
	})
}

// UpdateProfile changes the caller's own identity fields and optionally the
// password. Mounted behind RequireAuth.
//
// @Summary      Update own profile
// @Tags         auth
// @Router       /api/auth/profile [put]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	user, err := h.authService.UpdateProfile(c.Request().Context(), userID, ports.UpdateProfileParams{
		Username:        req.Username,
		Email:           req.Email,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return err
	}

	// Keep the cached session identity in step with the new fields.
	if err := auth.RefreshSessionIdentity(c, user.Username, user.Email); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Profile updated successfully",
		"user":    user,
	})
}
