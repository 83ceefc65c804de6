package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/aciky/community-api/internal/core/domain"
	"github.com/aciky/community-api/internal/core/ports"
)

// UserHandler is the HTTP layer for admin user management plus the public
// instructor listing.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type listUsersQuery struct {
	Role   string `query:"role"   validate:"omitempty,oneof=user instructor admin teacher"`
	Limit  int    `query:"limit"  validate:"gte=0,lte=100"`
	Offset int    `query:"offset" validate:"gte=0"`
}

type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type updateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Instructors lists instructor accounts for the public site.
//
// @Summary      List instructors
// @Tags         users
// @Router       /api/users/instructors [get]
func (h *UserHandler) Instructors(c echo.Context) error {
	instructors, err := h.userService.Instructors(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    instructors,
	})
}

// List returns a page of users. Admin only.
//
// @Summary      List users
// @Tags         users
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	var q listUsersQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	users, total, err := h.userService.List(c.Request().Context(), domain.UserFilter{
		Role:   q.Role,
		Limit:  q.Limit,
		Offset: q.Offset,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    users,
		"total":   total,
	})
}

// Get returns a single user. Admin only.
//
// @Summary      Get user by id
// @Tags         users
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	user, err := h.userService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    user,
	})
}

// Create adds an account with an explicit role. Admin only.
//
// @Summary      Create user
// @Tags         users
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	user, err := h.userService.Create(c.Request().Context(), ports.CreateUserParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "User created successfully",
		"data":    user,
	})
}

// Update edits an account. Admin only; self-demotion is rejected.
//
// @Summary      Update user
// @Tags         users
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	actorID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	user, err := h.userService.Update(c.Request().Context(), id, actorID, ports.AdminUserUpdate{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "User updated successfully",
		"data":    user,
	})
}

// Delete removes an account. Admin only; self-deletion is rejected.
//
// @Summary      Delete user
// @Tags         users
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	actorID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.userService.Delete(c.Request().Context(), id, actorID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "User deleted successfully",
	})
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid id")
	}
	return id, nil
}
