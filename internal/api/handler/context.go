package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apimiddleware "github.com/aciky/community-api/internal/api/middleware"
)

// ctxUserID extracts the user id injected by the auth gates. Its absence
// means the route was mounted without RequireAuth, which is a wiring bug,
// but the caller still gets a clean 401 rather than a panic.
func ctxUserID(c echo.Context) (int64, error) {
	id, ok := c.Get(apimiddleware.CtxUserIDKey).(int64)
	if !ok || id == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	return id, nil
}
