package auth

import (
	"time"

	"github.com/labstack/echo/v4"
)

// Resolve determines who is making the request: the session first, then the
// bearer fallback. A bearer-resolved id is written back into the session so
// the rest of the middleware chain agrees on the identity. Returns false when
// neither source yields an id.
func Resolve(c echo.Context) (int64, bool) {
	if id, ok := SessionUserID(c); ok {
		return id, true
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	id, ok := ParseBearerToken(header, time.Now())
	if !ok {
		return 0, false
	}

	writeBackUserID(c, id)
	return id, true
}
