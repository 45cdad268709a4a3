package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pathwise/career-advisor/internal/api/middleware"
)

// ctxAccountID extracts the account ID injected by the Auth middleware and
// fast-fails before any service call. An empty value means the middleware
// never ran on this route, which is a wiring bug surfaced as 401.
func ctxAccountID(c echo.Context) (string, error) {
	accountID, _ := c.Get(middleware.AccountIDKey).(string)
	if accountID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return accountID, nil
}
