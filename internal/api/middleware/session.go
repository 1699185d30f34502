package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopdesk/store-admin/internal/core/ports"
)

// RequireSession lets a request through only once the session is restored
// and an operator is logged in. The operator's username is injected into the
// context for request logging.
func RequireSession(session ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := session.Snapshot()
			if sess.Loading {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "session is loading")
			}
			if !sess.LoggedIn() {
				return echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
			}

			c.Set("username", sess.User.Username)
			return next(c)
		}
	}
}
