package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireManage gates planner writes and directory edits behind the manage
// flag set by RequireAuth.
func RequireManage() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			manage, _ := c.Get("can_manage").(bool)
			if !manage {
				return echo.NewHTTPError(http.StatusForbidden, map[string]any{"error": "FORBIDDEN"})
			}
			return next(c)
		}
	}
}
