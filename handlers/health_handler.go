package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ccuneo-ui/school-attendance-system/database"
)

// Health answers /healthz with DB reachability.
func Health(c echo.Context) error {
	dbOK := true
	if sqlDB, err := database.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbOK = false
	}
	status := "ok"
	code := http.StatusOK
	if !dbOK {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, map[string]any{
		"status":   status,
		"database": dbOK,
	})
}
