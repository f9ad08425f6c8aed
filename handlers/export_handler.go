package handlers

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ccuneo-ui/school-attendance-system/database"
	"github.com/ccuneo-ui/school-attendance-system/models"
)

type ExportHandler struct {
	BackupKey string
}

func NewExportHandler(key string) *ExportHandler { return &ExportHandler{BackupKey: key} }

// GET /backup/export?key=
// JSON snapshot of every table, for the weekly offsite copy. Gated by a
// shared key on top of the admin token so it can be driven from a cron
// curl. Disabled when BACKUP_KEY is unset.
func (h *ExportHandler) Export(c echo.Context) error {
	if h.BackupKey == "" {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "EXPORT_DISABLED"})
	}
	key := c.QueryParam("key")
	if subtle.ConstantTimeCompare([]byte(key), []byte(h.BackupKey)) != 1 {
		return c.JSON(http.StatusUnauthorized, map[string]any{"error": "INVALID_KEY"})
	}

	var (
		students    []models.Student
		dismissals  []models.DailyDismissal
		programs    []models.Program
		staff       []models.Staff
		enrollments []models.Enrollment
		attendance  []models.AttendanceRecord
		charges     []models.MCardCharge
	)
	for _, load := range []func() error{
		func() error { return database.DB.Find(&students).Error },
		func() error { return database.DB.Find(&dismissals).Error },
		func() error { return database.DB.Find(&programs).Error },
		func() error { return database.DB.Find(&staff).Error },
		func() error { return database.DB.Find(&enrollments).Error },
		func() error { return database.DB.Find(&attendance).Error },
		func() error { return database.DB.Find(&charges).Error },
	} {
		if err := load(); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
		}
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="school_backup_%s.json"`, time.Now().Format("20060102_150405")))
	return c.JSON(http.StatusOK, map[string]any{
		"exported_at":        time.Now().UTC(),
		"students":           students,
		"daily_dismissals":   dismissals,
		"programs":           programs,
		"staff":              staff,
		"enrollments":        enrollments,
		"attendance_records": attendance,
		"mcard_charges":      charges,
	})
}
