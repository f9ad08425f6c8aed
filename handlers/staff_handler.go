package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ccuneo-ui/school-attendance-system/database"
)

type StaffHandler struct{}

func NewStaffHandler() *StaffHandler { return &StaffHandler{} }

// GET /api/staff
// Active staff who can record attendance, for the "recorded by" picker.
func (h *StaffHandler) List(c echo.Context) error {
	type row struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
		Role string `json:"role"`
	}
	var rows []row
	err := database.DB.Table("staffs").
		Select("id, first_name || ' ' || last_name AS name, role").
		Where("status = ? AND can_record_attendance = ?", "active", true).
		Order("last_name ASC, first_name ASC").
		Scan(&rows).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, rows)
}
