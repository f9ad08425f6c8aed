package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ccuneo-ui/school-attendance-system/database"
)

type EnrollmentHandler struct{}

func NewEnrollmentHandler() *EnrollmentHandler { return &EnrollmentHandler{} }

// GET /api/enrollments/:programID
// Active students enrolled in a program, for the attendance roster.
func (h *EnrollmentHandler) ListByProgram(c echo.Context) error {
	programID := atoiOr(c.Param("programID"), 0)
	if programID <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PROGRAM_ID"})
	}

	type row struct {
		EnrollmentID uint   `json:"enrollment_id"`
		StudentID    uint   `json:"student_id"`
		StudentName  string `json:"student_name"`
		FirstName    string `json:"first_name"`
		LastName     string `json:"last_name"`
		Grade        string `json:"grade"`
		ProgramID    uint   `json:"program_id"`
		ProgramName  string `json:"program_name"`
	}
	var rows []row
	err := database.DB.Table("enrollments AS e").
		Select(`e.id AS enrollment_id, e.student_id,
			s.first_name || ' ' || s.last_name AS student_name,
			s.first_name, s.last_name, s.grade,
			e.program_id, p.name AS program_name`).
		Joins("JOIN students s ON e.student_id = s.id").
		Joins("JOIN programs p ON e.program_id = p.id").
		Where("e.program_id = ? AND e.status = ? AND s.status = ?", programID, "active", "active").
		Order("s.last_name ASC, s.first_name ASC").
		Scan(&rows).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, rows)
}
