package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ccuneo-ui/school-attendance-system/database"
	"github.com/ccuneo-ui/school-attendance-system/models"
)

type AttendanceHandler struct{}

func NewAttendanceHandler() *AttendanceHandler { return &AttendanceHandler{} }

var attendanceStatuses = map[string]bool{
	"present": true,
	"absent":  true,
	"excused": true,
}

type attendanceMark struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

type attendanceSaveReq struct {
	ProgramID  uint                      `json:"program_id"`
	Date       string                    `json:"date"`
	StaffID    uint                      `json:"staff_id"`
	Attendance map[string]attendanceMark `json:"attendance"` // student id -> mark
}

// POST /api/attendance
// Marks are keyed by student id; each one is resolved to its active
// enrollment and upserted independently. Bad marks end up in the error
// list, the rest still save.
func (h *AttendanceHandler) Save(c echo.Context) error {
	var req attendanceSaveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if req.ProgramID == 0 || req.StaffID == 0 || len(req.Attendance) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}
	if _, err := time.Parse(dateLayout, strings.TrimSpace(req.Date)); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE"})
	}
	date := strings.TrimSpace(req.Date)

	saved := 0
	errs := []string{}
	for sid, mark := range req.Attendance {
		// JSON object keys are strings even though they hold student ids
		studentID, convErr := strconv.ParseUint(sid, 10, 64)
		if convErr != nil || studentID == 0 {
			errs = append(errs, fmt.Sprintf("invalid student id %q", sid))
			continue
		}
		status := strings.ToLower(strings.TrimSpace(mark.Status))
		if !attendanceStatuses[status] {
			errs = append(errs, fmt.Sprintf("invalid status %q for student %s", mark.Status, sid))
			continue
		}

		var enr models.Enrollment
		err := database.DB.
			Where("student_id = ? AND program_id = ? AND status = ?", studentID, req.ProgramID, "active").
			First(&enr).Error
		if err == gorm.ErrRecordNotFound {
			errs = append(errs, fmt.Sprintf("no active enrollment found for student %s", sid))
			continue
		}
		if err != nil {
			errs = append(errs, fmt.Sprintf("error saving attendance for student %s: %v", sid, err))
			continue
		}

		rec := models.AttendanceRecord{
			EnrollmentID: enr.ID,
			Date:         date,
			Status:       status,
			Notes:        strings.TrimSpace(mark.Note),
			RecordedBy:   req.StaffID,
		}
		err = database.DB.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "enrollment_id"}, {Name: "attendance_date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"status", "notes", "recorded_by", "updated_at",
			}),
		}).Create(&rec).Error
		if err != nil {
			errs = append(errs, fmt.Sprintf("error saving attendance for student %s: %v", sid, err))
			continue
		}
		saved++
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":     true,
		"saved_count": saved,
		"errors":      errs,
	})
}

// GET /api/attendance/:programID/:date
func (h *AttendanceHandler) List(c echo.Context) error {
	programID := atoiOr(c.Param("programID"), 0)
	date := strings.TrimSpace(c.Param("date"))
	if programID <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PROGRAM_ID"})
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE"})
	}

	type row struct {
		ID             uint   `json:"id"`
		EnrollmentID   uint   `json:"enrollment_id"`
		StudentID      uint   `json:"student_id"`
		StudentName    string `json:"student_name"`
		Status         string `json:"status"`
		Notes          string `json:"notes"`
		RecordedByName string `json:"recorded_by_name"`
	}
	var rows []row
	err := database.DB.Table("attendance_records AS a").
		Select(`a.id, a.enrollment_id, e.student_id,
			s.first_name || ' ' || s.last_name AS student_name,
			a.status, a.notes,
			st.first_name || ' ' || st.last_name AS recorded_by_name`).
		Joins("JOIN enrollments e ON a.enrollment_id = e.id").
		Joins("JOIN students s ON e.student_id = s.id").
		Joins("JOIN staffs st ON a.recorded_by = st.id").
		Where("e.program_id = ? AND a.attendance_date = ?", programID, date).
		Order("s.last_name ASC, s.first_name ASC").
		Scan(&rows).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /api/summary/:programID/:start/:end
// Per-student present/absent/excused counts over a date range.
func (h *AttendanceHandler) Summary(c echo.Context) error {
	programID := atoiOr(c.Param("programID"), 0)
	start := strings.TrimSpace(c.Param("start"))
	end := strings.TrimSpace(c.Param("end"))
	if programID <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PROGRAM_ID"})
	}
	for _, d := range []string{start, end} {
		if _, err := time.Parse(dateLayout, d); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE"})
		}
	}

	type row struct {
		StudentID    uint   `json:"student_id"`
		StudentName  string `json:"student_name"`
		TotalDays    int    `json:"total_days"`
		PresentCount int    `json:"present_count"`
		AbsentCount  int    `json:"absent_count"`
		ExcusedCount int    `json:"excused_count"`
	}
	var rows []row
	err := database.DB.Table("attendance_records AS a").
		Select(`s.id AS student_id,
			s.first_name || ' ' || s.last_name AS student_name,
			COUNT(*) AS total_days,
			SUM(CASE WHEN a.status = 'present' THEN 1 ELSE 0 END) AS present_count,
			SUM(CASE WHEN a.status = 'absent' THEN 1 ELSE 0 END) AS absent_count,
			SUM(CASE WHEN a.status = 'excused' THEN 1 ELSE 0 END) AS excused_count`).
		Joins("JOIN enrollments e ON a.enrollment_id = e.id").
		Joins("JOIN students s ON e.student_id = s.id").
		Where("e.program_id = ? AND a.attendance_date BETWEEN ? AND ?", programID, start, end).
		Group("s.id, s.first_name, s.last_name").
		Order("s.last_name ASC, s.first_name ASC").
		Scan(&rows).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, rows)
}
