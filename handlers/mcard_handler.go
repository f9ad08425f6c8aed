package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/ccuneo-ui/school-attendance-system/database"
	"github.com/ccuneo-ui/school-attendance-system/models"
)

type MCardHandler struct{}

func NewMCardHandler() *MCardHandler { return &MCardHandler{} }

// GET /api/mcard/students
// Active students for the charge dropdown.
func (h *MCardHandler) Students(c echo.Context) error {
	type row struct {
		ID        uint   `json:"id"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Grade     string `json:"grade"`
	}
	var rows []row
	err := database.DB.Table("students").
		Select("id, first_name, last_name, grade").
		Where("status = ?", "active").
		Order("last_name ASC, first_name ASC").
		Scan(&rows).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /api/mcard/charges
func (h *MCardHandler) List(c echo.Context) error {
	type row struct {
		ID          uint      `json:"id"`
		StudentID   uint      `json:"student_id"`
		StudentName string    `json:"student_name"`
		Grade       string    `json:"grade"`
		ChargeDate  string    `json:"charge_date"`
		RecordedAt  time.Time `json:"recorded_at"`
	}
	var rows []row
	err := database.DB.Table("mcard_charges AS m").
		Select(`m.id, m.student_id,
			s.first_name || ' ' || s.last_name AS student_name,
			s.grade, m.charge_date, m.created_at AS recorded_at`).
		Joins("JOIN students s ON m.student_id = s.id").
		Order("m.charge_date DESC, m.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, rows)
}

type mcardChargeReq struct {
	StudentID  uint   `json:"student_id"`
	ChargeDate string `json:"charge_date"`
}

// POST /api/mcard/charges
func (h *MCardHandler) Add(c echo.Context) error {
	var req mcardChargeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	date := strings.TrimSpace(req.ChargeDate)
	if req.StudentID == 0 || date == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE"})
	}

	// charges only attach to active students
	var s models.Student
	err := database.DB.
		Where("id = ? AND status = ?", req.StudentID, "active").
		First(&s).Error
	if err == gorm.ErrRecordNotFound {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "STUDENT_NOT_FOUND"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}

	charge := models.MCardCharge{StudentID: req.StudentID, ChargeDate: date}
	if err := database.DB.Create(&charge).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "charge_id": charge.ID})
}

// DELETE /api/mcard/charges/:id
func (h *MCardHandler) Delete(c echo.Context) error {
	id := atoiOr(c.Param("id"), 0)
	if id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_ID"})
	}
	res := database.DB.Delete(&models.MCardCharge{}, "id = ?", id)
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_WRITE_FAILED"})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}
