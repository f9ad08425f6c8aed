package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/ccuneo-ui/school-attendance-system/database"
	"github.com/ccuneo-ui/school-attendance-system/dismissal"
	"github.com/ccuneo-ui/school-attendance-system/models"
)

type StudentHandler struct{}

func NewStudentHandler() *StudentHandler { return &StudentHandler{} }

var validGrades = map[string]bool{
	"JPK": true, "SPK": true, "K": true,
	"1": true, "2": true, "3": true, "4": true,
	"5": true, "6": true, "7": true, "8": true,
}

var validStatuses = map[string]bool{
	"active": true, "inactive": true, "guest": true,
}

type studentPayload struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Grade        string `json:"grade"`
	Status       string `json:"status"`
	DismissalMon string `json:"dismissal_mon"`
	DismissalTue string `json:"dismissal_tue"`
	DismissalWed string `json:"dismissal_wed"`
	DismissalThu string `json:"dismissal_thu"`
	DismissalFri string `json:"dismissal_fri"`
	BeforeCare   bool   `json:"before_care"`
}

func (p *studentPayload) normalize() {
	p.FirstName = strings.Join(strings.Fields(p.FirstName), " ")
	p.LastName = strings.Join(strings.Fields(p.LastName), " ")
	p.Grade = dismissal.NormalizeGrade(p.Grade)
	p.Status = strings.ToLower(strings.TrimSpace(p.Status))
	p.DismissalMon = strings.TrimSpace(p.DismissalMon)
	p.DismissalTue = strings.TrimSpace(p.DismissalTue)
	p.DismissalWed = strings.TrimSpace(p.DismissalWed)
	p.DismissalThu = strings.TrimSpace(p.DismissalThu)
	p.DismissalFri = strings.TrimSpace(p.DismissalFri)
}

func validateStudent(p *studentPayload) map[string]string {
	errs := map[string]string{}

	if p.FirstName == "" {
		errs["first_name"] = "first name is required"
	}
	if p.LastName == "" {
		errs["last_name"] = "last name is required"
	}
	if !validGrades[p.Grade] {
		errs["grade"] = "grade must be JPK, SPK, K, or 1-8"
	}
	if !validStatuses[p.Status] {
		errs["status"] = "status must be active, inactive, or guest"
	}
	for field, raw := range map[string]string{
		"dismissal_mon": p.DismissalMon,
		"dismissal_tue": p.DismissalTue,
		"dismissal_wed": p.DismissalWed,
		"dismissal_thu": p.DismissalThu,
		"dismissal_fri": p.DismissalFri,
	} {
		if raw == "" {
			continue
		}
		if _, ok := dismissal.ParseType(raw); !ok {
			errs[field] = "default must be pickup, bus, or activity"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (p *studentPayload) apply(s *models.Student) {
	s.FirstName = p.FirstName
	s.LastName = p.LastName
	s.Grade = p.Grade
	s.Status = p.Status
	s.DismissalMon = p.DismissalMon
	s.DismissalTue = p.DismissalTue
	s.DismissalWed = p.DismissalWed
	s.DismissalThu = p.DismissalThu
	s.DismissalFri = p.DismissalFri
	s.BeforeCare = p.BeforeCare
}

/* ====================== Handlers ====================== */

// GET /api/students?q=&grade=&status=&page=&size=
func (h *StudentHandler) List(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	grade := strings.TrimSpace(c.QueryParam("grade"))
	status := strings.TrimSpace(c.QueryParam("status"))
	page := 1
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		page = v
	}
	size := 50
	if v, err := strconv.Atoi(c.QueryParam("size")); err == nil {
		if v < 1 {
			size = 1
		} else if v > 200 {
			size = 200
		} else {
			size = v
		}
	}

	tx := database.DB.Model(&models.Student{})
	if q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", like, like)
	}
	if grade != "" {
		tx = tx.Where("grade = ?", dismissal.NormalizeGrade(grade))
	}
	if status != "" {
		tx = tx.Where("status = ?", status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_COUNT_FAILED"})
	}
	var items []models.Student
	if err := tx.Order("last_name ASC, first_name ASC").
		Limit(size).Offset((page - 1) * size).
		Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"data":  items,
		"page":  page,
		"size":  size,
		"total": total,
	})
}

// GET /api/students/:id
func (h *StudentHandler) Get(c echo.Context) error {
	id := c.Param("id")
	var s models.Student
	if err := database.DB.First(&s, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, s)
}

// POST /api/students
func (h *StudentHandler) Create(c echo.Context) error {
	var p studentPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if errs := validateStudent(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}
	var s models.Student
	p.apply(&s)
	if err := database.DB.Create(&s).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, s)
}

// PUT /api/students/:id
func (h *StudentHandler) Update(c echo.Context) error {
	id := c.Param("id")
	var existing models.Student
	if err := database.DB.First(&existing, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	var p studentPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if errs := validateStudent(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}
	p.apply(&existing)
	if err := database.DB.Save(&existing).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, existing)
}

// DELETE /api/students/:id
// Students are never physically removed; this flips status to inactive so
// ledger and attendance history stays attached.
func (h *StudentHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	res := database.DB.Model(&models.Student{}).
		Where("id = ?", id).
		Update("status", "inactive")
	if res.Error != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return c.NoContent(http.StatusNoContent)
}
