package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ccuneo-ui/school-attendance-system/database"
	"github.com/ccuneo-ui/school-attendance-system/models"
)

type ProgramHandler struct{}

func NewProgramHandler() *ProgramHandler { return &ProgramHandler{} }

// GET /api/programs
func (h *ProgramHandler) List(c echo.Context) error {
	var items []models.Program
	if err := database.DB.
		Where("status = ?", "active").
		Order("name ASC").
		Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, items)
}
