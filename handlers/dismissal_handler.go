package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ccuneo-ui/school-attendance-system/database"
	"github.com/ccuneo-ui/school-attendance-system/dismissal"
	"github.com/ccuneo-ui/school-attendance-system/models"
)

type DismissalHandler struct{}

func NewDismissalHandler() *DismissalHandler { return &DismissalHandler{} }

const dateLayout = "2006-01-02"

// weekday keys accepted by LoadDefaults, same tokens the planner UI sends
var dayKeys = map[string]time.Weekday{
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
}

// destination label written when a default of type "activity" is populated
const aftercareLabel = "Aftercare"

func parsePlanDate(raw string) (time.Time, string, error) {
	s := strings.TrimSpace(raw)
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, "", err
	}
	return d, s, nil
}

func recordedBy(c echo.Context) string {
	name, _ := c.Get("name").(string)
	return name
}

// upsert columns refreshed when a (student, date) pair is submitted again
var planConflict = clause.OnConflict{
	Columns: []clause.Column{{Name: "student_id"}, {Name: "dismissal_date"}},
	DoUpdates: clause.AssignmentColumns([]string{
		"dismissal_type", "destination", "notes", "is_override", "recorded_by", "updated_at",
	}),
}

/* ====================== Reads ====================== */

// GET /api/dismissal/students
// Active students with their weekly defaults, for the planner grid.
func (h *DismissalHandler) Students(c echo.Context) error {
	var students []models.Student
	if err := database.DB.
		Where("status = ?", "active").
		Order("last_name ASC, first_name ASC").
		Find(&students).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, students)
}

// GET /api/dismissal/plan/:date
// Raw planner rows for one date, oldest first.
func (h *DismissalHandler) Plan(c echo.Context) error {
	_, date, err := parsePlanDate(c.Param("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE"})
	}
	var rows []models.DailyDismissal
	if err := database.DB.
		Where("dismissal_date = ?", date).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /api/dismissal/electives
func (h *DismissalHandler) Electives(c echo.Context) error {
	var items []models.Elective
	if err := database.DB.Order("name ASC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, items)
}

/* ====================== View builder ====================== */

type dismissalViewRow struct {
	ID        uint    `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Grade     string  `json:"grade"`
	Dismissal *string `json:"dismissal"`
	Activity  *string `json:"activity"`
	EndsIn    string  `json:"endsIn"`
	Elective  *string `json:"elective"`
	Notes     *string `json:"notes"`
	Name      string  `json:"name"`
}

// GET /api/dismissal/view/:date?grade=
//
// One answer per active student for the date. If the date has any planner
// rows the whole date is in "today" mode: students without a row show null
// dismissal fields ("not yet planned"). A date with no rows at all falls
// back to weekly defaults. Ends-in is evaluated uniformly in both modes.
func (h *DismissalHandler) View(c echo.Context) error {
	day, date, err := parsePlanDate(c.Param("date"))
	if err != nil {
		// reject before touching storage; never silently default the mode
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE"})
	}
	grade := dismissal.NormalizeGrade(c.QueryParam("grade"))

	// Students and plan rows are read in one transaction so the "does a
	// plan exist" answer and the rows it implies can't drift apart under
	// a concurrent admin write.
	var (
		students []models.Student
		records  []models.DailyDismissal
	)
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		q := tx.Where("status = ?", "active")
		if grade != "" {
			q = q.Where("grade = ?", grade)
		}
		if err := q.Order("last_name ASC, first_name ASC").Find(&students).Error; err != nil {
			return err
		}
		return tx.Where("dismissal_date = ?", date).Find(&records).Error
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}

	// One row anywhere on the date flips the whole date into "today" mode,
	// including for students untouched that day.
	source := "default"
	if len(records) > 0 {
		source = "today"
	}
	byStudent := make(map[uint]models.DailyDismissal, len(records))
	for _, r := range records {
		byStudent[r.StudentID] = r
	}

	weekday := day.Weekday()
	rows := make([]dismissalViewRow, 0, len(students))
	for _, s := range students {
		row := dismissalViewRow{
			ID:        s.ID,
			FirstName: s.FirstName,
			LastName:  s.LastName,
			Grade:     s.Grade,
			Name:      s.FirstName + " " + s.LastName,
		}
		if source == "today" {
			if rec, ok := byStudent[s.ID]; ok {
				row.Dismissal = strPtr(rec.Type)
				row.Activity = strPtr(rec.Destination)
				row.Notes = strPtr(rec.Notes)
			}
		} else if t, ok := s.WeeklyDefaults().ForDate(day); ok {
			// defaults carry no destination detail
			row.Dismissal = strPtr(string(t))
		}
		ei := dismissal.EvaluateEndsIn(s.Grade, weekday)
		row.EndsIn = string(ei.Location)
		if ei.Location == dismissal.ElectiveBlock {
			row.Elective = strPtr(ei.Elective)
		}
		rows = append(rows, row)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"date":     date,
		"source":   source,
		"day":      weekday.String(),
		"students": rows,
	})
}

/* ====================== Writes ====================== */

type planRecordReq struct {
	StudentID   uint   `json:"student_id"`
	Date        string `json:"dismissal_date"`
	Type        string `json:"dismissal_type"`
	Destination string `json:"destination"`
	Notes       string `json:"notes"`
	IsOverride  bool   `json:"is_override"`
}

func (h *DismissalHandler) upsertOne(req planRecordReq, date, by string) error {
	if req.StudentID == 0 {
		return fmt.Errorf("missing student_id")
	}
	t, ok := dismissal.ParseType(req.Type)
	if !ok {
		return fmt.Errorf("invalid dismissal_type %q for student %d", req.Type, req.StudentID)
	}
	var n int64
	if err := database.DB.Model(&models.Student{}).
		Where("id = ?", req.StudentID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("student %d not found", req.StudentID)
	}
	rec := models.DailyDismissal{
		StudentID:   req.StudentID,
		Date:        date,
		Type:        string(t),
		Destination: strings.TrimSpace(req.Destination),
		Notes:       strings.TrimSpace(req.Notes),
		IsOverride:  req.IsOverride,
		RecordedBy:  by,
	}
	return database.DB.Clauses(planConflict).Create(&rec).Error
}

// POST /api/dismissal/plan
// Save or update a single student's dismissal for a date.
func (h *DismissalHandler) SavePlan(c echo.Context) error {
	var req planRecordReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	_, date, err := parsePlanDate(req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE"})
	}
	if err := h.upsertOne(req, date, recordedBy(c)); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

type planBatchReq struct {
	Date    string          `json:"dismissal_date"`
	Records []planRecordReq `json:"records"`
}

// POST /api/dismissal/plan/batch
// Each record is processed independently; a bad record is reported and the
// rest of the batch still lands.
func (h *DismissalHandler) SaveBatch(c echo.Context) error {
	var req planBatchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	_, date, err := parsePlanDate(req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE"})
	}
	if len(req.Records) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	by := recordedBy(c)
	saved := 0
	errs := []string{}
	for _, r := range req.Records {
		if err := h.upsertOne(r, date, by); err != nil {
			errs = append(errs, err.Error())
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

type planBulkReq struct {
	StudentIDs  []uint `json:"student_ids"`
	Date        string `json:"dismissal_date"`
	Type        string `json:"dismissal_type"`
	Destination string `json:"destination"`
}

// POST /api/dismissal/plan/bulk
// Assign one destination to many students at once (a whole bus route, say).
func (h *DismissalHandler) BulkAssign(c echo.Context) error {
	var req planBulkReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	_, date, err := parsePlanDate(req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE"})
	}
	if len(req.StudentIDs) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	by := recordedBy(c)
	saved := 0
	errs := []string{}
	for _, sid := range req.StudentIDs {
		err := h.upsertOne(planRecordReq{
			StudentID:   sid,
			Type:        req.Type,
			Destination: req.Destination,
		}, date, by)
		if err != nil {
			errs = append(errs, err.Error())
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

type loadDefaultsReq struct {
	Date   string `json:"date"`
	DayKey string `json:"day_key"` // mon..fri
}

// POST /api/dismissal/load-defaults
// Fill the date from weekly defaults. Students who already have a row for
// the date are left untouched, so this never overwrites manual entries and
// running it twice is a no-op.
func (h *DismissalHandler) LoadDefaults(c echo.Context) error {
	var req loadDefaultsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	_, date, err := parsePlanDate(req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE"})
	}
	weekday, ok := dayKeys[strings.ToLower(strings.TrimSpace(req.DayKey))]
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_DAY"})
	}

	var covered []uint
	if err := database.DB.Model(&models.DailyDismissal{}).
		Where("dismissal_date = ?", date).
		Pluck("student_id", &covered).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	coveredSet := make(map[uint]struct{}, len(covered))
	for _, id := range covered {
		coveredSet[id] = struct{}{}
	}

	var students []models.Student
	if err := database.DB.Where("status = ?", "active").Find(&students).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}

	by := recordedBy(c)
	inserted := 0
	for _, s := range students {
		if _, ok := coveredSet[s.ID]; ok {
			continue
		}
		t, ok := s.WeeklyDefaults()[weekday]
		if !ok {
			continue
		}
		dest := ""
		if t == dismissal.Activity {
			dest = aftercareLabel
		}
		rec := models.DailyDismissal{
			StudentID:   s.ID,
			Date:        date,
			Type:        string(t),
			Destination: dest,
			RecordedBy:  by,
		}
		// DoNothing guards the gap between the coverage read and this
		// insert; a row that appeared in between wins.
		res := database.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&rec)
		if res.Error != nil {
			return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_WRITE_FAILED"})
		}
		inserted += int(res.RowsAffected)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "inserted": inserted})
}

// DELETE /api/dismissal/plan/:date
func (h *DismissalHandler) ClearDate(c echo.Context) error {
	_, date, err := parsePlanDate(c.Param("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE"})
	}
	res := database.DB.Where("dismissal_date = ?", date).Delete(&models.DailyDismissal{})
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_WRITE_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "deleted": res.RowsAffected})
}

// DELETE /api/dismissal/plan/:date/:studentID
func (h *DismissalHandler) DeleteOne(c echo.Context) error {
	_, date, err := parsePlanDate(c.Param("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE"})
	}
	sid := atoiOr(c.Param("studentID"), 0)
	if sid <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_STUDENT_ID"})
	}
	res := database.DB.
		Where("dismissal_date = ? AND student_id = ?", date, sid).
		Delete(&models.DailyDismissal{})
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_WRITE_FAILED"})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return c.NoContent(http.StatusNoContent)
}
