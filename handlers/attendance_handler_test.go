package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccuneo-ui/school-attendance-system/database"
	"github.com/ccuneo-ui/school-attendance-system/models"
)

type attendanceFixture struct {
	program models.Program
	staff   models.Staff
	second  models.Student
	sixth   models.Student
}

func seedAttendance(t *testing.T) attendanceFixture {
	t.Helper()
	f := attendanceFixture{
		program: models.Program{Name: "Aftercare", BillingRate: 12, BillingType: "hourly", Status: "active"},
		staff:   models.Staff{FirstName: "Pat", LastName: "Nolan", Role: "aide", CanRecordAttendance: true, Status: "active"},
	}
	require.NoError(t, database.DB.Create(&f.program).Error)
	require.NoError(t, database.DB.Create(&f.staff).Error)
	f.second = seedStudent(t, models.Student{FirstName: "Ava", LastName: "Brooks", Grade: "2"})
	f.sixth = seedStudent(t, models.Student{FirstName: "Ben", LastName: "Carter", Grade: "6"})
	for _, sid := range []uint{f.second.ID, f.sixth.ID} {
		require.NoError(t, database.DB.Create(&models.Enrollment{
			StudentID: sid, ProgramID: f.program.ID, Status: "active",
		}).Error)
	}
	return f
}

func TestAttendanceSaveBatch(t *testing.T) {
	setupTestDB(t)
	f := seedAttendance(t)
	h := NewAttendanceHandler()

	rec := invoke(t, h.Save, http.MethodPost, "/api/attendance", attendanceSaveReq{
		ProgramID: f.program.ID,
		Date:      "2026-02-17",
		StaffID:   f.staff.ID,
		Attendance: map[string]attendanceMark{
			strconv.FormatUint(uint64(f.second.ID), 10): {Status: "present"},
			strconv.FormatUint(uint64(f.sixth.ID), 10):  {Status: "absent", Note: "called in"},
			"9999": {Status: "present"}, // no enrollment
		},
	}, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["saved_count"])
	assert.Len(t, body["errors"], 1)
}

func TestAttendanceRemarkOverwrites(t *testing.T) {
	setupTestDB(t)
	f := seedAttendance(t)
	h := NewAttendanceHandler()

	key := strconv.FormatUint(uint64(f.second.ID), 10)
	for _, mark := range []attendanceMark{
		{Status: "present"},
		{Status: "excused", Note: "doctor"},
	} {
		rec := invoke(t, h.Save, http.MethodPost, "/api/attendance", attendanceSaveReq{
			ProgramID:  f.program.ID,
			Date:       "2026-02-17",
			StaffID:    f.staff.ID,
			Attendance: map[string]attendanceMark{key: mark},
		}, nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	var rows []models.AttendanceRecord
	require.NoError(t, database.DB.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "excused", rows[0].Status)
	assert.Equal(t, "doctor", rows[0].Notes)
}

func TestAttendanceInvalidStatus(t *testing.T) {
	setupTestDB(t)
	f := seedAttendance(t)
	h := NewAttendanceHandler()

	rec := invoke(t, h.Save, http.MethodPost, "/api/attendance", attendanceSaveReq{
		ProgramID: f.program.ID,
		Date:      "2026-02-17",
		StaffID:   f.staff.ID,
		Attendance: map[string]attendanceMark{
			strconv.FormatUint(uint64(f.second.ID), 10): {Status: "tardyish"},
		},
	}, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(0), body["saved_count"])
	assert.Len(t, body["errors"], 1)

	var n int64
	require.NoError(t, database.DB.Model(&models.AttendanceRecord{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestAttendanceListAndSummary(t *testing.T) {
	setupTestDB(t)
	f := seedAttendance(t)
	h := NewAttendanceHandler()

	marks := []struct {
		date   string
		status string
	}{
		{"2026-02-16", "present"},
		{"2026-02-17", "absent"},
		{"2026-02-18", "present"},
	}
	key := strconv.FormatUint(uint64(f.second.ID), 10)
	for _, m := range marks {
		invoke(t, h.Save, http.MethodPost, "/api/attendance", attendanceSaveReq{
			ProgramID:  f.program.ID,
			Date:       m.date,
			StaffID:    f.staff.ID,
			Attendance: map[string]attendanceMark{key: {Status: m.status}},
		}, nil, nil)
	}

	pid := strconv.FormatUint(uint64(f.program.ID), 10)
	rec := invoke(t, h.List, http.MethodGet, "/api/attendance/"+pid+"/2026-02-17", nil,
		map[string]string{"programID": pid, "date": "2026-02-17"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Ava Brooks", listed[0]["student_name"])
	assert.Equal(t, "absent", listed[0]["status"])
	assert.Equal(t, "Pat Nolan", listed[0]["recorded_by_name"])

	rec = invoke(t, h.Summary, http.MethodGet, "/api/summary/"+pid+"/2026-02-16/2026-02-20", nil,
		map[string]string{"programID": pid, "start": "2026-02-16", "end": "2026-02-20"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	require.Len(t, summary, 1)
	assert.Equal(t, float64(3), summary[0]["total_days"])
	assert.Equal(t, float64(2), summary[0]["present_count"])
	assert.Equal(t, float64(1), summary[0]["absent_count"])
	assert.Equal(t, float64(0), summary[0]["excused_count"])
}
