package handlers

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccuneo-ui/school-attendance-system/database"
	"github.com/ccuneo-ui/school-attendance-system/models"
)

func TestStudentCreateValidation(t *testing.T) {
	setupTestDB(t)
	h := NewStudentHandler()

	rec := invoke(t, h.Create, http.MethodPost, "/api/students", studentPayload{
		FirstName: "Ava", LastName: "Brooks", Grade: "13", Status: "active",
	}, nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", body["error"])

	rec = invoke(t, h.Create, http.MethodPost, "/api/students", studentPayload{
		FirstName: "Ava", LastName: "Brooks", Grade: "2", Status: "active",
		DismissalTue: "rocket",
	}, nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStudentCreateNormalizesGrade(t *testing.T) {
	setupTestDB(t)
	h := NewStudentHandler()

	rec := invoke(t, h.Create, http.MethodPost, "/api/students", studentPayload{
		FirstName: "Cleo", LastName: "Adams", Grade: " k ", Status: "active",
	}, nil, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "K", decodeBody(t, rec)["grade"])
}

func TestStudentSoftDelete(t *testing.T) {
	setupTestDB(t)
	ava := seedStudent(t, models.Student{FirstName: "Ava", LastName: "Brooks", Grade: "2"})
	h := NewStudentHandler()

	id := strconv.FormatUint(uint64(ava.ID), 10)
	rec := invoke(t, h.Delete, http.MethodDelete, "/api/students/"+id, nil,
		map[string]string{"id": id}, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// row survives with flipped status
	var s models.Student
	require.NoError(t, database.DB.First(&s, ava.ID).Error)
	assert.Equal(t, "inactive", s.Status)

	rec = invoke(t, h.Delete, http.MethodDelete, "/api/students/999", nil,
		map[string]string{"id": "999"}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStudentListFilters(t *testing.T) {
	setupTestDB(t)
	seedStudent(t, models.Student{FirstName: "Ava", LastName: "Brooks", Grade: "2"})
	seedStudent(t, models.Student{FirstName: "Ben", LastName: "Carter", Grade: "6"})
	seedStudent(t, models.Student{FirstName: "Dan", LastName: "Zimmer", Grade: "6", Status: "inactive"})
	h := NewStudentHandler()

	rec := invoke(t, h.List, http.MethodGet, "/api/students?grade=6&status=active", nil, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["total"])

	rec = invoke(t, h.List, http.MethodGet, "/api/students?q=broo", nil, nil, nil)
	body = decodeBody(t, rec)
	assert.Equal(t, float64(1), body["total"])
}
