package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ccuneo-ui/school-attendance-system/database"
	"github.com/ccuneo-ui/school-attendance-system/models"
)

func seedUser(t *testing.T, username, password string, manage bool) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := models.User{Username: username, Password: string(hash), Name: "Front Office", CanManage: manage}
	require.NoError(t, database.DB.Create(&u).Error)
	return u
}

// login runs StaffLogin and returns the status code whether the handler
// replied directly or returned an *echo.HTTPError.
func login(t *testing.T, h *AuthHandler, username, password string) (int, map[string]any) {
	t.Helper()
	b, err := json.Marshal(staffLoginReq{Username: username, Password: password})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/auth/staff/login", bytes.NewReader(b))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	if err := h.StaffLogin(c); err != nil {
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		return he.Code, nil
	}
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestStaffLogin(t *testing.T) {
	setupTestDB(t)
	seedUser(t, "office", "letmein", true)
	h := NewAuthHandler("test-secret")

	code, body := login(t, h, "office", "letmein")
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, true, body["can_manage"])
	assert.Equal(t, "Front Office", body["name"])
}

func TestStaffLoginRejected(t *testing.T) {
	setupTestDB(t)
	seedUser(t, "office", "letmein", false)
	h := NewAuthHandler("test-secret")

	code, _ := login(t, h, "office", "wrong")
	assert.Equal(t, http.StatusUnauthorized, code)

	// unknown user looks identical to a bad password
	code, _ = login(t, h, "nobody", "letmein")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = login(t, h, "", "")
	assert.Equal(t, http.StatusBadRequest, code)
}
