package handlers

import (
	"HRAS/middlewares"
	"HRAS/models"
	"HRAS/utils"
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	_ = os.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")
}

func patientUpdateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewPatientHandler(nil)
	router := gin.New()
	router.Use(middlewares.TokenAuthMiddleware())
	router.PUT("/patients/:id", handler.Update)
	return router
}

func TestPatientUpdateRejectsAssignmentEdits(t *testing.T) {
	// Assignment rows are owned by the engine; only the admin override may
	// touch them, so a clinician sending them gets an explicit 403 before
	// anything else runs.
	router := patientUpdateRouter()

	token, err := utils.GenerateAccessToken("5", models.RoleNurse, 2)
	require.NoError(t, err)

	body := `{"symptoms": "fever", "assignments": []}`
	req := httptest.NewRequest(http.MethodPut, "/patients/HP-000001?accessToken="+token, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin override")
}

func TestPatientUpdateRequiresToken(t *testing.T) {
	router := patientUpdateRouter()

	req := httptest.NewRequest(http.MethodPut, "/patients/HP-000001", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
