package middlewares

import (
	"HRAS/models"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// withUserContext stamps the values TokenAuthMiddleware would have set.
func withUserContext(userID, role string, hospitalID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userRoleKey, role)
		ctx = context.WithValue(ctx, userHospitalKey, hospitalID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func roleRouter(role string, middleware gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(withUserContext("1", role, 1), middleware)
	router.GET("/resource", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func TestRoleAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		role           string
		required       []string
		expectedStatus int
	}{
		{name: "matching role passes", role: models.RoleAdmin, required: []string{models.RoleAdmin}, expectedStatus: http.StatusOK},
		{name: "any-of semantics", role: models.RoleNurse, required: []string{models.RoleDoctor, models.RoleNurse}, expectedStatus: http.StatusOK},
		{name: "non-matching role forbidden", role: models.RoleReceptionist, required: []string{models.RoleAdmin}, expectedStatus: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := roleRouter(tt.role, RoleAuthMiddleware(tt.required...))
			req := httptest.NewRequest(http.MethodGet, "/resource", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestDenyRolesMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		role           string
		denied         []string
		expectedStatus int
	}{
		{name: "denied role blocked", role: models.RoleNurse, denied: []string{models.RoleNurse}, expectedStatus: http.StatusForbidden},
		{name: "other roles pass", role: models.RoleDoctor, denied: []string{models.RoleNurse, models.RoleReceptionist}, expectedStatus: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := roleRouter(tt.role, DenyRolesMiddleware("access denied", tt.denied...))
			req := httptest.NewRequest(http.MethodGet, "/resource", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestTokenAuthMiddlewareRejectsMissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(TokenAuthMiddleware())
	router.GET("/resource", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExtractHelpers(t *testing.T) {
	ctx := context.WithValue(context.Background(), userIDKey, "7")
	ctx = context.WithValue(ctx, userRoleKey, models.RoleDoctor)
	ctx = context.WithValue(ctx, userHospitalKey, int64(3))

	id, err := ExtractUserIDFromContext(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "7", id)

	role, err := ExtractUserRoleFromContext(ctx)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleDoctor, role)

	hospital, err := ExtractHospitalIDFromContext(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), hospital)

	_, err = ExtractUserIDFromContext(context.Background())
	assert.Error(t, err)
}
