package handlers

import (
	"HRAS/services"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type recordingSuggester struct {
	calls int
}

func (r *recordingSuggester) Suggest(ctx context.Context, prompt string) (string, error) {
	r.calls++
	return "Suggested priority: Low.", nil
}

func triageRouter(suggester services.Suggester) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewAIHandler(services.NewAIService(suggester, nil))
	router := gin.New()
	router.POST("/ai/triage", handler.Triage)
	return router
}

func TestTriageHandlerRejectsEmptySymptoms(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing field", body: `{}`},
		{name: "empty string", body: `{"symptoms": ""}`},
		{name: "whitespace only", body: `{"symptoms": "   "}`},
		{name: "malformed json", body: `{"symptoms": `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggester := &recordingSuggester{}
			router := triageRouter(suggester)

			req := httptest.NewRequest(http.MethodPost, "/ai/triage", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, 0, suggester.calls, "backend must not be invoked for a rejected request")
		})
	}
}

func TestTriageHandlerFallsBackWithoutBackend(t *testing.T) {
	router := triageRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/ai/triage", bytes.NewBufferString(`{"symptoms": "persistent fever"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"used_ai":false`)
	assert.Contains(t, rec.Body.String(), `"priority":"High"`)
}
