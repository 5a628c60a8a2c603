package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trifectawealth/portal/internal/clock"
	"github.com/trifectawealth/portal/internal/models"
	"github.com/trifectawealth/portal/internal/services/alerts"
)

func setupAlertRouter(t *testing.T) (*gin.Engine, *alerts.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	due := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	seed := []models.ComplianceAlert{
		{
			ID:       1,
			ClientID: 1,
			Title:    "Annual report filing",
			Type:     models.AlertTypeEntityFiling,
			Priority: models.AlertPriorityHigh,
			DueDate:  &due,
			Status:   models.AlertStatusActive,
			Customization: models.AlertCustomization{
				ReminderDays: []int{7, 1},
				EmailEnabled: true,
			},
		},
	}
	svc := alerts.NewService(seed, clock.NewFixed(time.Date(2025, time.January, 4, 9, 0, 0, 0, time.UTC)))
	handler := NewAlertHandler(svc)

	router := gin.New()
	router.GET("/api/alerts/client/:id/active", handler.ListActive)
	router.POST("/api/alerts", handler.Create)
	router.POST("/api/alerts/:id/snooze", handler.Snooze)
	router.DELETE("/api/alerts/:id", handler.Delete)
	return router, svc
}

func TestListActiveEndpoint(t *testing.T) {
	router, _ := setupAlertRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/alerts/client/1/active", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []models.ComplianceAlert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
}

func TestCreateEndpointValidation(t *testing.T) {
	router, _ := setupAlertRouter(t)

	body, _ := json.Marshal(gin.H{"client_id": 1, "title": "   "})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/alerts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "title")
}

func TestSnoozeEndpoint(t *testing.T) {
	router, _ := setupAlertRouter(t)

	body, _ := json.Marshal(gin.H{"hours": 24})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/alerts/1/snooze", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got models.ComplianceAlert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, models.AlertStatusSnoozed, got.Status)
	require.NotNil(t, got.SnoozedUntil)
	assert.Equal(t, time.Date(2025, time.January, 5, 9, 0, 0, 0, time.UTC), got.SnoozedUntil.UTC())
}

func TestDeleteEndpointNotFound(t *testing.T) {
	router, svc := setupAlertRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/alerts/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, svc.List(), 1)
}
