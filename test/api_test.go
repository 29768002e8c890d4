package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidIQ/onlytimer/internal/clock"
	"github.com/DavidIQ/onlytimer/internal/feed"
	"github.com/DavidIQ/onlytimer/internal/http/api"
	"github.com/DavidIQ/onlytimer/internal/http/api/endpoints"
	"github.com/DavidIQ/onlytimer/internal/timing"
)

func setupRouter(t *testing.T, clk clock.Clock, store timing.LogStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()

	registry := timing.NewRegistry(clk, store)

	api.MountGroup(r, api.GroupConfig{Prefix: "/api"},
		endpoints.ScheduleModule(feed.SampleSource()),
		endpoints.MeetingModule(registry),
		endpoints.ReportModule(registry.Store(), t.TempDir()),
	)
	api.MountGroup(r, api.GroupConfig{Prefix: "/api/admin"},
		endpoints.AdminModule(registry.Store()),
	)
	return r
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestScheduleEndpoint(t *testing.T) {
	router := setupRouter(t, clock.NewManual(), timing.NewMemoryStore())

	w := doJSON(t, router, http.MethodGet, "/api/schedule?kind=weekend&circuit=true", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var segments []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &segments))
	require.Len(t, segments, 3)
	assert.Equal(t, "public_talk", segments[0]["talk_kind"])
	assert.Equal(t, "circuit_service_talk", segments[2]["talk_kind"])

	w = doJSON(t, router, http.MethodGet, "/api/schedule?kind=midweek", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &segments))
	// 4 treasures + 3 sample ministry items + 4 living section items
	assert.Len(t, segments, 11)

	w = doJSON(t, router, http.MethodGet, "/api/schedule?kind=monthly", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMeetingRecordingFlow(t *testing.T) {
	clk := clock.NewManual()
	store := timing.NewMemoryStore()
	router := setupRouter(t, clk, store)

	const date = "2026-08-23"
	start := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	clk.Set(start)

	w := doJSON(t, router, http.MethodPost, "/api/meetings/"+date+"/start",
		map[string]any{"timestamp": start.Format(time.RFC3339)})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/meetings/"+date+"/planned-end",
		map[string]any{"timestamp": start.Add(105 * time.Minute).Format(time.RFC3339)})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/meetings/"+date+"/timer/start",
		map[string]any{"description": "Public Talk", "original_target_seconds": 1800})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// opening a second segment while one is running is a sequencing
	// violation, not a silent close
	w = doJSON(t, router, http.MethodPost, "/api/meetings/"+date+"/timer/start",
		map[string]any{"description": "Watchtower Study", "original_target_seconds": 3600})
	assert.Equal(t, http.StatusConflict, w.Code)

	clk.Advance(30 * time.Minute)
	w = doJSON(t, router, http.MethodPost, "/api/meetings/"+date+"/timer/stop", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/meetings/"+date+"/end", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/meetings/"+date+"/save", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/meetings/"+date, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var logResp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logResp))
	assert.Equal(t, date, logResp["meeting_date"])
	events, ok := logResp["events"].([]any)
	require.True(t, ok)
	assert.Len(t, events, 1)

	w = doJSON(t, router, http.MethodPost, "/api/reports", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var reportResp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reportResp))
	assert.Equal(t, float64(1), reportResp["meeting_count"])
	assert.NotEmpty(t, reportResp["path"])
}

func TestAdminDeleteTimingData(t *testing.T) {
	clk := clock.NewManual()
	store := timing.NewMemoryStore()
	router := setupRouter(t, clk, store)

	start := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	clk.Set(start)

	const date = "2026-08-23"
	doJSON(t, router, http.MethodPost, "/api/meetings/"+date+"/start",
		map[string]any{"timestamp": start.Format(time.RFC3339)})
	doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/meetings/%s/save", date), nil)

	w := doJSON(t, router, http.MethodDelete, "/api/admin/timing-data", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// nothing left to report on
	w = doJSON(t, router, http.MethodPost, "/api/reports", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
