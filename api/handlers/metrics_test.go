package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/cohort-site/api"
)

func newRecordedCollector(t *testing.T) *api.MetricsCollector {
	t.Helper()
	mc := api.NewMetricsCollector(100, time.Hour)
	t.Cleanup(mc.Stop)

	mc.RecordTrace(api.RequestTrace{
		RequestID:     "abc",
		Method:        "POST",
		Route:         "/api/messages",
		Status:        http.StatusCreated,
		StartTime:     time.Now(),
		TotalDuration: 12 * time.Millisecond,
		Ops:           []api.OpTrace{{Operation: "append", Target: "message_board.json", Duration: 3 * time.Millisecond}},
		OpTotalTime:   3 * time.Millisecond,
		Metadata:      map[string]string{"contentType": "application/json"},
	})
	require.Eventually(t, func() bool { return len(mc.GetRouteMetrics()) == 1 }, time.Second, 5*time.Millisecond)
	return mc
}

func TestMetricsHandler_Summary(t *testing.T) {
	m := MetricsHandler{Collector: newRecordedCollector(t)}
	rr := httptest.NewRecorder()
	m.GetMetricsSummary(rr, httptest.NewRequest("GET", "/api/metrics/summary", nil))

	checkResponseCode(t, http.StatusOK, rr.Code)

	var body struct {
		Summary      map[string]interface{}   `json:"summary"`
		Slowest      []map[string]interface{} `json:"slowest"`
		RecentTraces []map[string]interface{} `json:"recentTraces"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body.Summary["totalRequests"])
	require.Len(t, body.Slowest, 1)
	assert.Equal(t, "/api/messages", body.Slowest[0]["route"])
	assert.Equal(t, float64(12), body.Slowest[0]["avgTime"])
	require.Len(t, body.RecentTraces, 1)
	assert.Equal(t, "abc", body.RecentTraces[0]["requestId"])
	assert.Equal(t, map[string]interface{}{"contentType": "application/json"}, body.RecentTraces[0]["metadata"])
}

func TestMetricsHandler_Route(t *testing.T) {
	m := MetricsHandler{Collector: newRecordedCollector(t)}

	tests := []struct {
		name  string
		route string
		code  int
	}{
		{"missing parameter", "", http.StatusBadRequest},
		{"unknown route", "GET /nope", http.StatusNotFound},
		{"known route", "POST /api/messages", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/api/metrics/routes"
			if tt.route != "" {
				target += "?route=" + url.QueryEscape(tt.route)
			}
			rr := httptest.NewRecorder()
			m.GetRouteMetrics(rr, httptest.NewRequest("GET", target, nil))
			checkResponseCode(t, tt.code, rr.Code)
		})
	}
}
