package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/linesmerrill/cohort-site/api"
	"github.com/linesmerrill/cohort-site/config"
)

// formatRouteMetrics converts duration fields to milliseconds for JSON serialization
func formatRouteMetrics(routes []*api.RouteMetrics) []map[string]interface{} {
	result := make([]map[string]interface{}, len(routes))
	for i, route := range routes {
		result[i] = map[string]interface{}{
			"method":      route.Method,
			"route":       route.Route,
			"count":       route.Count,
			"errorCount":  route.ErrorCount,
			"avgTime":     route.AvgTime.Milliseconds(),
			"minTime":     route.MinTime.Milliseconds(),
			"maxTime":     route.MaxTime.Milliseconds(),
			"p50Time":     route.P50Time.Milliseconds(),
			"p95Time":     route.P95Time.Milliseconds(),
			"p99Time":     route.P99Time.Milliseconds(),
			"opAvgTime":   route.OpAvgTime.Milliseconds(),
			"lastRequest": route.LastRequest,
		}
	}
	return result
}

// formatTraces converts trace durations to milliseconds
func formatTraces(traces []api.RequestTrace) []map[string]interface{} {
	result := make([]map[string]interface{}, len(traces))
	for i, trace := range traces {
		ops := make([]map[string]interface{}, len(trace.Ops))
		for j, op := range trace.Ops {
			ops[j] = map[string]interface{}{
				"operation": op.Operation,
				"target":    op.Target,
				"duration":  op.Duration.Milliseconds(),
				"error":     op.Error,
				"timestamp": op.Timestamp,
			}
		}
		result[i] = map[string]interface{}{
			"requestId":     trace.RequestID,
			"method":        trace.Method,
			"route":         trace.Route,
			"path":          trace.Path,
			"status":        trace.Status,
			"startTime":     trace.StartTime,
			"totalDuration": trace.TotalDuration.Milliseconds(),
			"ops":           ops,
			"opTotalTime":   trace.OpTotalTime.Milliseconds(),
			"error":         trace.Error,
			"metadata":      trace.Metadata,
		}
	}
	return result
}

// MetricsHandler handles metrics requests
type MetricsHandler struct {
	Collector *api.MetricsCollector
}

func (m MetricsHandler) collector() *api.MetricsCollector {
	if m.Collector != nil {
		return m.Collector
	}
	return api.GetMetrics()
}

// GetMetricsSummary returns the summary metrics plus the slowest routes and recent traces
func (m MetricsHandler) GetMetricsSummary(w http.ResponseWriter, r *http.Request) {
	metrics := m.collector()

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	since := time.Now().Add(-1 * time.Hour)
	if sinceStr := r.URL.Query().Get("since"); sinceStr != "" {
		if parsed, err := time.ParseDuration(sinceStr); err == nil {
			since = time.Now().Add(-parsed)
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"summary":      metrics.GetSummary(),
		"slowest":      formatRouteMetrics(metrics.GetSlowestRoutes(limit)),
		"recentTraces": formatTraces(metrics.GetTraces(limit, since)),
	})
}

// GetRouteMetrics returns metrics for one route, e.g. ?route=POST /api/messages
func (m MetricsHandler) GetRouteMetrics(w http.ResponseWriter, r *http.Request) {
	routeMetrics := m.collector().GetRouteMetrics()

	route := r.URL.Query().Get("route")
	if route == "" {
		config.ErrorStatus("route parameter required", http.StatusBadRequest, w, nil)
		return
	}

	routeData, exists := routeMetrics[route]
	if !exists {
		config.ErrorStatus("route not found", http.StatusNotFound, w, nil)
		return
	}

	writeJSON(w, http.StatusOK, formatRouteMetrics([]*api.RouteMetrics{routeData})[0])
}
