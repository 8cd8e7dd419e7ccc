package api

import (
	"context"
	"sort"
	"sync"
	"time"
)

// RequestTrace tracks timing for a single request
type RequestTrace struct {
	RequestID     string            `json:"requestId"`
	Method        string            `json:"method"`
	Path          string            `json:"path"`
	Route         string            `json:"route"`
	Status        int               `json:"status"`
	StartTime     time.Time         `json:"startTime"`
	EndTime       time.Time         `json:"endTime"`
	TotalDuration time.Duration     `json:"totalDuration"`
	Ops           []OpTrace         `json:"ops"`
	OpTotalTime   time.Duration     `json:"opTotalTime"`
	Error         string            `json:"error,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// OpTrace tracks a single file or mail operation made while serving a request
type OpTrace struct {
	Operation string        `json:"operation"`
	Target    string        `json:"target"`
	Duration  time.Duration `json:"duration"`
	Error     string        `json:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// RouteMetrics aggregates metrics for a specific route
type RouteMetrics struct {
	Method      string        `json:"method"`
	Route       string        `json:"route"`
	Count       int64         `json:"count"`
	ErrorCount  int64         `json:"errorCount"`
	TotalTime   time.Duration `json:"totalTime"`
	AvgTime     time.Duration `json:"avgTime"`
	MinTime     time.Duration `json:"minTime"`
	MaxTime     time.Duration `json:"maxTime"`
	P50Time     time.Duration `json:"p50Time"`
	P95Time     time.Duration `json:"p95Time"`
	P99Time     time.Duration `json:"p99Time"`
	OpTotalTime time.Duration `json:"opTotalTime"`
	OpAvgTime   time.Duration `json:"opAvgTime"`
	LastRequest time.Time     `json:"lastRequest"`
}

// MetricsCollector collects and aggregates request metrics
type MetricsCollector struct {
	mu             sync.RWMutex
	traces         []RequestTrace
	maxTraces      int
	routeMetrics   map[string]*RouteMetrics
	windowStart    time.Time
	windowDuration time.Duration
	totalRequests  int64
	totalErrors    int64
	totalOps       int64
	totalOpTime    time.Duration
	traceChan      chan RequestTrace
	stopChan       chan struct{}
	stopOnce       sync.Once
}

var (
	globalMetrics   *MetricsCollector
	globalMetricsMu sync.Mutex
)

// NewMetricsCollector starts a collector keeping at most maxTraces traces for windowDuration.
// Traces are queued on a buffered channel and dropped when it is full, so recording
// never blocks a request.
func NewMetricsCollector(maxTraces int, windowDuration time.Duration) *MetricsCollector {
	mc := &MetricsCollector{
		traces:         make([]RequestTrace, 0, maxTraces),
		maxTraces:      maxTraces,
		routeMetrics:   make(map[string]*RouteMetrics),
		windowStart:    time.Now(),
		windowDuration: windowDuration,
		traceChan:      make(chan RequestTrace, 1000),
		stopChan:       make(chan struct{}),
	}

	go mc.processTraces()
	go mc.cleanup()

	return mc
}

// InitMetrics initializes the global metrics collector
func InitMetrics(maxTraces int, windowDuration time.Duration) {
	globalMetricsMu.Lock()
	defer globalMetricsMu.Unlock()
	if globalMetrics != nil {
		globalMetrics.Stop()
	}
	globalMetrics = NewMetricsCollector(maxTraces, windowDuration)
}

// GetMetrics returns the global metrics collector
func GetMetrics() *MetricsCollector {
	globalMetricsMu.Lock()
	defer globalMetricsMu.Unlock()
	if globalMetrics == nil {
		globalMetrics = NewMetricsCollector(10000, 1*time.Hour) // Default: 10k traces, 1 hour window
	}
	return globalMetrics
}

// Stop ends the background goroutines
func (mc *MetricsCollector) Stop() {
	mc.stopOnce.Do(func() { close(mc.stopChan) })
}

// RecordTrace queues a trace without blocking. If the channel is full the trace is dropped.
func (mc *MetricsCollector) RecordTrace(trace RequestTrace) {
	select {
	case mc.traceChan <- trace:
	default:
	}
}

func (mc *MetricsCollector) processTraces() {
	for {
		select {
		case trace := <-mc.traceChan:
			mc.processTrace(trace)
		case <-mc.stopChan:
			return
		}
	}
}

func (mc *MetricsCollector) processTrace(trace RequestTrace) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if len(mc.traces) >= mc.maxTraces {
		mc.traces = mc.traces[1:]
	}
	mc.traces = append(mc.traces, trace)

	routeKey := trace.Method + " " + trace.Route
	metrics, exists := mc.routeMetrics[routeKey]
	if !exists {
		metrics = &RouteMetrics{
			Method:  trace.Method,
			Route:   trace.Route,
			MinTime: trace.TotalDuration,
		}
		mc.routeMetrics[routeKey] = metrics
	}

	metrics.Count++
	metrics.TotalTime += trace.TotalDuration
	metrics.AvgTime = metrics.TotalTime / time.Duration(metrics.Count)
	metrics.LastRequest = trace.StartTime

	if trace.TotalDuration < metrics.MinTime {
		metrics.MinTime = trace.TotalDuration
	}
	if trace.TotalDuration > metrics.MaxTime {
		metrics.MaxTime = trace.TotalDuration
	}

	if trace.Status >= 400 {
		metrics.ErrorCount++
		mc.totalErrors++
	}

	metrics.OpTotalTime += trace.OpTotalTime
	metrics.OpAvgTime = metrics.OpTotalTime / time.Duration(metrics.Count)

	mc.totalRequests++
	mc.totalOps += int64(len(trace.Ops))
	mc.totalOpTime += trace.OpTotalTime

	mc.calculatePercentiles(routeKey)
}

// GetTraces returns up to limit traces started after since, oldest first
func (mc *MetricsCollector) GetTraces(limit int, since time.Time) []RequestTrace {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	var filtered []RequestTrace
	for i := len(mc.traces) - 1; i >= 0 && len(filtered) < limit; i-- {
		if mc.traces[i].StartTime.After(since) {
			filtered = append(filtered, mc.traces[i])
		}
	}
	for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
		filtered[i], filtered[j] = filtered[j], filtered[i]
	}
	return filtered
}

// GetRouteMetrics returns a copy of the aggregated metrics for all routes
func (mc *MetricsCollector) GetRouteMetrics() map[string]*RouteMetrics {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	result := make(map[string]*RouteMetrics, len(mc.routeMetrics))
	for k, v := range mc.routeMetrics {
		metrics := *v
		result[k] = &metrics
	}
	return result
}

// GetSlowestRoutes returns the routes with the highest average time
func (mc *MetricsCollector) GetSlowestRoutes(limit int) []*RouteMetrics {
	routes := make([]*RouteMetrics, 0)
	for _, m := range mc.GetRouteMetrics() {
		routes = append(routes, m)
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].AvgTime == routes[j].AvgTime {
			return routes[i].Method+routes[i].Route < routes[j].Method+routes[j].Route
		}
		return routes[i].AvgTime > routes[j].AvgTime
	})
	if limit > 0 && limit < len(routes) {
		routes = routes[:limit]
	}
	return routes
}

// GetSummary returns overall summary metrics
func (mc *MetricsCollector) GetSummary() map[string]interface{} {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	elapsed := time.Since(mc.windowStart)
	if elapsed > mc.windowDuration {
		elapsed = mc.windowDuration
	}

	var tps float64
	if elapsed.Seconds() > 0 {
		tps = float64(mc.totalRequests) / elapsed.Seconds()
	}

	var errorRate float64
	if mc.totalRequests > 0 {
		errorRate = float64(mc.totalErrors) / float64(mc.totalRequests)
	}

	var avgOpTime time.Duration
	if mc.totalOps > 0 {
		avgOpTime = mc.totalOpTime / time.Duration(mc.totalOps)
	}

	return map[string]interface{}{
		"totalRequests": mc.totalRequests,
		"totalErrors":   mc.totalErrors,
		"errorRate":     errorRate,
		"tps":           tps,
		"totalOps":      mc.totalOps,
		"totalOpTime":   mc.totalOpTime.String(),
		"avgOpTime":     avgOpTime.String(),
		"windowStart":   mc.windowStart,
		"windowEnd":     mc.windowStart.Add(mc.windowDuration),
		"routeCount":    len(mc.routeMetrics),
		"traceCount":    len(mc.traces),
	}
}

// calculatePercentiles calculates P50, P95, P99 for a route. Callers hold mc.mu.
func (mc *MetricsCollector) calculatePercentiles(routeKey string) {
	metrics := mc.routeMetrics[routeKey]
	if metrics == nil {
		return
	}

	var durations []time.Duration
	for _, trace := range mc.traces {
		if trace.Method+" "+trace.Route == routeKey {
			durations = append(durations, trace.TotalDuration)
		}
	}
	if len(durations) == 0 {
		return
	}
	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })

	metrics.P50Time = percentile(durations, 0.50)
	metrics.P95Time = percentile(durations, 0.95)
	metrics.P99Time = percentile(durations, 0.99)
}

func percentile(sorted []time.Duration, p float64) time.Duration {
	idx := int(float64(len(sorted)) * p)
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// cleanup removes traces older than the window and restarts the window when it expires
func (mc *MetricsCollector) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mc.prune(time.Now())
		case <-mc.stopChan:
			return
		}
	}
}

func (mc *MetricsCollector) prune(now time.Time) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	cutoff := now.Add(-mc.windowDuration)
	valid := mc.traces[:0]
	for _, trace := range mc.traces {
		if trace.StartTime.After(cutoff) {
			valid = append(valid, trace)
		}
	}
	mc.traces = valid

	if now.Sub(mc.windowStart) > mc.windowDuration {
		mc.windowStart = now
	}
}

type requestTraceContextKey struct{}

type requestTraceContext struct {
	trace *RequestTrace
	mu    sync.Mutex
}

func getRequestTraceFromContext(ctx context.Context) *requestTraceContext {
	if val := ctx.Value(requestTraceContextKey{}); val != nil {
		return val.(*requestTraceContext)
	}
	return nil
}

// WithRequestTrace adds request trace to context
func WithRequestTrace(ctx context.Context, trace *RequestTrace) context.Context {
	return context.WithValue(ctx, requestTraceContextKey{}, &requestTraceContext{trace: trace})
}

// snapshotTrace copies the request trace in ctx while holding its lock
func snapshotTrace(ctx context.Context) RequestTrace {
	reqTrace := getRequestTraceFromContext(ctx)
	if reqTrace == nil || reqTrace.trace == nil {
		return RequestTrace{}
	}
	reqTrace.mu.Lock()
	defer reqTrace.mu.Unlock()
	t := *reqTrace.trace
	t.Ops = append([]OpTrace(nil), t.Ops...)
	return t
}

// RecordOpFromContext records a file or mail operation on the request trace in ctx.
// Contexts without a trace are ignored.
func RecordOpFromContext(ctx context.Context, operation, target string, duration time.Duration, err error) {
	reqTrace := getRequestTraceFromContext(ctx)
	if reqTrace == nil || reqTrace.trace == nil {
		return
	}

	reqTrace.mu.Lock()
	defer reqTrace.mu.Unlock()
	op := OpTrace{
		Operation: operation,
		Target:    target,
		Duration:  duration,
		Timestamp: time.Now(),
	}
	if err != nil {
		op.Error = err.Error()
	}
	reqTrace.trace.Ops = append(reqTrace.trace.Ops, op)
	reqTrace.trace.OpTotalTime += duration
}

// TimeOp runs fn and records it on the request trace in ctx
func TimeOp(ctx context.Context, operation, target string, fn func() error) error {
	start := time.Now()
	err := fn()
	RecordOpFromContext(ctx, operation, target, time.Since(start), err)
	return err
}
