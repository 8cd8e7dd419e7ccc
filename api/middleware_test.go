package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONMiddleware(t *testing.T) {
	h := JSONMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/api/messages", nil))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestRecoveryMiddleware(t *testing.T) {
	h := RecoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		h.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestTimeoutMiddleware_Fast(t *testing.T) {
	h := TimeoutMiddleware(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Test", "yes")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("POST", "/api/messages", nil))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "yes", rr.Header().Get("X-Test"))
	assert.JSONEq(t, `{"success": true}`, rr.Body.String())
}

func TestTimeoutMiddleware_Slow(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	h := TimeoutMiddleware(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.WriteHeader(http.StatusCreated)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/api/messages", nil))

	assert.Equal(t, http.StatusRequestTimeout, rr.Code)
	assert.JSONEq(t, `{"error": "Request timeout"}`, rr.Body.String())
}

func TestTimeoutMiddleware_PanicPropagates(t *testing.T) {
	h := RecoveryMiddleware(TimeoutMiddleware(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/api/messages", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestMetricsMiddleware(t *testing.T) {
	InitMetrics(100, time.Hour)

	r := mux.NewRouter()
	r.Use(MetricsMiddleware)
	r.HandleFunc("/api/messages", func(w http.ResponseWriter, r *http.Request) {
		RecordOpFromContext(r.Context(), "load", "message_board.json", time.Millisecond, nil)
		w.WriteHeader(http.StatusTeapot)
	}).Methods("GET")

	req := httptest.NewRequest("GET", "/api/messages", nil)
	req.Header.Set("User-Agent", "board-test/1.0")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(RequestIDHeader))

	assert.Eventually(t, func() bool {
		m, ok := GetMetrics().GetRouteMetrics()["GET /api/messages"]
		return ok && m.Count == 1 && m.ErrorCount == 1
	}, time.Second, 10*time.Millisecond)

	traces := GetMetrics().GetTraces(10, time.Time{})
	require.Len(t, traces, 1)
	assert.Equal(t, rr.Header().Get(RequestIDHeader), traces[0].RequestID)
	assert.Equal(t, "board-test/1.0", traces[0].Metadata["userAgent"])
	assert.NotContains(t, traces[0].Metadata, "contentType")
}
