package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/asts-console/internal/backend"
	"github.com/stemsi/asts-console/internal/cache"
	"github.com/stemsi/asts-console/internal/config"
	"github.com/stemsi/asts-console/internal/handler"
	"github.com/stemsi/asts-console/internal/middleware"
	"github.com/stemsi/asts-console/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	log := zerolog.Nop()
	cfg := &config.Config{GinMode: "test", YearWindow: 3}

	client := backend.NewClient("http://127.0.0.1:1", time.Second, log)
	ref := service.NewReferenceService(client, service.NewLogRecorder(log), log)
	tt := service.NewTimetableService(client, cache.Nop{}, cache.Nop{}, time.Minute, log)
	logs := service.NewSubmissionLogService(nil)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return SetupRouter(&Handlers{
		Console:    handler.NewConsoleHandler(ref, tt, logs, func() []int { return cfg.Years(time.Now()) }, log),
		Reference:  handler.NewReferenceHandler(ref),
		Timetable:  handler.NewTimetableHandler(tt),
		Sample:     handler.NewSampleTimetableHandler(service.NewSampleTimetableService()),
		Submission: handler.NewSubmissionHandler(logs),
		WS:         handler.NewWSHandler(nil, log, nil),
		System:     handler.NewSystemHandler(nil, nil),
	}, middleware.NewRateLimiter(ctx, 1), cfg, log)
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRouter_Routes(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		path string
		code int
	}{
		{"/health", http.StatusOK},
		{"/", http.StatusFound},
		{"/console", http.StatusFound},
		{"/console/dashboard", http.StatusOK},
		{"/console/course", http.StatusOK},
		{"/assets/console.css", http.StatusOK},
		{"/api/timetable", http.StatusOK},
		{"/ws/v1/timetable/events", http.StatusServiceUnavailable},
		{"/nowhere", http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.code, get(r, tc.path).Code)
		})
	}
}

func TestRouter_ConsoleIsNotCached(t *testing.T) {
	w := get(newTestRouter(t), "/console/dashboard")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Cache-Control"), "no-store")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_GenerateIsRateLimited(t *testing.T) {
	r := newTestRouter(t)

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/timetable/generate", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusBadRequest, post())
	assert.Equal(t, http.StatusTooManyRequests, post())
}
