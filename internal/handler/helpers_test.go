package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/asts-console/internal/backend"
	"github.com/stemsi/asts-console/internal/cache"
	"github.com/stemsi/asts-console/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubReply struct {
	code    string
	message string
	data    interface{}
}

// stubBackend is a fake ASTS backend speaking the resultCode envelope.
type stubBackend struct {
	mu      sync.Mutex
	replies map[string]stubReply
	bodies  map[string][]map[string]interface{}
	srv     *httptest.Server
}

func newStubBackend(t *testing.T) *stubBackend {
	t.Helper()
	s := &stubBackend{
		replies: map[string]stubReply{},
		bodies:  map[string][]map[string]interface{}{},
	}
	s.srv = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.srv.Close)
	return s
}

func (s *stubBackend) reply(path string, data interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[path] = stubReply{code: backend.SuccessCode, message: "SUCCESS", data: data}
}

func (s *stubBackend) reject(path, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[path] = stubReply{code: "0002", message: message}
}

func (s *stubBackend) received(path string) []map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bodies[path]
}

func (s *stubBackend) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, b := range s.bodies {
		n += len(b)
	}
	return n
}

func (s *stubBackend) serve(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	if r.Body != nil {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
	}

	s.mu.Lock()
	s.bodies[r.URL.Path] = append(s.bodies[r.URL.Path], body)
	rep, ok := s.replies[r.URL.Path]
	s.mu.Unlock()

	if !ok {
		rep = stubReply{code: backend.SuccessCode, message: "SUCCESS"}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"resultCode":    rep.code,
		"resultMessage": rep.message,
		"data":          rep.data,
	})
}

type testServices struct {
	ref    *service.ReferenceService
	tt     *service.TimetableService
	sample *service.SampleTimetableService
	logs   *service.SubmissionLogService
}

func newTestServices(baseURL string) testServices {
	log := zerolog.Nop()
	client := backend.NewClient(baseURL, 5*time.Second, log)
	return testServices{
		ref:    service.NewReferenceService(client, service.NewLogRecorder(log), log),
		tt:     service.NewTimetableService(client, cache.Nop{}, cache.Nop{}, time.Minute, log),
		sample: service.NewSampleTimetableService(),
		logs:   service.NewSubmissionLogService(nil),
	}
}

func newTestConsole(svc testServices) *ConsoleHandler {
	return NewConsoleHandler(svc.ref, svc.tt, svc.logs, func() []int { return []int{2024, 2025, 2026} }, zerolog.Nop())
}

func doJSON(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		rd = strings.NewReader(string(raw))
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// envelope is the decoded API response.
type envelope struct {
	Data  map[string]interface{} `json:"data"`
	Error *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v\n%s", err, w.Body.String())
	}
	return env
}
