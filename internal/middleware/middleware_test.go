package middleware

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rl := NewRateLimiter(ctx, 2)

	r := gin.New()
	r.POST("/generate", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 3)
	for i := range codes {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/generate", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes[i] = w.Code
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// Another client has its own bucket.
	assert.True(t, rl.Allow("10.0.0.2"))
}

func TestBrotliCompressesLargeHTML(t *testing.T) {
	body := strings.Repeat("<p>timetable</p>", 200)
	r := gin.New()
	r.Use(Brotli())
	r.GET("/page", func(c *gin.Context) { c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(body)) })
	r.GET("/small", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	req.Header.Set("Accept-Encoding", "gzip, br")
	r.ServeHTTP(w, req)

	require.Equal(t, "br", w.Header().Get("Content-Encoding"))
	plain, err := io.ReadAll(brotli.NewReader(bytes.NewReader(w.Body.Bytes())))
	require.NoError(t, err)
	assert.Equal(t, body, string(plain))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/small", nil)
	req.Header.Set("Accept-Encoding", "br")
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, "ok", w.Body.String())
}

func TestBrotliSkipsBinaryDownloads(t *testing.T) {
	payload := bytes.Repeat([]byte{0x50, 0x4b}, 2048)
	r := gin.New()
	r.Use(Brotli())
	r.GET("/export", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", payload)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	req.Header.Set("Accept-Encoding", "br")
	r.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, payload, w.Body.Bytes())
}

func TestNoStore(t *testing.T) {
	r := gin.New()
	r.GET("/console", NoStore(), func(c *gin.Context) { c.Status(http.StatusOK) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/console", nil))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}
