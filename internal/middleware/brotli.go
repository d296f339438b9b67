package middleware

import (
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
)

// BrotliConfig tunes response compression.
type BrotliConfig struct {
	Quality int
	// MinLength is the body size below which responses are sent as is.
	MinLength int
	// Types lists the compressible Content-Type prefixes.
	Types []string
}

var DefaultBrotliConfig = BrotliConfig{
	Quality:   brotli.DefaultCompression,
	MinLength: 1024,
	Types:     []string{"text/html", "text/css", "text/plain", "application/json"},
}

// brotliWriter buffers the start of the body until it knows whether the
// response is large and compressible enough.
type brotliWriter struct {
	gin.ResponseWriter
	cfg     BrotliConfig
	buf     []byte
	decided bool
	br      *brotli.Writer
}

func (w *brotliWriter) Write(data []byte) (int, error) {
	if w.decided {
		if w.br != nil {
			return w.br.Write(data)
		}
		return w.ResponseWriter.Write(data)
	}

	w.buf = append(w.buf, data...)
	if len(w.buf) < w.cfg.MinLength {
		return len(data), nil
	}
	if err := w.decide(); err != nil {
		return 0, err
	}
	return len(data), nil
}

func (w *brotliWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// decide picks compression for the buffered body and drains it.
func (w *brotliWriter) decide() error {
	w.decided = true
	h := w.ResponseWriter.Header()
	if len(w.buf) >= w.cfg.MinLength && h.Get("Content-Encoding") == "" && compressible(h.Get("Content-Type"), w.cfg.Types) {
		h.Set("Content-Encoding", "br")
		h.Del("Content-Length")
		w.br = brotli.NewWriterLevel(w.ResponseWriter, w.cfg.Quality)
		_, err := w.br.Write(w.buf)
		w.buf = nil
		return err
	}
	_, err := w.ResponseWriter.Write(w.buf)
	w.buf = nil
	return err
}

func (w *brotliWriter) finish() error {
	if !w.decided {
		if len(w.buf) == 0 {
			return nil
		}
		if err := w.decide(); err != nil {
			return err
		}
	}
	if w.br != nil {
		return w.br.Close()
	}
	return nil
}

// Brotli compresses responses for clients sending Accept-Encoding: br.
func Brotli() gin.HandlerFunc {
	return BrotliWithConfig(DefaultBrotliConfig)
}

func BrotliWithConfig(cfg BrotliConfig) gin.HandlerFunc {
	if cfg.Quality < 0 || cfg.Quality > 11 {
		cfg.Quality = brotli.DefaultCompression
	}
	if cfg.MinLength <= 0 {
		cfg.MinLength = DefaultBrotliConfig.MinLength
	}
	if len(cfg.Types) == 0 {
		cfg.Types = DefaultBrotliConfig.Types
	}

	return func(c *gin.Context) {
		// Websocket upgrades hijack the connection and must see the raw writer.
		if strings.EqualFold(c.GetHeader("Upgrade"), "websocket") || !acceptsBrotli(c.Request) {
			c.Next()
			return
		}

		c.Header("Vary", "Accept-Encoding")
		bw := &brotliWriter{ResponseWriter: c.Writer, cfg: cfg}
		c.Writer = bw
		defer func() {
			if err := bw.finish(); err != nil {
				_ = c.Error(err)
			}
		}()
		c.Next()
	}
}

func compressible(contentType string, types []string) bool {
	for _, t := range types {
		if strings.HasPrefix(contentType, t) {
			return true
		}
	}
	return false
}

func acceptsBrotli(r *http.Request) bool {
	for _, enc := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		name, _, _ := strings.Cut(strings.TrimSpace(enc), ";")
		if strings.EqualFold(name, "br") {
			return true
		}
	}
	return false
}
