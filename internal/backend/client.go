// Package backend talks to the ASTS scheduling backend.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/asts-console/internal/logger"
)

// SuccessCode is the resultCode of every successful backend response.
const SuccessCode = "0001"

// Envelope is the response shape shared by all backend endpoints.
type Envelope struct {
	ResultCode    string          `json:"resultCode"`
	ResultMessage string          `json:"resultMessage"`
	Data          json.RawMessage `json:"data"`
}

// OK reports whether the backend accepted the request.
func (e *Envelope) OK() bool {
	return e.ResultCode == SuccessCode
}

// ResultError is a business failure reported by the backend. Message is the
// backend's resultMessage and is meant to be shown verbatim.
type ResultError struct {
	Code    string
	Message string
}

func (e *ResultError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend result %q", e.Code)
	}
	return e.Message
}

// ErrUnavailable wraps transport failures, non-2xx statuses and
// undecodable bodies.
var ErrUnavailable = errors.New("asts backend unavailable")

// Client is a JSON client for the ASTS backend.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient creates a Client for baseURL, e.g. http://localhost:8080/asts.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log.With().Str("component", "backend_client").Logger(),
	}
}

// Post sends body as JSON to path and decodes the envelope data into out
// (out may be nil). A non-success resultCode yields a *ResultError.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", path, err)
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(raw), out)
}

// Get fetches path and decodes the envelope data into out.
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out interface{}) error {
	log := logger.For(ctx, c.log).With().Str("method", method).Str("path", path).Logger()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := logger.RequestID(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn().Err(err).Msg("backend request failed")
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	log.Debug().Int("status", resp.StatusCode).Dur("latency", time.Since(start)).Msg("backend responded")

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 300 {
			return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
		}
		return fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}

	if !env.OK() {
		if env.ResultCode == "" && resp.StatusCode >= 300 {
			return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
		}
		log.Info().Str("result_code", env.ResultCode).Str("result_message", env.ResultMessage).Msg("backend rejected request")
		return &ResultError{Code: env.ResultCode, Message: env.ResultMessage}
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: decode data of %s: %v", ErrUnavailable, path, err)
	}
	return nil
}

// Message renders err the way the console shows failures: the backend
// message for business failures, the error text otherwise.
func Message(err error) string {
	var re *ResultError
	if errors.As(err, &re) {
		return re.Error()
	}
	return err.Error()
}
