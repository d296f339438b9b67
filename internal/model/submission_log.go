package model

import (
	"encoding/json"
	"time"
)

// SubmissionLog is the audit record of one form forwarded to the backend.
type SubmissionLog struct {
	ID        int64           `json:"id"`
	Form      string          `json:"form"`
	Endpoint  string          `json:"endpoint"`
	Payload   json.RawMessage `json:"payload"`
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	RequestID string          `json:"request_id"`
	CreatedAt time.Time       `json:"created_at"`
}
