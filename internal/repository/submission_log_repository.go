package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/asts-console/internal/model"
)

// SubmissionLogRepository handles submission log data access.
type SubmissionLogRepository struct {
	pool *pgxpool.Pool
}

// NewSubmissionLogRepository creates a new SubmissionLogRepository.
func NewSubmissionLogRepository(pool *pgxpool.Pool) *SubmissionLogRepository {
	return &SubmissionLogRepository{pool: pool}
}

// Insert stores a single entry and fills in its ID.
func (r *SubmissionLogRepository) Insert(ctx context.Context, l *model.SubmissionLog) error {
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO submission_logs (form, endpoint, payload, success, message, request_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		l.Form, l.Endpoint, payloadOrEmpty(l.Payload), l.Success, l.Message, l.RequestID, l.CreatedAt,
	).Scan(&l.ID)
}

// InsertBatch stores many entries with a single COPY.
func (r *SubmissionLogRepository) InsertBatch(ctx context.Context, logs []model.SubmissionLog) error {
	if len(logs) == 0 {
		return nil
	}
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"submission_logs"},
		[]string{"form", "endpoint", "payload", "success", "message", "request_id", "created_at"},
		pgx.CopyFromSlice(len(logs), func(i int) ([]interface{}, error) {
			l := logs[i]
			created := l.CreatedAt
			if created.IsZero() {
				created = time.Now()
			}
			return []interface{}{l.Form, l.Endpoint, payloadOrEmpty(l.Payload), l.Success, l.Message, l.RequestID, created}, nil
		}),
	)
	return err
}

// ListRecent returns the newest entries first.
func (r *SubmissionLogRepository) ListRecent(ctx context.Context, limit int) ([]model.SubmissionLog, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, form, endpoint, payload, success, message, request_id, created_at
		 FROM submission_logs ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []model.SubmissionLog
	for rows.Next() {
		var l model.SubmissionLog
		var payload []byte
		if err := rows.Scan(&l.ID, &l.Form, &l.Endpoint, &payload, &l.Success, &l.Message, &l.RequestID, &l.CreatedAt); err != nil {
			return nil, err
		}
		l.Payload = json.RawMessage(payload)
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// FormSummary counts submissions of one form.
type FormSummary struct {
	Form      string `json:"form"`
	Succeeded int    `json:"succeeded"`
	Failed    int    `json:"failed"`
}

// SummaryByForm aggregates outcomes per form for the dashboard.
func (r *SubmissionLogRepository) SummaryByForm(ctx context.Context) ([]FormSummary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT form,
		        COUNT(*) FILTER (WHERE success),
		        COUNT(*) FILTER (WHERE NOT success)
		 FROM submission_logs GROUP BY form ORDER BY form`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FormSummary
	for rows.Next() {
		var s FormSummary
		if err := rows.Scan(&s.Form, &s.Succeeded, &s.Failed); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func payloadOrEmpty(p json.RawMessage) []byte {
	if len(p) == 0 {
		return []byte("{}")
	}
	return p
}
