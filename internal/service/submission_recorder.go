package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/asts-console/internal/config"
	"github.com/stemsi/asts-console/internal/logger"
	"github.com/stemsi/asts-console/internal/model"
)

// SubmissionRecorder receives the audit record of every forwarded form.
// Recording never fails the submission itself.
type SubmissionRecorder interface {
	Record(ctx context.Context, entry model.SubmissionLog)
}

// SubmissionStore persists submission log entries.
type SubmissionStore interface {
	Insert(ctx context.Context, l *model.SubmissionLog) error
}

// LogRecorder only writes submissions to the application log.
type LogRecorder struct {
	log zerolog.Logger
}

func NewLogRecorder(log zerolog.Logger) *LogRecorder {
	return &LogRecorder{log: log.With().Str("component", "submission_log").Logger()}
}

func (r *LogRecorder) Record(ctx context.Context, e model.SubmissionLog) {
	log := logger.For(ctx, r.log)
	log.Info().
		Str("form", e.Form).
		Str("endpoint", e.Endpoint).
		Bool("success", e.Success).
		Str("message", e.Message).
		Msg("submission")
}

// StoreRecorder inserts each entry synchronously. Used when PostgreSQL is
// configured without Redis.
type StoreRecorder struct {
	store SubmissionStore
	next  *LogRecorder
}

func NewStoreRecorder(store SubmissionStore, log zerolog.Logger) *StoreRecorder {
	return &StoreRecorder{store: store, next: NewLogRecorder(log)}
}

func (r *StoreRecorder) Record(ctx context.Context, e model.SubmissionLog) {
	r.next.Record(ctx, e)
	e.CreatedAt = time.Now()
	if err := r.store.Insert(context.WithoutCancel(ctx), &e); err != nil {
		log := logger.For(ctx, r.next.log)
		log.Error().Err(err).Msg("failed to store submission log")
	}
}

// QueueRecorder pushes entries on a Redis list drained in batches by
// worker.SubmissionLogWorker.
type QueueRecorder struct {
	rdb  *redis.Client
	next *LogRecorder
}

func NewQueueRecorder(rdb *redis.Client, log zerolog.Logger) *QueueRecorder {
	return &QueueRecorder{rdb: rdb, next: NewLogRecorder(log)}
}

func (r *QueueRecorder) Record(ctx context.Context, e model.SubmissionLog) {
	r.next.Record(ctx, e)
	e.CreatedAt = time.Now()
	raw, err := json.Marshal(e)
	if err != nil {
		return
	}
	if err := r.rdb.RPush(context.WithoutCancel(ctx), config.WorkerKey.SubmissionLogQueue, raw).Err(); err != nil {
		log := logger.For(ctx, r.next.log)
		log.Error().Err(err).Msg("failed to queue submission log")
	}
}
