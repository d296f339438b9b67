package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/asts-console/internal/config"
	"github.com/stemsi/asts-console/internal/model"
)

const (
	LogBatchSize    = 50
	LogBatchTimeout = 2 * time.Second
	LogPollTimeout  = 1 * time.Second
	LogFlushTimeout = 10 * time.Second
)

// LogStore persists submission log entries.
type LogStore interface {
	InsertBatch(ctx context.Context, logs []model.SubmissionLog) error
	Insert(ctx context.Context, l *model.SubmissionLog) error
}

// SubmissionLogWorker drains the submission log queue into PostgreSQL.
type SubmissionLogWorker struct {
	store LogStore
	rdb   *redis.Client
	log   zerolog.Logger
}

func NewSubmissionLogWorker(store LogStore, rdb *redis.Client, log zerolog.Logger) *SubmissionLogWorker {
	return &SubmissionLogWorker{
		store: store,
		rdb:   rdb,
		log:   log.With().Str("component", "submission_log_worker").Logger(),
	}
}

// ----------------------------------------------------------------
// Worker loop with batching
// ----------------------------------------------------------------

// Start blocks until ctx is done, then flushes what it holds.
func (w *SubmissionLogWorker) Start(ctx context.Context) {
	w.log.Info().Msg("SubmissionLogWorker started")

	batch := make([]model.SubmissionLog, 0, LogBatchSize)
	lastFlush := time.Now()

	for {
		if len(batch) > 0 &&
			(len(batch) >= LogBatchSize || time.Since(lastFlush) >= LogBatchTimeout) {

			w.flushSafe(ctx, batch)
			batch = batch[:0]
			lastFlush = time.Now()
		}

		select {
		case <-ctx.Done():
			w.log.Info().Int("pending", len(batch)).Msg("Shutdown requested. Flushing remaining batch...")
			w.flushSafe(ctx, batch)
			return

		default:
			item, err := w.rdb.BLPop(ctx, LogPollTimeout, config.WorkerKey.SubmissionLogQueue).Result()
			if err != nil {
				if err != redis.Nil && ctx.Err() == nil {
					w.log.Error().Err(err).Msg("BLPop error")
				}
				continue
			}
			if len(item) < 2 {
				continue
			}

			var entry model.SubmissionLog
			if err := json.Unmarshal([]byte(item[1]), &entry); err != nil {
				w.log.Error().Err(err).Msg("Invalid JSON payload")
				continue
			}
			batch = append(batch, entry)
		}
	}
}

// ----------------------------------------------------------------
// Batch insert with per-row fallback
// ----------------------------------------------------------------

// flushSafe writes batch with one COPY; on failure rows are inserted one by
// one and rows that still fail go back on the queue. A batch already taken
// off the queue is written even when ctx is cancelled mid-flush.
func (w *SubmissionLogWorker) flushSafe(ctx context.Context, batch []model.SubmissionLog) {
	if len(batch) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), LogFlushTimeout)
	defer cancel()

	err := w.store.InsertBatch(ctx, batch)
	if err == nil {
		w.log.Debug().Int("rows", len(batch)).Msg("submission logs flushed")
		return
	}
	w.log.Warn().Err(err).Msg("batch insert failed, using fallback")

	for i := range batch {
		entry := batch[i]
		if err := w.store.Insert(ctx, &entry); err != nil {
			w.log.Error().Err(err).Str("form", entry.Form).Msg("insert failed, requeueing")
			w.requeue(ctx, entry)
		}
	}
}

func (w *SubmissionLogWorker) requeue(ctx context.Context, entry model.SubmissionLog) {
	if w.rdb == nil {
		return
	}
	raw, _ := json.Marshal(entry)
	w.rdb.RPush(ctx, config.WorkerKey.SubmissionLogQueue, raw)
}
