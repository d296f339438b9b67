package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stemsi/asts-console/internal/model"
	"github.com/stretchr/testify/assert"
)

type fakeStore struct {
	batchErr error
	failForm string
	batches  [][]model.SubmissionLog
	singles  []model.SubmissionLog
}

func (s *fakeStore) InsertBatch(ctx context.Context, logs []model.SubmissionLog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.batchErr != nil {
		return s.batchErr
	}
	s.batches = append(s.batches, append([]model.SubmissionLog(nil), logs...))
	return nil
}

func (s *fakeStore) Insert(ctx context.Context, l *model.SubmissionLog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if l.Form == s.failForm {
		return errors.New("insert failed")
	}
	s.singles = append(s.singles, *l)
	return nil
}

func TestFlushSafeUsesBatchInsert(t *testing.T) {
	store := &fakeStore{}
	w := NewSubmissionLogWorker(store, nil, zerolog.Nop())

	w.flushSafe(context.Background(), []model.SubmissionLog{{Form: "unit"}, {Form: "venue"}})

	assert.Len(t, store.batches, 1)
	assert.Len(t, store.batches[0], 2)
	assert.Empty(t, store.singles)
}

func TestFlushSafeFallsBackToSingleInserts(t *testing.T) {
	store := &fakeStore{batchErr: errors.New("copy failed"), failForm: "venue"}
	w := NewSubmissionLogWorker(store, nil, zerolog.Nop())

	w.flushSafe(context.Background(), []model.SubmissionLog{{Form: "unit"}, {Form: "venue"}, {Form: "course"}})

	assert.Empty(t, store.batches)
	assert.Equal(t, []string{"unit", "course"}, []string{store.singles[0].Form, store.singles[1].Form})
}

func TestFlushSafeIgnoresEmptyBatch(t *testing.T) {
	store := &fakeStore{}
	NewSubmissionLogWorker(store, nil, zerolog.Nop()).flushSafe(context.Background(), nil)
	assert.Empty(t, store.batches)
}

func TestFlushSafeSurvivesCancelledContext(t *testing.T) {
	store := &fakeStore{}
	w := NewSubmissionLogWorker(store, nil, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w.flushSafe(ctx, []model.SubmissionLog{{Form: "unit"}, {Form: "venue"}})

	assert.Len(t, store.batches, 1)
	assert.Len(t, store.batches[0], 2)
}
