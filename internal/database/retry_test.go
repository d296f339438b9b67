package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/asts-console/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry(t *testing.T) {
	t.Helper()
	attempts, backoff := connectAttempts, connectBackoff
	connectAttempts, connectBackoff = 3, time.Millisecond
	t.Cleanup(func() { connectAttempts, connectBackoff = attempts, backoff })
}

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	fastRetry(t)
	calls := 0
	err := retry(context.Background(), zerolog.Nop(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetry_GivesUp(t *testing.T) {
	fastRetry(t)
	calls := 0
	err := retry(context.Background(), zerolog.Nop(), func(context.Context) error {
		calls++
		return errors.New("connection refused")
	})
	assert.EqualError(t, err, "connection refused")
	assert.Equal(t, 3, calls)
}

func TestRetry_StopsOnCancel(t *testing.T) {
	fastRetry(t)
	connectBackoff = time.Hour
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := retry(ctx, zerolog.Nop(), func(context.Context) error { return errors.New("down") })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpen_DisabledWithoutURL(t *testing.T) {
	cfg := &config.Config{}

	pool, err := OpenPostgres(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Nil(t, pool)

	rdb, err := OpenRedis(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Nil(t, rdb)
}
