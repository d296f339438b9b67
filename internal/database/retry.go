package database

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Dependencies started alongside the console (compose, k8s) may take a few
// seconds to accept connections.
var (
	connectAttempts = 5
	connectBackoff  = time.Second
)

// retry runs ping until it succeeds, doubling the wait between attempts.
func retry(ctx context.Context, log zerolog.Logger, ping func(context.Context) error) error {
	wait := connectBackoff
	var err error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		if err = ping(ctx); err == nil {
			return nil
		}
		if attempt == connectAttempts {
			break
		}
		log.Warn().Err(err).Int("attempt", attempt).Dur("retry_in", wait).Msg("dependency not ready")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		wait *= 2
	}
	return err
}
