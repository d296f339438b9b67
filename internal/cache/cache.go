// Package cache stores timetable query results and carries timetable events.
package cache

import (
	"context"
	"time"
)

// Store is the cache used by the timetable service.
type Store interface {
	// Get returns the cached value and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// DeleteMatching removes every key matching a glob pattern.
	DeleteMatching(ctx context.Context, pattern string) error
}

// Publisher broadcasts events to console clients.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// Nop is used when Redis is not configured: nothing is cached or published.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (Nop) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (Nop) DeleteMatching(context.Context, string) error             { return nil }
func (Nop) Publish(context.Context, string, []byte) error            { return nil }
