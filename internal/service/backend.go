package service

import (
	"context"
	"sort"
	"strings"
)

// Backend is the part of the ASTS backend client the services depend on.
type Backend interface {
	Post(ctx context.Context, path string, body, out interface{}) error
	Get(ctx context.Context, path string, out interface{}) error
}

// FieldError reports payloads rejected before any backend call.
type FieldError struct {
	Fields map[string]string
}

func (e *FieldError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, len(keys))
	for i, k := range keys {
		msgs[i] = e.Fields[k]
	}
	return strings.Join(msgs, "; ")
}
