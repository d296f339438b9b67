package service

import (
	"context"
	"encoding/json"
	"path"
	"sync"
	"time"

	"github.com/stemsi/asts-console/internal/model"
)

type call struct {
	path string
	body interface{}
}

// fakeBackend answers every request with data (encoded as JSON) or err.
type fakeBackend struct {
	mu    sync.Mutex
	calls []call
	data  map[string]interface{}
	err   error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{data: map[string]interface{}{}}
}

func (f *fakeBackend) Post(_ context.Context, p string, body, out interface{}) error {
	f.mu.Lock()
	f.calls = append(f.calls, call{path: p, body: body})
	f.mu.Unlock()
	return f.answer(p, out)
}

func (f *fakeBackend) Get(_ context.Context, p string, out interface{}) error {
	f.mu.Lock()
	f.calls = append(f.calls, call{path: p})
	f.mu.Unlock()
	return f.answer(p, out)
}

func (f *fakeBackend) answer(p string, out interface{}) error {
	if f.err != nil {
		return f.err
	}
	v, ok := f.data[p]
	if !ok || out == nil {
		return nil
	}
	raw, _ := json.Marshal(v)
	return json.Unmarshal(raw, out)
}

type fakeStore struct {
	mu        sync.Mutex
	values    map[string][]byte
	deleted   []string
	published map[string][][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: map[string][]byte{}, published: map[string][][]byte{}}
}

func (s *fakeStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *fakeStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *fakeStore) DeleteMatching(_ context.Context, pattern string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, pattern)
	for k := range s.values {
		if ok, _ := path.Match(pattern, k); ok {
			delete(s.values, k)
		}
	}
	return nil
}

func (s *fakeStore) Publish(_ context.Context, channel string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.published[channel] = append(s.published[channel], payload)
	return nil
}

type fakeRecorder struct {
	mu      sync.Mutex
	entries []model.SubmissionLog
}

func (r *fakeRecorder) Record(_ context.Context, e model.SubmissionLog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}
