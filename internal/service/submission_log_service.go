package service

import (
	"context"
	"errors"

	"github.com/stemsi/asts-console/internal/model"
	"github.com/stemsi/asts-console/internal/repository"
)

// ErrLogDisabled is returned when no database is configured.
var ErrLogDisabled = errors.New("submission log is not enabled")

const (
	DefaultSubmissionLimit = 20
	MaxSubmissionLimit     = 200
)

// SubmissionLogReader is the read side of the submission log repository.
type SubmissionLogReader interface {
	ListRecent(ctx context.Context, limit int) ([]model.SubmissionLog, error)
	SummaryByForm(ctx context.Context) ([]repository.FormSummary, error)
}

// SubmissionLogService exposes recorded submissions to the dashboard.
type SubmissionLogService struct {
	repo SubmissionLogReader
}

// NewSubmissionLogService creates a new SubmissionLogService. repo may be
// nil, in which case every call returns ErrLogDisabled.
func NewSubmissionLogService(repo SubmissionLogReader) *SubmissionLogService {
	return &SubmissionLogService{repo: repo}
}

// Enabled reports whether submissions are persisted.
func (s *SubmissionLogService) Enabled() bool {
	return s.repo != nil
}

// Recent returns up to limit entries, newest first. Non-positive limits use
// DefaultSubmissionLimit.
func (s *SubmissionLogService) Recent(ctx context.Context, limit int) ([]model.SubmissionLog, error) {
	if s.repo == nil {
		return nil, ErrLogDisabled
	}
	if limit <= 0 {
		limit = DefaultSubmissionLimit
	}
	limit = min(limit, MaxSubmissionLimit)

	logs, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []model.SubmissionLog{}
	}
	return logs, nil
}

func (s *SubmissionLogService) Summary(ctx context.Context) ([]repository.FormSummary, error) {
	if s.repo == nil {
		return nil, ErrLogDisabled
	}
	return s.repo.SummaryByForm(ctx)
}
