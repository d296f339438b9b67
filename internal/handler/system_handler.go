package handler

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stemsi/asts-console/internal/config"
	"github.com/stemsi/asts-console/internal/response"
)

const healthTimeout = 2 * time.Second

const (
	depUp       = "up"
	depDown     = "down"
	depDisabled = "disabled"
)

// SystemHandler reports process and dependency health.
type SystemHandler struct {
	rdb       *redis.Client
	pool      *pgxpool.Pool
	startTime time.Time
}

// NewSystemHandler creates a SystemHandler. rdb and pool may be nil.
func NewSystemHandler(rdb *redis.Client, pool *pgxpool.Pool) *SystemHandler {
	return &SystemHandler{rdb: rdb, pool: pool, startTime: time.Now()}
}

type healthReport struct {
	Status     string            `json:"status"`
	Uptime     string            `json:"uptime"`
	GoVersion  string            `json:"go_version"`
	Goroutines int               `json:"goroutines"`
	Deps       map[string]string `json:"dependencies"`
	// QueuedSubmissions is the backlog of the submission log worker.
	QueuedSubmissions int64 `json:"queued_submissions"`
}

// Health godoc
// GET /health
// Always 200; status is "degraded" when a configured dependency is down.
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	report := healthReport{
		Status:     "ok",
		Uptime:     formatDuration(time.Since(h.startTime)),
		GoVersion:  runtime.Version(),
		Goroutines: runtime.NumGoroutine(),
		Deps:       map[string]string{"redis": depDisabled, "database": depDisabled},
	}

	if h.rdb != nil {
		report.Deps["redis"] = depUp
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			report.Deps["redis"] = depDown
		} else if n, err := h.rdb.LLen(ctx, config.WorkerKey.SubmissionLogQueue).Result(); err == nil {
			report.QueuedSubmissions = n
		}
	}
	if h.pool != nil {
		report.Deps["database"] = depUp
		if err := h.pool.Ping(ctx); err != nil {
			report.Deps["database"] = depDown
		}
	}
	for _, state := range report.Deps {
		if state == depDown {
			report.Status = "degraded"
		}
	}

	response.Success(c, http.StatusOK, report)
}

func formatDuration(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
