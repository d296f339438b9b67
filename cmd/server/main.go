package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/asts-console/internal/backend"
	"github.com/stemsi/asts-console/internal/cache"
	"github.com/stemsi/asts-console/internal/config"
	"github.com/stemsi/asts-console/internal/database"
	"github.com/stemsi/asts-console/internal/handler"
	"github.com/stemsi/asts-console/internal/logger"
	"github.com/stemsi/asts-console/internal/middleware"
	"github.com/stemsi/asts-console/internal/repository"
	"github.com/stemsi/asts-console/internal/router"
	"github.com/stemsi/asts-console/internal/service"
	"github.com/stemsi/asts-console/internal/validator"
	"github.com/stemsi/asts-console/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("backend", cfg.BackendURL).
		Msg("Starting ASTS console")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL (optional) ──────────────────────────────
	pool, err := database.OpenPostgres(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	if pool != nil {
		defer pool.Close()
	}

	// ─── Connect to Redis (optional) ───────────────────────────────────
	rdb, err := database.OpenRedis(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	var store cache.Store = cache.Nop{}
	var publisher cache.Publisher = cache.Nop{}
	if rdb != nil {
		defer rdb.Close()
		rs := cache.NewRedisStore(rdb)
		store, publisher = rs, rs
	}

	// ─── Submission Log ────────────────────────────────────────────────
	var (
		recorder  service.SubmissionRecorder = service.NewLogRecorder(log)
		logReader service.SubmissionLogReader
		logRepo   *repository.SubmissionLogRepository
	)
	if pool != nil {
		logRepo = repository.NewSubmissionLogRepository(pool)
		logReader = logRepo
		if rdb != nil {
			recorder = service.NewQueueRecorder(rdb, log)
		} else {
			recorder = service.NewStoreRecorder(logRepo, log)
		}
	}

	// ─── Initialize Services ──────────────────────────────────────────
	client := backend.NewClient(cfg.BackendURL, cfg.BackendTimeout, log)
	refService := service.NewReferenceService(client, recorder, log)
	ttService := service.NewTimetableService(client, store, publisher, cfg.TimetableCacheTTL, log)
	sampleService := service.NewSampleTimetableService()
	logService := service.NewSubmissionLogService(logReader)

	// ─── Initialize Handlers ──────────────────────────────────────────
	years := func() []int { return cfg.Years(time.Now()) }
	handlers := &router.Handlers{
		Console:    handler.NewConsoleHandler(refService, ttService, logService, years, log),
		Reference:  handler.NewReferenceHandler(refService),
		Timetable:  handler.NewTimetableHandler(ttService),
		Sample:     handler.NewSampleTimetableHandler(sampleService),
		Submission: handler.NewSubmissionHandler(logService),
		WS:         handler.NewWSHandler(rdb, log, cfg.AllowedOrigins),
		System:     handler.NewSystemHandler(rdb, pool),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())
	var workers sync.WaitGroup

	if logRepo != nil && rdb != nil {
		logWorker := worker.NewSubmissionLogWorker(logRepo, rdb, log)
		workers.Add(1)
		go func() {
			defer workers.Done()
			logWorker.Start(workerCtx)
		}()
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	generateLimiter := middleware.NewRateLimiter(ctx, cfg.GenerateRatePerMinute)
	r := router.SetupRouter(handlers, generateLimiter, cfg, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop the submission log worker once its last batch is written.
	workerCancel()
	workers.Wait()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
