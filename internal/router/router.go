package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/asts-console/internal/config"
	"github.com/stemsi/asts-console/internal/handler"
	"github.com/stemsi/asts-console/internal/middleware"
	"github.com/stemsi/asts-console/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Console    *handler.ConsoleHandler
	Reference  *handler.ReferenceHandler
	Timetable  *handler.TimetableHandler
	Sample     *handler.SampleTimetableHandler
	Submission *handler.SubmissionHandler
	WS         *handler.WSHandler
	System     *handler.SystemHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// generateLimiter guards timetable generation.
func SetupRouter(handlers *Handlers, generateLimiter *middleware.RateLimiter, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Request IDs first so the access log can carry them.
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Brotli())

	router.GET("/health", handlers.System.Health)
	router.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/console/dashboard") })

	assets := router.Group("/assets")
	assets.Use(middleware.CacheControl(86400))
	{
		assets.StaticFS("/", handler.ConsoleAssets())
	}

	// ─── 1. Console (server-rendered pages) ────────────────────────────
	console := router.Group("/console")
	console.Use(middleware.NoStore())
	{
		console.GET("", handlers.Console.Index)
		console.GET("/:view", handlers.Console.Show)
		console.POST("/generate-timetable", generateLimiter.Middleware(), handlers.Console.Submit)
		console.POST("/:view", handlers.Console.Submit)
	}

	// ─── 2. Reference data API ─────────────────────────────────────────
	reference := router.Group("/api/v1/reference")
	{
		reference.POST("/course", handlers.Reference.SaveCourse)
		reference.POST("/course-unit-offering", handlers.Reference.SaveCourseUnitOffering)
		reference.POST("/educator", handlers.Reference.SaveEducator)
		reference.POST("/educator-availability", handlers.Reference.SaveEducatorAvailability)
		reference.POST("/educator-unit-offering", handlers.Reference.SaveEducatorUnitOffering)
		reference.POST("/position", handlers.Reference.SavePosition)
		reference.POST("/student", handlers.Reference.SaveStudent)
		reference.POST("/unit", handlers.Reference.SaveUnit)
		reference.POST("/unit-offering", handlers.Reference.SaveUnitOffering)
		reference.POST("/unit-offering-class-details", handlers.Reference.SaveUnitOfferingClassDetails)
		reference.POST("/venue", handlers.Reference.SaveVenue)
		reference.POST("/venue-type", handlers.Reference.SaveVenueType)

		reference.GET("/venue-types", handlers.Reference.ListVenueTypes)
		reference.GET("/position-types", handlers.Reference.ListPositionTypes)
	}

	// ─── 3. Timetable API ──────────────────────────────────────────────
	tt := router.Group("/api/v1/timetable")
	{
		tt.POST("/query", handlers.Timetable.Query)
		tt.POST("/educator", handlers.Timetable.Educator)
		tt.POST("/generate", generateLimiter.Middleware(), handlers.Timetable.Generate)
		tt.GET("/export", handlers.Timetable.Export)
	}

	router.GET("/api/v1/submissions", handlers.Submission.List)

	// ─── 4. Sample week ────────────────────────────────────────────────
	sample := router.Group("/api/timetable")
	{
		sample.GET("", handlers.Sample.List)
		sample.POST("", handlers.Sample.Create)
		sample.PUT("/:id", handlers.Sample.Update)
		sample.DELETE("/:id", handlers.Sample.Delete)
	}

	// ─── 5. WebSocket ──────────────────────────────────────────────────
	ws := router.Group("/ws/v1")
	{
		ws.GET("/timetable/events", handlers.WS.TimetableEvents)
	}

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	})

	return router
}
