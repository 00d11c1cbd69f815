package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"ev-charge-estimator/internal/api/handlers"
	"ev-charge-estimator/internal/api/middleware"
	"ev-charge-estimator/internal/config"
	"ev-charge-estimator/internal/estimate"
	"ev-charge-estimator/internal/metrics"
)

// Deps is everything the router needs. Gatherer defaults to the global registry.
type Deps struct {
	Config    *config.Config
	Estimator *estimate.Estimator
	Metrics   *metrics.Recorder
	Gatherer  prometheus.Gatherer
	Log       zerolog.Logger
}

func NewRouter(d Deps) *gin.Engine {
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	router := gin.New()

	// Apply middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(d.Config.Server.CORSOrigins))
	router.Use(middleware.Logger(d.Log))
	router.Use(middleware.Metrics(d.Metrics))
	router.Use(middleware.ErrorHandler(d.Log))

	// Initialize handlers
	estimateHandler := handlers.NewEstimateHandler(d.Estimator, d.Config, d.Metrics, d.Log)
	windowHandler := handlers.NewWindowHandler(d.Estimator)
	defaultsHandler := handlers.NewDefaultsHandler(d.Estimator, d.Config)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))

	// API routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/estimate", estimateHandler.Estimate)
		v1.POST("/estimate", estimateHandler.Estimate)
		v1.POST("/estimate/sweep", estimateHandler.Sweep)

		v1.GET("/window", windowHandler.Resolve)
		v1.GET("/defaults", defaultsHandler.Get)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})

	return router
}
