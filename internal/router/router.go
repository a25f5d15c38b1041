package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "datawarden/docs" // generated swagger docs
	"datawarden/internal/config"
	"datawarden/internal/handler"
	"datawarden/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	checkH *handler.CheckHandler,
	sampleH *handler.SampleHandler,
	healthH *handler.HealthHandler,
	webH *handler.WebHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// UI
	r.GET("/", webH.Index)

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Streaming check routes
	v1.POST("/compliance/stream", checkH.Compliance)
	v1.POST("/classifier/stream", checkH.Classification)

	// Sample extraction
	v1.POST("/samples/extract", sampleH.Extract)

	return r
}
