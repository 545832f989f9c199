// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nplsapp/npls-backend/internal/config"
	"github.com/nplsapp/npls-backend/internal/forms"
	"github.com/nplsapp/npls-backend/internal/handlers"
	"github.com/nplsapp/npls-backend/internal/middleware"
	"github.com/nplsapp/npls-backend/internal/services"
	"github.com/nplsapp/npls-backend/internal/storage"
)

func Initialize(store *storage.Store, cfg *config.Config) *gin.Engine {
	// Initialize stores; each loads from cache or seed on startup
	ballService := services.NewBallService(store, cfg.Seed.Dir)
	coreService := services.NewCoreService(store, cfg.Seed.Dir)
	referenceService := services.NewReferenceDataService(
		store, cfg.Seed.Dir, time.Duration(cfg.Reference.CacheTTLHours)*time.Hour)

	ballService.Init()
	coreService.Init()
	referenceService.Load()

	binder := forms.NewBinder(coreService)

	// Initialize handlers
	ballHandler := handlers.NewBallHandler(ballService, binder)
	coreHandler := handlers.NewCoreHandler(coreService)
	referenceHandler := handlers.NewReferenceHandler(referenceService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		balls := v1.Group("/balls")
		{
			balls.GET("", ballHandler.GetBalls)
			balls.GET("/stats", ballHandler.GetStats)
			balls.POST("", ballHandler.CreateBall)
			balls.POST("/refresh", ballHandler.Refresh)
			balls.GET("/:id", ballHandler.GetBall)
			balls.PUT("/:id", ballHandler.UpdateBall)
			balls.DELETE("/:id", ballHandler.DeleteBall)
			balls.POST("/:id/duplicate", ballHandler.DuplicateBall)
			balls.GET("/:id/spec-sheet", ballHandler.ExportSpecSheet)
		}

		cores := v1.Group("/cores")
		{
			cores.GET("", coreHandler.GetCores)
			cores.POST("", coreHandler.CreateCore)
			cores.GET("/:id", coreHandler.GetCore)
			cores.PUT("/:id", coreHandler.UpdateCore)
			cores.DELETE("/:id", coreHandler.DeleteCore)
		}

		reference := v1.Group("/reference")
		{
			reference.GET("", referenceHandler.GetReferenceData)
			reference.POST("/coverstocks", referenceHandler.AddCoverstock)
			reference.POST("/finishes", referenceHandler.AddFinish)
			reference.POST("/weight-blocks", referenceHandler.AddWeightBlock)
			reference.POST("/refresh", referenceHandler.Refresh)
			reference.DELETE("/cache", referenceHandler.ClearCache)
		}
	}

	return r
}
