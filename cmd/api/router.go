package main

import (
	"context"
	"net/http"
	"time"

	"media-catalog/internal/shared/middleware"
	"media-catalog/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.MaxMultipartMemory = c.Config.Upload.MaxBytes

	// Upload an asset, then create the record referencing its URL.
	// Composition between the two is the caller's responsibility.
	router.POST("/upload", c.AssetHandler.Upload)

	movies := router.Group("/movies")
	{
		movies.POST("", c.MovieHandler.Create)
		movies.GET("", c.MovieHandler.List)
		movies.GET("/:id", c.MovieHandler.GetByID)
	}

	router.GET("/health", healthCheckHandler(c))

	return router
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		{
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = "error: " + err.Error()
				health["status"] = "degraded"
			}
		}

		blobStatus := "ok"
		{
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := appCtx.BlobStore.HealthCheck(ctx); err != nil {
				blobStatus = "error: " + err.Error()
				health["status"] = "degraded"
			}
		}

		cacheStatus := "disabled"
		if appCtx.Cache != nil {
			cacheStatus = "ok"
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := appCtx.Cache.Ping(ctx); err != nil {
				// Cache trouble degrades reads to the store, it does not
				// take the service down.
				cacheStatus = "error: " + err.Error()
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"storage":  blobStatus,
			"cache":    cacheStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" || blobStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
