package container

import (
	"context"
	"fmt"
	"time"

	"media-catalog/internal/config"
	infraCache "media-catalog/internal/infrastructure/cache"
	"media-catalog/internal/infrastructure/database"
	"media-catalog/internal/infrastructure/storage"
	"media-catalog/pkg/cache"

	"media-catalog/internal/domains/asset"
	assetHandler "media-catalog/internal/domains/asset/handler"
	assetService "media-catalog/internal/domains/asset/service"
	"media-catalog/internal/domains/movie"
	movieHandler "media-catalog/internal/domains/movie/handler"
	movieRepo "media-catalog/internal/domains/movie/repository"
	movieService "media-catalog/internal/domains/movie/service"

	"github.com/rs/zerolog/log"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup; handlers stay stateless across
// requests.
type Container struct {
	// Infrastructure
	Config    *config.Config
	DB        *database.PostgresDB
	Cache     cache.Cache // nil when CACHE_ENABLED=false or Redis is down
	BlobStore *storage.MinIOBlobStore

	redisCache *infraCache.RedisCache

	// Domain layers
	MovieRepo    movie.Repository
	MovieService movie.Service
	AssetService asset.Service

	// HTTP handlers
	MovieHandler *movieHandler.MovieHandler
	AssetHandler *assetHandler.AssetHandler
}

// NewContainer initializes the dependency graph in order: config,
// infrastructure, repositories, services, handlers. A failure in any
// required dependency aborts startup; the cache is the one optional
// piece.
func NewContainer() (*Container, error) {
	c := &Container{}

	// 1. Configuration
	c.Config = config.Load()
	log.Info().Str("environment", c.Config.App.Environment).Msg("Config loaded")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// 2. Document store (required)
	c.DB = database.NewPostgresDB(config.LoadDatabaseConfig())
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 3. Blob store (required)
	blobStore, err := storage.NewMinIOBlobStore(c.Config.MinIO)
	if err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to create blob store: %w", err)
	}
	c.BlobStore = blobStore

	// 4. Cache (optional). A missing Redis only disables caching; every
	// read then goes straight to the document store.
	if c.Config.Redis.Enabled {
		rc := infraCache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
		if err := rc.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, caching disabled")
			_ = rc.Close()
		} else {
			c.redisCache = rc
			c.Cache = rc
			log.Info().Str("host", c.Config.Redis.Host).Msg("Redis connected")
		}
	}

	// 5. Repositories
	repo, err := movieRepo.NewMovieRepository(ctx, c.DB.Pool)
	if err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to initialize movie repository: %w", err)
	}
	c.MovieRepo = repo

	// 6. Services
	c.MovieService = movieService.NewMovieService(c.MovieRepo, c.Cache)
	c.AssetService = assetService.NewAssetService(c.BlobStore)

	// 7. Handlers
	c.MovieHandler = movieHandler.NewMovieHandler(c.MovieService)
	c.AssetHandler = assetHandler.NewAssetHandler(c.AssetService, c.Config.Upload.MaxBytes)

	return c, nil
}

// Cleanup releases infrastructure resources in reverse order.
func (c *Container) Cleanup() {
	if c.redisCache != nil {
		if err := c.redisCache.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Redis client")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
