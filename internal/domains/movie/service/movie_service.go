package service

import (
	"context"
	"fmt"
	"time"

	"media-catalog/internal/domains/movie"
	"media-catalog/pkg/cache"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	movieKeyPrefix = "movie:"
	movieListKey   = "movies:all"
	cacheTTL       = 5 * time.Minute
)

type MovieService struct {
	repo  movie.Repository
	cache cache.Cache // nil when caching is disabled
}

func NewMovieService(repo movie.Repository, c cache.Cache) *MovieService {
	return &MovieService{
		repo:  repo,
		cache: c,
	}
}

// Create validates the payload, assigns the id and writes the full
// record. Validation runs before any write, so a request either persists
// completely or not at all.
func (s *MovieService) Create(ctx context.Context, req *movie.CreateMovieReq) (*movie.Movie, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", movie.ErrInvalidPayload, err)
	}

	// Random id, no uniqueness check against the store: collision
	// probability is negligible at UUID v4 scale.
	m := &movie.Movie{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Year:         int(req.Year),
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
	}

	if err := s.repo.Insert(ctx, m); err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	return m, nil
}

func (s *MovieService) GetByID(ctx context.Context, id string) (*movie.Movie, error) {
	key := movieKeyPrefix + id
	if s.cache != nil {
		var cached movie.Movie
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			log.Debug().Err(err).Str("key", key).Msg("cache get failed")
		} else if found {
			return &cached, nil
		}
	}

	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, m, cacheTTL); err != nil {
			log.Debug().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	return m, nil
}

func (s *MovieService) ListAll(ctx context.Context) ([]movie.Movie, error) {
	if s.cache != nil {
		var cached []movie.Movie
		found, err := s.cache.Get(ctx, movieListKey, &cached)
		if err != nil {
			log.Debug().Err(err).Msg("cache get failed")
		} else if found {
			return cached, nil
		}
	}

	movies, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, movieListKey, movies, cacheTTL); err != nil {
			log.Debug().Err(err).Msg("cache set failed")
		}
	}
	return movies, nil
}

// invalidateList drops the cached listing after a write. Cache errors are
// logged and ignored: the store remains the source of truth and entries
// expire on their own.
func (s *MovieService) invalidateList(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, movieListKey); err != nil {
		log.Debug().Err(err).Msg("cache invalidation failed")
	}
}
