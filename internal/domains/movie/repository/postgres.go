package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"media-catalog/internal/domains/movie"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Records live as JSONB documents keyed by id, mirroring a document
// collection rather than a normalized relational schema.
const ensureCollection = `
CREATE TABLE IF NOT EXISTS movies (
	id  TEXT PRIMARY KEY,
	doc JSONB NOT NULL
)`

type MovieRepository struct {
	pool *pgxpool.Pool
}

// NewMovieRepository ensures the movies collection exists before handing
// the repository out. CREATE TABLE IF NOT EXISTS makes this idempotent
// and safe to run from several instances at once.
func NewMovieRepository(ctx context.Context, pool *pgxpool.Pool) (*MovieRepository, error) {
	if _, err := pool.Exec(ctx, ensureCollection); err != nil {
		return nil, fmt.Errorf("%w: ensure movies collection: %v", movie.ErrStoreUnavailable, err)
	}
	return &MovieRepository{pool: pool}, nil
}

func (r *MovieRepository) Insert(ctx context.Context, m *movie.Movie) error {
	doc, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode movie %s: %w", m.ID, err)
	}

	// Ids are random UUIDs, so the primary key never contends in
	// practice; a collision surfaces as a storage error rather than a
	// silent overwrite.
	if _, err := r.pool.Exec(ctx,
		`INSERT INTO movies (id, doc) VALUES ($1, $2)`, m.ID, doc); err != nil {
		return fmt.Errorf("%w: insert movie %s: %v", movie.ErrStoreUnavailable, m.ID, err)
	}
	return nil
}

func (r *MovieRepository) GetByID(ctx context.Context, id string) (*movie.Movie, error) {
	var doc []byte
	err := r.pool.QueryRow(ctx,
		`SELECT doc FROM movies WHERE id = $1`, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, movie.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get movie %s: %v", movie.ErrStoreUnavailable, id, err)
	}

	var m movie.Movie
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, fmt.Errorf("decode movie %s: %w", id, err)
	}
	return &m, nil
}

func (r *MovieRepository) ListAll(ctx context.Context) ([]movie.Movie, error) {
	rows, err := r.pool.Query(ctx, `SELECT doc FROM movies`)
	if err != nil {
		return nil, fmt.Errorf("%w: list movies: %v", movie.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	// Empty collection is a state, not an error: return an empty slice.
	movies := make([]movie.Movie, 0)
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("%w: scan movie: %v", movie.ErrStoreUnavailable, err)
		}
		var m movie.Movie
		if err := json.Unmarshal(doc, &m); err != nil {
			return nil, fmt.Errorf("decode movie: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list movies: %v", movie.ErrStoreUnavailable, err)
	}
	return movies, nil
}
