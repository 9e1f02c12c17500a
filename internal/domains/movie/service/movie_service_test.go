package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"media-catalog/internal/domains/asset"
	assetService "media-catalog/internal/domains/asset/service"
	"media-catalog/internal/domains/movie"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory document collection.
type fakeRepo struct {
	mu     sync.Mutex
	movies map[string]movie.Movie
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{movies: make(map[string]movie.Movie)}
}

func (r *fakeRepo) Insert(_ context.Context, m *movie.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.movies[m.ID]; ok {
		return fmt.Errorf("%w: duplicate id %s", movie.ErrStoreUnavailable, m.ID)
	}
	r.movies[m.ID] = *m
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*movie.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.movies[id]
	if !ok {
		return nil, movie.ErrNotFound
	}
	return &m, nil
}

func (r *fakeRepo) ListAll(_ context.Context) ([]movie.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]movie.Movie, 0, len(r.movies))
	for _, m := range r.movies {
		out = append(out, m)
	}
	return out, nil
}

// fakeCache stores JSON blobs in memory and counts hits.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	hits    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(data, dest)
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = data
	return nil
}

func (c *fakeCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

func (c *fakeCache) Ping(context.Context) error { return nil }

func validReq() *movie.CreateMovieReq {
	return &movie.CreateMovieReq{
		Title:        "X",
		Year:         2024,
		VideoURL:     "http://localhost:9000/videos/a.mp4",
		ThumbnailURL: "http://localhost:9000/images/a.png",
	}
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	svc := NewMovieService(newFakeRepo(), nil)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		m, err := svc.Create(context.Background(), validReq())
		require.NoError(t, err)
		require.NotEmpty(t, m.ID)
		assert.False(t, seen[m.ID], "id %s assigned twice", m.ID)
		seen[m.ID] = true
	}
}

func TestCreateRejectsMissingFieldsWithoutWriting(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *movie.CreateMovieReq)
	}{
		{"missing title", func(r *movie.CreateMovieReq) { r.Title = "" }},
		{"missing year", func(r *movie.CreateMovieReq) { r.Year = 0 }},
		{"missing videoUrl", func(r *movie.CreateMovieReq) { r.VideoURL = "" }},
		{"missing thumbnailUrl", func(r *movie.CreateMovieReq) { r.ThumbnailURL = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := NewMovieService(repo, nil)

			req := validReq()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			require.ErrorIs(t, err, movie.ErrInvalidPayload)

			// No partial write happened.
			movies, err := svc.ListAll(context.Background())
			require.NoError(t, err)
			assert.Empty(t, movies)
		})
	}
}

func TestCreateGetRoundTrip(t *testing.T) {
	svc := NewMovieService(newFakeRepo(), nil)

	created, err := svc.Create(context.Background(), validReq())
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewMovieService(newFakeRepo(), nil)

	_, err := svc.GetByID(context.Background(), "never-created")
	assert.ErrorIs(t, err, movie.ErrNotFound)
}

func TestListAllReturnsExactlyCreatedRecords(t *testing.T) {
	svc := NewMovieService(newFakeRepo(), nil)

	want := make(map[string]movie.Movie)
	for i := 0; i < 5; i++ {
		req := validReq()
		req.Title = fmt.Sprintf("Movie %d", i)
		m, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
		want[m.ID] = *m
	}

	movies, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, len(want))
	for _, m := range movies {
		assert.Equal(t, want[m.ID], m)
	}
}

func TestListAllEmptyCatalogIsNotAnError(t *testing.T) {
	svc := NewMovieService(newFakeRepo(), nil)

	movies, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestCachedReadsAndInvalidation(t *testing.T) {
	repo := newFakeRepo()
	c := newFakeCache()
	svc := NewMovieService(repo, c)

	m, err := svc.Create(context.Background(), validReq())
	require.NoError(t, err)

	// First read fills the cache, second is served from it.
	_, err = svc.GetByID(context.Background(), m.ID)
	require.NoError(t, err)
	got, err := svc.GetByID(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, m, got)
	assert.Equal(t, 1, c.hits)

	// A create drops the cached listing so the next list sees it.
	_, err = svc.ListAll(context.Background())
	require.NoError(t, err)
	m2, err := svc.Create(context.Background(), validReq())
	require.NoError(t, err)

	movies, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	ids := make([]string, 0, len(movies))
	for _, mm := range movies {
		ids = append(ids, mm.ID)
	}
	assert.Contains(t, ids, m2.ID)
}

// fakeBlobStore backs the end-to-end scenario below.
type fakeBlobStore struct {
	mu      sync.Mutex
	buckets map[string]map[string][]byte
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{buckets: make(map[string]map[string][]byte)}
}

func (s *fakeBlobStore) EnsureBucket(_ context.Context, bucket string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.buckets[bucket]; !ok {
		s.buckets[bucket] = make(map[string][]byte)
	}
	return nil
}

func (s *fakeBlobStore) Upload(_ context.Context, bucket, name string, data []byte, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buckets[bucket][name] = data
	return fmt.Sprintf("http://localhost:9000/%s/%s", bucket, name), nil
}

func TestUploadCreateGetListScenario(t *testing.T) {
	ctx := context.Background()
	uploader := assetService.NewAssetService(newFakeBlobStore())
	movies := NewMovieService(newFakeRepo(), nil)

	videoURL, err := uploader.Upload(ctx, asset.CategoryVideos, &asset.File{
		Name: "a.mp4",
		Data: []byte("bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/videos/a.mp4", videoURL)

	thumbURL, err := uploader.Upload(ctx, asset.CategoryImages, &asset.File{
		Name: "a.png",
		Data: []byte("bytes"),
	})
	require.NoError(t, err)

	created, err := movies.Create(ctx, &movie.CreateMovieReq{
		Title:        "X",
		Year:         2024,
		VideoURL:     videoURL,
		ThumbnailURL: thumbURL,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := movies.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	all, err := movies.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, *created, all[0])
}
