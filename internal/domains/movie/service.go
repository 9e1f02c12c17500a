package movie

import "context"

// Service is the business surface behind the /movies handlers.
type Service interface {
	// Create validates the payload, assigns a fresh id and persists the
	// full record. All validation happens before the write.
	Create(ctx context.Context, req *CreateMovieReq) (*Movie, error)

	// GetByID is a point read. Returns ErrNotFound when no record exists.
	GetByID(ctx context.Context, id string) (*Movie, error)

	// ListAll returns every record in store-native order. An empty
	// catalog yields an empty slice, not an error.
	ListAll(ctx context.Context) ([]Movie, error)
}
