package movie

import "context"

// Repository is the document store contract: a single collection of flat
// records keyed by id. Implementations ensure the collection exists at
// construction time and treat an empty collection as a valid state.
type Repository interface {
	Insert(ctx context.Context, m *Movie) error
	GetByID(ctx context.Context, id string) (*Movie, error)
	ListAll(ctx context.Context) ([]Movie, error)
}
