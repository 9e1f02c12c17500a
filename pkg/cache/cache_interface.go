package cache

import (
	"context"
	"time"
)

// Cache is the contract the read paths consume. It allows swapping the
// implementation (Redis, in-memory) and disabling caching entirely.
type Cache interface {
	// Get fetches and unmarshals into dest. found=false means a miss;
	// dest is left untouched on a miss.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}
