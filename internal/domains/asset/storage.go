package asset

import "context"

// BlobStore is the narrow object-storage contract the uploader consumes.
type BlobStore interface {
	// EnsureBucket creates the bucket if it does not exist. Idempotent
	// and safe to race between concurrent uploads.
	EnsureBucket(ctx context.Context, bucket string) error

	// Upload writes the object, overwriting an existing object with the
	// same name (last write wins, no versioning), and returns its
	// canonical retrieval URL.
	Upload(ctx context.Context, bucket, name string, data []byte, contentType string) (string, error)
}
