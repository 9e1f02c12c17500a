package storage

import (
	"bytes"
	"context"
	"fmt"

	"media-catalog/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOBlobStore implements the asset.BlobStore contract against a MinIO
// (or any S3-compatible) endpoint with one bucket per asset category.
type MinIOBlobStore struct {
	client *minio.Client
}

func NewMinIOBlobStore(cfg config.MinIOConfig) (*MinIOBlobStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &MinIOBlobStore{client: client}, nil
}

// EnsureBucket creates the bucket if it does not already exist. Two
// concurrent uploads may race on creation; losing the race is fine as
// long as the bucket exists afterwards.
func (s *MinIOBlobStore) EnsureBucket(ctx context.Context, bucket string) error {
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		// Another request may have created it in the meantime.
		exists, checkErr := s.client.BucketExists(ctx, bucket)
		if checkErr == nil && exists {
			return nil
		}
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	return nil
}

// Upload writes the object and returns its retrieval URL. PutObject
// overwrites an existing object with the same name: last write wins, no
// versioning.
func (s *MinIOBlobStore) Upload(ctx context.Context, bucket, name string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(
		ctx,
		bucket,
		name,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to upload to minio: %w", err)
	}

	// Format: http://localhost:9000/videos/a.mp4
	url := fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), bucket, name)

	return url, nil
}

// HealthCheck verifies the endpoint is reachable and credentials work.
func (s *MinIOBlobStore) HealthCheck(ctx context.Context) error {
	if _, err := s.client.ListBuckets(ctx); err != nil {
		return fmt.Errorf("minio health check failed: %w", err)
	}
	return nil
}
