package service

import (
	"context"
	"fmt"

	"media-catalog/internal/domains/asset"
)

type AssetService struct {
	store asset.BlobStore
}

func NewAssetService(store asset.BlobStore) *AssetService {
	return &AssetService{
		store: store,
	}
}

// Upload validates the request, makes sure the destination bucket exists
// and relays the bytes. Storage failures surface to the caller untouched;
// there is no retry at this layer.
func (s *AssetService) Upload(ctx context.Context, category string, f *asset.File) (string, error) {
	if !asset.ValidCategory(category) {
		return "", fmt.Errorf("%w: %q (expected %q or %q)",
			asset.ErrInvalidFileType, category, asset.CategoryVideos, asset.CategoryImages)
	}
	if f == nil || f.Name == "" || len(f.Data) == 0 {
		return "", asset.ErrMissingFile
	}

	if err := s.store.EnsureBucket(ctx, category); err != nil {
		return "", fmt.Errorf("%w: ensure bucket %s: %v", asset.ErrStorageUnavailable, category, err)
	}

	contentType := f.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := s.store.Upload(ctx, category, f.Name, f.Data, contentType)
	if err != nil {
		return "", fmt.Errorf("%w: put %s/%s: %v", asset.ErrStorageUnavailable, category, f.Name, err)
	}
	return url, nil
}
