package asset

import "context"

// Service is the business surface behind the /upload handler.
type Service interface {
	// Upload stores the file under the category's bucket, overwriting
	// any object with the same name, and returns the retrieval URL.
	Upload(ctx context.Context, category string, f *File) (string, error)
}
