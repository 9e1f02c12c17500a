package asset

// Categories the uploader accepts. Each category maps to its own bucket
// in the blob store; anything else is rejected before any storage call.
const (
	CategoryVideos = "videos"
	CategoryImages = "images"
)

func ValidCategory(category string) bool {
	return category == CategoryVideos || category == CategoryImages
}

// File is an uploaded payload: a declared name plus opaque bytes. The
// content is relayed to the blob store and never inspected.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}
