package movie

// Movie is the single catalog entity. ID is assigned by the service at
// creation time, never by the caller, and doubles as the document store
// partition key. Records are immutable once written: there is no update
// or delete path through this service.
type Movie struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Year         int    `json:"year"`
	VideoURL     string `json:"videoUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
}
