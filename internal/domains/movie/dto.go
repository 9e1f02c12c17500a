package movie

import (
	"fmt"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Year accepts both a JSON number and a numeric string ("2024" and 2024
// are equivalent on the wire).
type Year int

func (y *Year) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*y = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("year must be numeric, got %s", string(data))
	}
	*y = Year(n)
	return nil
}

// CreateMovieReq carries the caller-supplied part of a record. The asset
// URLs are expected to come from prior /upload calls.
type CreateMovieReq struct {
	Title        string `json:"title"`
	Year         Year   `json:"year"`
	VideoURL     string `json:"videoUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// Validate is the single parse-and-validate gate. A request either comes
// out as a complete record-in-progress or as a field-level error; no
// presence checks are scattered further down.
func (r CreateMovieReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
		),
		validation.Field(&r.Year,
			validation.Required.Error("year is required"),
		),
		validation.Field(&r.VideoURL,
			validation.Required.Error("videoUrl is required"),
			is.URL.Error("videoUrl must be a valid URL"),
		),
		validation.Field(&r.ThumbnailURL,
			validation.Required.Error("thumbnailUrl is required"),
			is.URL.Error("thumbnailUrl must be a valid URL"),
		),
	)
}
