package asset

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidFileType: fileType is not one of the known categories.
	ErrInvalidFileType = errors.New("invalid file type")

	// ErrMissingFile: no file part, or the file is empty.
	ErrMissingFile = errors.New("missing or empty file")

	// ErrStorageUnavailable wraps blob store failures. Not retried here.
	ErrStorageUnavailable = errors.New("blob storage unavailable")
)

// HTTPStatus maps a domain error to the status code of the wire contract.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidFileType), errors.Is(err, ErrMissingFile):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
