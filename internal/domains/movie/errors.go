package movie

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidPayload covers a missing or malformed field in a create
	// request. Wrapped with the field-level detail from validation.
	ErrInvalidPayload = errors.New("invalid movie payload")

	// ErrNotFound is a normal outcome of a point read, not a defect.
	ErrNotFound = errors.New("movie not found")

	// ErrStoreUnavailable wraps document store failures. They are not
	// retried here; the caller sees a server error.
	ErrStoreUnavailable = errors.New("document store unavailable")
)

// HTTPStatus maps a domain error to the status code of the wire contract.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidPayload):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
