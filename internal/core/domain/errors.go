package domain

import (
	"errors"
	"net/http"
)

var (
	ErrNotLoggedIn          = errors.New("not logged in")
	ErrSessionLoading       = errors.New("session is still loading")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrNotFound             = errors.New("not found")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrDuplicateSubmission  = errors.New("duplicate submission")
	ErrDeleteFailed         = errors.New("delete failed")
	ErrInvalidImageType     = errors.New("only image files are allowed")
	ErrEmptyImageURL        = errors.New("image url is empty")
	ErrImageTooLarge        = errors.New("image exceeds the size limit")
	ErrIndexOutOfRange      = errors.New("image index out of range")
	ErrRateUnavailable      = errors.New("exchange rate unavailable")
	ErrInvalidRate          = errors.New("exchange rate must be a positive number")
)

// APIError is a non-2xx answer from the catalog API, or a failed call
// reported to the operator with a public message. Cause, when set, is the
// underlying failure and is never shown.
type APIError struct {
	Status  int
	Message string
	Cause   error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Status)
}

func (e *APIError) Unwrap() error { return e.Cause }

// Is lets callers match upstream statuses against the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

// PublicMessage returns the server-supplied message carried by err, or fallback.
func PublicMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
