package common

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound       = errors.New("requested resource not found")
	ErrBadRequest     = errors.New("bad request")
	ErrInternalServer = errors.New("internal server error")

	// ErrEmptyInput marks a search with a blank username; it is silently
	// ignored rather than surfaced as an error banner.
	ErrEmptyInput = errors.New("empty username")
	// ErrDuplicateUser marks a search for a username that is already tracked.
	ErrDuplicateUser = errors.New("user already tracked")
	// ErrFetchFailed collapses transport errors, bad statuses, malformed
	// responses and unknown usernames into one failure kind. Callers never
	// distinguish the causes.
	ErrFetchFailed = errors.New("failed to fetch user data")
	// ErrSearchInFlight marks a search attempted while another is loading.
	ErrSearchInFlight = errors.New("search already in progress")
)

// HTTPStatusFromError maps domain errors to HTTP status codes.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrEmptyInput) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrDuplicateUser) || errors.Is(err, ErrSearchInFlight) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrFetchFailed) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// Errorf creates a new error with formatting, useful for wrapping.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
