package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/paseo-app/paseo-cli/internal/domain"
)

// TransportError marks a call that never produced an HTTP status: connection
// refused, DNS failure, timeout. Always treated as transient by callers.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("connection failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError marks a reachable server rejecting the call with a non-2xx
// status. Error renders the user-facing message for the mapped codes.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	switch e.Status {
	case http.StatusUnauthorized:
		return "session expired, please log in again"
	case http.StatusForbidden:
		return "you do not have permission for this action"
	case http.StatusNotFound:
		return "not found"
	case http.StatusUnprocessableEntity:
		return "the server rejected the submitted data"
	case http.StatusInternalServerError:
		return "server error, try again later"
	default:
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
}

// Is lets callers match an authentication failure with
// errors.Is(err, domain.ErrSessionExpired) without importing this package's
// types.
func (e *StatusError) Is(target error) bool {
	return e.Status == http.StatusUnauthorized && target == domain.ErrSessionExpired
}

func IsUnauthorized(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Status == http.StatusUnauthorized
}

func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}
