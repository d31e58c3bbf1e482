package identity

import (
	"errors"
	"net/http"
)

// Domain errors for identity operations.
var (
	ErrUnauthorized    = errors.New("missing or invalid bearer token")
	ErrUnavailable     = errors.New("identity provider unreachable")
	ErrInvalidResponse = errors.New("identity provider returned an unusable token payload")
)

// MapHTTPStatus maps identity errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrUnavailable) {
		return http.StatusServiceUnavailable
	}
	if errors.Is(err, ErrInvalidResponse) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
