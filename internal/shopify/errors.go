package shopify

import (
	"errors"
	"fmt"
	"strings"
)

// Failure taxonomy for one Admin API call. Every error is terminal for
// the current request; callers never retry.
var (
	// ErrUnauthorized covers 401/403: bad token or missing read_orders scope.
	ErrUnauthorized = errors.New("Unauthorized: check token and scopes")

	// ErrRateLimited covers 429 from the Admin API cost throttle.
	ErrRateLimited = errors.New("Rate limited: slow down")
)

// HTTPError is any non-2xx status not covered by the sentinels above.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d", e.Status)
}

// GraphQLError carries the messages from a non-empty `errors` array in
// the response payload. These arrive even on 2xx statuses.
type GraphQLError struct {
	Messages []string
}

func (e *GraphQLError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// NetworkError wraps transport-level failures: timeouts, connection
// resets, DNS errors, undecodable bodies.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "Network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }
