package atlas

import (
	"errors"
	"fmt"
)

// Common errors returned by the Admin API client
var (
	ErrEmptyCredentials = errors.New("public and private API keys must be non-empty")
	ErrNoAccessToken    = errors.New("login response missing access_token")
	ErrMissingLogs      = errors.New("logs page missing logs array")
)

// StatusError is returned when the Admin API responds with a non-2xx status.
// The response body is kept (truncated) for diagnosis.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}
