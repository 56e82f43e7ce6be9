package history

import "errors"

// Common errors returned by the history store
var (
	ErrStoreClosed = errors.New("history store is closed")
)
