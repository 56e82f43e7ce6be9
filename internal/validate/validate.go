// Package validate checks CLI input formats before any network call is
// made. The retrieval engine itself forwards values verbatim; format
// enforcement lives here so it stays a swappable, surface-level concern.
package validate

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	hexPattern        = regexp.MustCompile(`^[0-9a-fA-F]+$`)
	privateKeyPattern = regexp.MustCompile(`^[0-9a-fA-F-]+$`)
	datePattern       = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`)
)

// logTypes is the App Services log type vocabulary accepted by the logs
// endpoint's type parameter.
var logTypes = map[string]bool{
	"TRIGGER_FAILURE":         true,
	"TRIGGER_ERROR_HANDLER":   true,
	"DB_TRIGGER":              true,
	"AUTH_TRIGGER":            true,
	"SCHEDULED_TRIGGER":       true,
	"FUNCTION":                true,
	"SERVICE_FUNCTION":        true,
	"STREAM_FUNCTION":         true,
	"SERVICE_STREAM_FUNCTION": true,
	"AUTH":                    true,
	"WEBHOOK":                 true,
	"ENDPOINT":                true,
	"PUSH":                    true,
	"API":                     true,
	"API_KEY":                 true,
	"GRAPHQL":                 true,
	"SYNC_CONNECTION_START":   true,
	"SYNC_CONNECTION_END":     true,
	"SYNC_SESSION_START":      true,
	"SYNC_SESSION_END":        true,
	"SYNC_CLIENT_WRITE":       true,
	"SYNC_ERROR":              true,
	"SYNC_OTHER":              true,
	"SCHEMA_ADDITIVE_CHANGE":  true,
	"SCHEMA_GENERATION":       true,
	"SCHEMA_VALIDATION":       true,
	"LOG_FORWARDER":           true,
}

// Hex checks that value is a non-empty hexadecimal string.
func Hex(value string) error {
	if !hexPattern.MatchString(value) {
		return fmt.Errorf("%q is not a valid hexadecimal string", value)
	}
	return nil
}

// NonEmpty checks that value contains something other than whitespace.
func NonEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value must be a non-empty string")
	}
	return nil
}

// PrivateKey checks the dashed-hex shape of an Atlas private API key.
func PrivateKey(value string) error {
	if !privateKeyPattern.MatchString(value) {
		return fmt.Errorf("%q is not a valid private key format", value)
	}
	return nil
}

// Date checks ISO-8601 with millisecond precision and a Z suffix, the only
// timestamp format the logs endpoint accepts.
func Date(value string) error {
	if !datePattern.MatchString(value) {
		return fmt.Errorf("%q is not a valid date, use YYYY-MM-DDTHH:MM:SS.MMMZ", value)
	}
	return nil
}

// LogTypes splits a comma-separated type list and checks each element
// against the known vocabulary.
func LogTypes(value string) ([]string, error) {
	types := strings.Split(value, ",")
	for _, t := range types {
		if !logTypes[t] {
			return nil, fmt.Errorf("%q is not a valid log type", t)
		}
	}
	return types, nil
}
