package atlas

import (
	"encoding/json"
	"net/url"
	"strings"
)

// Filter holds the query constraints for one retrieval session.
// It is immutable once the session starts; every page request of the
// session carries the same filter values.
type Filter struct {
	StartDate  string   // ISO-8601 with millisecond precision and Z suffix
	EndDate    string   // same format as StartDate
	Types      []string // log type names, sent comma-joined
	UserID     string
	ErrorsOnly bool
}

// query renders the filter as URL query parameters. Unset dimensions are
// omitted entirely rather than sent empty.
func (f Filter) query() url.Values {
	v := url.Values{}
	if f.StartDate != "" {
		v.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		v.Set("end_date", f.EndDate)
	}
	if len(f.Types) > 0 {
		v.Set("type", strings.Join(f.Types, ","))
	}
	if f.UserID != "" {
		v.Set("user_id", f.UserID)
	}
	if f.ErrorsOnly {
		v.Set("errors_only", "true")
	}
	return v
}

// page is one unit of the server's pagination protocol: an ordered batch of
// entries plus an optional continuation cursor. Logs is a pointer so a
// structurally missing array can be told apart from an empty one.
type page struct {
	Logs        *[]json.RawMessage `json:"logs"`
	NextEndDate string             `json:"nextEndDate"`
	NextSkip    *int               `json:"nextSkip"`
}

// cursor is the server-issued continuation state carried between fetches.
// skip never triggers continuation on its own; it rides along with endDate.
type cursor struct {
	endDate string
	skip    *int
}
