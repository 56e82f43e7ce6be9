package atlas

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
)

// LogPager walks the cursor-paginated logs endpoint for one application
// and accumulates every entry exactly once, in server-delivered order.
//
// A session is strictly sequential: one in-flight request at a time, each
// page's cursor taken verbatim from the previous response. Absence of
// nextEndDate in a page — any page, the first included — is the terminal
// signal. Any transport or status failure aborts the whole session and the
// partial accumulation is discarded; page fetches are idempotent reads, so
// re-running a failed session is always safe.
type LogPager struct {
	endpoint   string
	token      string
	filter     Filter
	httpClient *http.Client
	logger     *slog.Logger
}

// NewLogPager creates a retrieval session. An empty baseURL selects
// DefaultBaseURL and a nil logger falls back to slog.Default(). The filter
// is fixed for the lifetime of the session.
func NewLogPager(baseURL, projectID, appID, accessToken string, filter Filter, logger *slog.Logger) *LogPager {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return newLogPager(baseURL, projectID, appID, accessToken, filter, &http.Client{Timeout: defaultTimeout}, logger)
}

func newLogPager(baseURL, projectID, appID, accessToken string, filter Filter, httpClient *http.Client, logger *slog.Logger) *LogPager {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPager{
		endpoint:   fmt.Sprintf("%s/groups/%s/apps/%s/logs", baseURL, url.PathEscape(projectID), url.PathEscape(appID)),
		token:      accessToken,
		filter:     filter,
		httpClient: httpClient,
		logger:     logger,
	}
}

// FetchAll drives the pagination protocol to exhaustion and returns the
// concatenation of every page's entries. Entries are opaque: they are
// transported, never interpreted. On any error the accumulated result is
// discarded and only the error is returned.
func (p *LogPager) FetchAll(ctx context.Context) ([]json.RawMessage, error) {
	var (
		entries []json.RawMessage
		cur     *cursor
	)

	p.logger.Info("starting log retrieval", "endpoint", p.endpoint)

	for pageNum := 1; ; pageNum++ {
		pg, err := p.fetchPage(ctx, cur)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", pageNum, err)
		}
		if pg.Logs == nil {
			return nil, fmt.Errorf("page %d: %w", pageNum, ErrMissingLogs)
		}

		entries = append(entries, *pg.Logs...)
		p.logger.Debug("fetched page",
			"page", pageNum,
			"entries", len(*pg.Logs),
			"next_end_date", pg.NextEndDate,
		)

		if pg.NextEndDate == "" {
			p.logger.Info("log retrieval complete", "pages", pageNum, "entries", len(entries))
			return entries, nil
		}
		cur = &cursor{endDate: pg.NextEndDate, skip: pg.NextSkip}
	}
}

// fetchPage issues one GET against the logs endpoint. The session filter is
// merged with the cursor fields; on the first fetch the cursor is nil and
// end_date/skip come from the filter alone.
func (p *LogPager) fetchPage(ctx context.Context, cur *cursor) (*page, error) {
	q := p.filter.query()
	if cur != nil {
		q.Set("end_date", cur.endDate)
		if cur.skip != nil {
			q.Set("skip", strconv.Itoa(*cur.skip))
		}
	}

	u := p.endpoint
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create logs request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.token)
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("logs request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newStatusError(resp)
	}

	var pg page
	if err := json.NewDecoder(resp.Body).Decode(&pg); err != nil {
		return nil, fmt.Errorf("decode logs page: %w", err)
	}
	return &pg, nil
}
