// Command logfetch exports the complete log history of an Atlas App
// Services application to a local JSON artifact.
//
// Usage:
//
//	logfetch [flags] <project_id> <app_id> <public_api_key> <private_api_key>
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/atlasops/logfetch/internal/atlas"
	"github.com/atlasops/logfetch/internal/config"
	"github.com/atlasops/logfetch/internal/export"
	"github.com/atlasops/logfetch/internal/history"
	"github.com/atlasops/logfetch/internal/validate"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		startDate   = flag.String("start-date", "", "start date, ISO-8601 with milliseconds (YYYY-MM-DDTHH:MM:SS.MMMZ)")
		endDate     = flag.String("end-date", "", "end date, same format as -start-date")
		typeList    = flag.String("type", "", "comma-separated list of log types to fetch")
		userID      = flag.String("user-id", "", "return only logs for the given user ID (hex)")
		errorsOnly  = flag.Bool("errors-only", false, "return only error log messages")
		out         = flag.String("out", "", "artifact path (default from config, logs.json)")
		compress    = flag.Bool("compress", false, "gzip the artifact")
		noHistory   = flag.Bool("no-history", false, "do not record this run in the local history database")
		showHistory = flag.Bool("show-history", false, "print recent export runs and exit")
		verbose     = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Usage = usage
	flag.Parse()

	cfg := config.Load()
	logger := setupLogger(*verbose)

	if *showHistory {
		return printHistory(cfg)
	}

	args := flag.Args()
	if len(args) != 4 {
		usage()
		return fmt.Errorf("expected 4 arguments (project_id app_id public_api_key private_api_key), got %d", len(args))
	}
	projectID, appID, publicKey, privateKey := args[0], args[1], args[2], args[3]

	// Validate all inputs before touching the network.
	if err := validate.Hex(projectID); err != nil {
		return fmt.Errorf("project_id: %w", err)
	}
	if err := validate.Hex(appID); err != nil {
		return fmt.Errorf("app_id: %w", err)
	}
	if err := validate.NonEmpty(publicKey); err != nil {
		return fmt.Errorf("public_api_key: %w", err)
	}
	if err := validate.PrivateKey(privateKey); err != nil {
		return fmt.Errorf("private_api_key: %w", err)
	}

	filter := atlas.Filter{
		StartDate:  *startDate,
		EndDate:    *endDate,
		UserID:     *userID,
		ErrorsOnly: *errorsOnly,
	}
	if *startDate != "" {
		if err := validate.Date(*startDate); err != nil {
			return fmt.Errorf("start-date: %w", err)
		}
	}
	if *endDate != "" {
		if err := validate.Date(*endDate); err != nil {
			return fmt.Errorf("end-date: %w", err)
		}
	}
	if *userID != "" {
		if err := validate.Hex(*userID); err != nil {
			return fmt.Errorf("user-id: %w", err)
		}
	}
	if *typeList != "" {
		types, err := validate.LogTypes(*typeList)
		if err != nil {
			return fmt.Errorf("type: %w", err)
		}
		filter.Types = types
	}

	output := *out
	if output == "" {
		output = cfg.Output
	}
	if *compress && !strings.HasSuffix(output, ".gz") {
		output += ".gz"
	}

	var store *history.Store
	if cfg.History && !*noHistory {
		if err := config.EnsureDataDir(); err != nil {
			return fmt.Errorf("prepare data directory: %w", err)
		}
		s, err := history.New(cfg.HistoryDB)
		if err != nil {
			// History is an accessory; a broken database must not block
			// the export itself.
			logger.Warn("run history unavailable", "error", err)
		} else {
			store = s
			defer store.Close()
		}
	}

	client := atlas.NewClient(cfg.BaseURL, logger)
	client.HTTPClient.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second

	return runExport(context.Background(), client, projectID, appID, publicKey, privateKey, filter, output, *compress, logger, store)
}

// runExport performs one export run end to end and records its outcome.
func runExport(ctx context.Context, client *atlas.Client, projectID, appID, publicKey, privateKey string, filter atlas.Filter, output string, compress bool, logger *slog.Logger, store *history.Store) error {
	started := time.Now()

	record := func(entryCount int, status, errMsg string) {
		if store == nil {
			return
		}
		run := &history.Run{
			ProjectID:      projectID,
			AppID:          appID,
			KeyFingerprint: history.Fingerprint(publicKey),
			FilterSummary:  filterSummary(filter),
			EntryCount:     entryCount,
			Status:         status,
			ErrorMessage:   errMsg,
			OutputPath:     output,
			DurationMs:     time.Since(started).Milliseconds(),
		}
		if err := store.Record(run); err != nil {
			logger.Warn("failed to record run", "error", err)
		}
	}

	logger.Info("starting log export", "project_id", projectID, "app_id", appID)

	token, err := client.Authenticate(ctx, publicKey, privateKey)
	if err != nil {
		err = fmt.Errorf("authenticate: %w", err)
		record(0, history.StatusError, err.Error())
		return err
	}

	entries, err := client.LogPager(projectID, appID, token, filter).FetchAll(ctx)
	if err != nil {
		err = fmt.Errorf("fetch logs: %w", err)
		record(0, history.StatusError, err.Error())
		return err
	}

	if compress {
		err = export.WriteJSONGz(output, entries)
	} else {
		err = export.WriteJSON(output, entries)
	}
	if err != nil {
		err = fmt.Errorf("write artifact: %w", err)
		record(0, history.StatusError, err.Error())
		return err
	}

	record(len(entries), history.StatusSuccess, "")
	logger.Info("export complete", "entries", len(entries), "output", output)
	return nil
}

// filterSummary renders the active filter dimensions for the run record.
func filterSummary(f atlas.Filter) string {
	var parts []string
	if f.StartDate != "" {
		parts = append(parts, "start_date="+f.StartDate)
	}
	if f.EndDate != "" {
		parts = append(parts, "end_date="+f.EndDate)
	}
	if len(f.Types) > 0 {
		parts = append(parts, "type="+strings.Join(f.Types, ","))
	}
	if f.UserID != "" {
		parts = append(parts, "user_id="+f.UserID)
	}
	if f.ErrorsOnly {
		parts = append(parts, "errors_only")
	}
	return strings.Join(parts, " ")
}

func printHistory(cfg *config.Config) error {
	if err := config.EnsureDataDir(); err != nil {
		return fmt.Errorf("prepare data directory: %w", err)
	}
	store, err := history.New(cfg.HistoryDB)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	runs, err := store.Recent(20)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("no export runs recorded")
		return nil
	}

	for _, r := range runs {
		line := fmt.Sprintf("%s  %-7s  app=%s  entries=%d  %dms",
			r.CreatedAt.Format(time.RFC3339), r.Status, r.AppID, r.EntryCount, r.DurationMs)
		if r.ErrorMessage != "" {
			line += "  " + r.ErrorMessage
		}
		fmt.Println(line)
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: logfetch [flags] <project_id> <app_id> <public_api_key> <private_api_key>

Exports the complete log history of an Atlas App Services application
to a local JSON artifact.

Flags:
`)
	flag.PrintDefaults()
}
