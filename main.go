// Wikipedia Edit Tracker - prints the recent revision history of a Wikipedia
// article: who edited the page and when, newest edits first.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/olgasafonova/wikipedia-edit-tracker/metrics"
	"github.com/olgasafonova/wikipedia-edit-tracker/tracing"
	"github.com/olgasafonova/wikipedia-edit-tracker/wiki"
)

// Exit codes form the CLI contract; scripts depend on them
const (
	ExitOK              = 0
	ExitMissingArgument = 1
	ExitPageNotFound    = 2
	ExitNetworkError    = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run holds the whole linear flow: read arg, fetch, interpret, present.
// Separated from main so tests can drive it with fake writers and exit codes.
func run(args []string, stdout, stderr io.Writer) int {
	// Logs go to stderr; stdout carries only the revision listing
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		fmt.Fprintln(stderr, "Usage: wikipedia-edit-tracker <article title>")
		fmt.Fprintln(stderr, `Example: wikipedia-edit-tracker "Ball State University"`)
		return ExitMissingArgument
	}
	title := args[0]

	config := wiki.LoadConfig()
	client := wiki.NewClient(config, logger)

	ctx := context.Background()
	shutdown, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		logger.Warn("Tracing setup failed", "error", err)
	} else {
		defer func() { _ = shutdown(ctx) }()
	}

	ctx, span := tracing.StartSpan(ctx, "wiki.page_history")
	defer span.End()

	start := time.Now()
	history, err := client.PageHistory(ctx, title)
	duration := time.Since(start).Seconds()

	if err != nil {
		tracing.RecordError(span, err)
		metrics.RecordLookup(duration, false)

		var notFound *wiki.PageNotFoundError
		if errors.As(err, &notFound) {
			fmt.Fprintf(stderr, "Error: No Wikipedia page found for '%s'\n", title)
			return ExitPageNotFound
		}
		fmt.Fprintf(stderr, "Network error: %v\n", err)
		return ExitNetworkError
	}

	tracing.AddPageAttributes(span, history.Title, history.Count)
	metrics.RecordLookup(duration, true)
	metrics.RevisionsReturned.Observe(float64(history.Count))

	present(stdout, history)
	return ExitOK
}

// present prints the redirect notice, if any, then one line per revision
// in the order received from the API (newest-first, no re-sort).
func present(w io.Writer, history wiki.PageHistory) {
	if history.RedirectedTo != "" {
		fmt.Fprintf(w, "Redirected to %s\n", history.RedirectedTo)
	}
	for _, rev := range history.Revisions {
		fmt.Fprintf(w, "%s — %s\n", wiki.FormatTimestamp(rev.Timestamp), rev.User)
	}
}
