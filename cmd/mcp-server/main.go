// Wikipedia Edit Tracker MCP Server - exposes Wikipedia revision history
// lookups as a Model Context Protocol tool over stdio.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/olgasafonova/wikipedia-edit-tracker/metrics"
	"github.com/olgasafonova/wikipedia-edit-tracker/tracing"
	"github.com/olgasafonova/wikipedia-edit-tracker/wiki"
)

const (
	ServerName    = "wikipedia-edit-tracker"
	ServerVersion = "1.0.0"
)

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	config := wiki.LoadConfig()
	client := wiki.NewClient(config, logger)

	ctx := context.Background()
	shutdown, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		logger.Warn("Tracing setup failed", "error", err)
	} else {
		defer func() { _ = shutdown(ctx) }()
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger: logger,
		Instructions: `Wikipedia Edit Tracker provides revision history for Wikipedia articles.

Available tools:
- wikipedia_get_revisions: Get the most recent edits of an article (timestamp and editor), newest-first. Redirects are resolved automatically.

Configure via environment variables:
- WIKIPEDIA_URL: MediaWiki action API endpoint (default: English Wikipedia)
- WIKIPEDIA_TIMEOUT: Request timeout (default: 10s)
- WIKIPEDIA_REVISION_LIMIT: Default number of revisions (default: 30)`,
	})

	registerTools(server, client, logger)

	logger.Info("Starting Wikipedia Edit Tracker MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"api_url", config.BaseURL,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func registerTools(server *mcp.Server, client *wiki.Client, logger *slog.Logger) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "wikipedia_get_revisions",
		Description: "Get the recent revision history of a Wikipedia article. Returns up to 30 edits (timestamp and editor) newest-first, following redirects.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Get Article Revisions",
			ReadOnlyHint:  true,
			OpenWorldHint: ptr(true),
		},
	}, func(ctx context.Context, req *mcp.CallToolRequest, args wiki.PageHistoryArgs) (*mcp.CallToolResult, wiki.PageHistory, error) {
		const toolName = "wikipedia_get_revisions"
		defer recoverPanic(logger, toolName)

		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+toolName)
		defer span.End()
		span.SetAttributes(
			attribute.String("mcp.tool.name", toolName),
			attribute.Bool("mcp.tool.readonly", true),
		)

		metrics.RequestInFlight.WithLabelValues(toolName).Inc()
		defer metrics.RequestInFlight.WithLabelValues(toolName).Dec()

		start := time.Now()
		result, err := client.PageHistoryWithArgs(ctx, args)
		duration := time.Since(start).Seconds()

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordLookup(duration, false)
			return nil, wiki.PageHistory{}, fmt.Errorf("%s failed: %w", toolName, err)
		}

		span.SetStatus(codes.Ok, "")
		tracing.AddPageAttributes(span, result.Title, result.Count)
		metrics.RecordLookup(duration, true)
		metrics.RevisionsReturned.Observe(float64(result.Count))

		logger.Info("Tool executed",
			"tool", toolName,
			"title", args.Title,
			"revisions", result.Count,
			"redirected_to", result.RedirectedTo,
		)
		return nil, result, nil
	})
}

// recoverPanic keeps a single bad response from taking down the server
func recoverPanic(logger *slog.Logger, toolName string) {
	if r := recover(); r != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		logger.Error("Panic recovered",
			"tool", toolName,
			"panic", r,
			"stack", string(debug.Stack()))
	}
}

func ptr[T any](v T) *T {
	return &v
}
