// Package similarity holds the CLI action for the content similarity and
// cannibalization analysis command.
package similarity

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/llm-readability/internal/common"
	"github.com/dtnitsch/llm-readability/models"
	"github.com/dtnitsch/llm-readability/pkg/contentfetch"
	"github.com/dtnitsch/llm-readability/pkg/embeddings"
	similaritypkg "github.com/dtnitsch/llm-readability/pkg/similarity"
	"github.com/dtnitsch/llm-readability/pkg/store"
)

// Stats provides summary statistics for the run.
type Stats struct {
	TotalURLs        int     `json:"total_urls" yaml:"total_urls"`
	PagesAnalyzed    int     `json:"pages_analyzed" yaml:"pages_analyzed"`
	PagesFailed      int     `json:"pages_failed" yaml:"pages_failed"`
	TotalTimeSeconds float64 `json:"total_time_seconds" yaml:"total_time_seconds"`
}

// FinalOutput is the structured output for the entire run.
type FinalOutput struct {
	Status string                          `json:"status" yaml:"status"`
	Result *models.ContentSimilarityResult `json:"result" yaml:"result"`
	Stats  Stats                           `json:"stats" yaml:"stats"`
}

// SimilarityAction compares a batch of URLs pairwise and classifies their
// content relationships.
func SimilarityAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	var urls []string
	if c.IsSet("urls") {
		urls = strings.Split(c.String("urls"), ",")
	}

	if len(urls) < 2 {
		fmt.Fprintln(os.Stderr, "Error: similarity analysis needs at least 2 URLs")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  llm-readability similarity --urls "https://example.com/a,https://example.com/b"`)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Need help? Run: llm-readability similarity --help")
		os.Exit(1)
	}

	// Sanitize and validate all URLs before processing (fail fast)
	sanitizedURLs, invalidURLs := common.SanitizeAndValidateURLs(urls)
	if len(invalidURLs) > 0 {
		fmt.Fprintf(os.Stderr, "Error: %d URL(s) are malformed (even after cleanup):\n", len(invalidURLs))
		for _, badURL := range invalidURLs {
			fmt.Fprintf(os.Stderr, "  - %s\n", badURL)
		}
		os.Exit(1)
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "Error: OPENAI_API_KEY must be set for embedding-based similarity analysis")
		os.Exit(1)
	}

	database, err := store.Open()
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	engine := similaritypkg.NewEngine(
		contentfetch.NewHTTPContentFetcher(),
		embeddings.NewHTTPClient(os.Getenv("OPENAI_BASE_URL"), apiKey),
		logger,
	)

	result, err := engine.AnalyzeURLs(context.Background(), sanitizedURLs)
	if err != nil {
		logger.Error("similarity analysis failed", "error", err)
		os.Exit(2)
	}

	if err := database.SaveRelationships(result.Relationships); err != nil {
		logger.Warn("Failed to persist relationships", "error", err)
	}

	finalOutput := &FinalOutput{
		Status: "success",
		Result: result,
		Stats: Stats{
			TotalURLs:        len(sanitizedURLs),
			PagesAnalyzed:    result.PagesAnalyzed,
			PagesFailed:      result.PagesFailed,
			TotalTimeSeconds: time.Since(startTime).Seconds(),
		},
	}
	if result.PagesFailed > 0 {
		finalOutput.Status = "partial_failure"
	}

	if err := writeOutput(finalOutput, c.String("format")); err != nil {
		logger.Error("failed to write output", "error", err)
		os.Exit(2)
	}

	return nil
}

func writeOutput(output *FinalOutput, format string) error {
	switch strings.ToLower(format) {
	case "yaml":
		data, err := yaml.Marshal(output)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		fmt.Print(string(data))
	default:
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	}
	return nil
}
