package evaluate

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
	"github.com/dtnitsch/llm-readability/pkg/llmjudge"
	"github.com/dtnitsch/llm-readability/pkg/store"
)

// EvaluateAction scores a batch of URLs for LLM readability.
func EvaluateAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	config := &models.EvaluateConfig{
		WorkerCount: c.Int("workers"),
		IncludeLLM:  c.Bool("include-llm"),
	}
	if c.IsSet("urls") {
		config.URLs = strings.Split(c.String("urls"), ",")
	}

	if len(config.URLs) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No URLs provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  llm-readability evaluate --urls "https://example.com,https://example.org"`)
		fmt.Fprintln(os.Stderr, `  llm-readability evaluate --urls "https://example.com" --include-llm`)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Need help? Run: llm-readability evaluate --help")
		os.Exit(1)
	}

	// Sanitize and validate all URLs before processing (fail fast)
	sanitizedURLs, invalidURLs := common.SanitizeAndValidateURLs(config.URLs)
	if len(invalidURLs) > 0 {
		fmt.Fprintf(os.Stderr, "Error: %d URL(s) are malformed (even after cleanup):\n", len(invalidURLs))
		for _, badURL := range invalidURLs {
			fmt.Fprintf(os.Stderr, "  - %s\n", badURL)
		}
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Note: URLs are auto-cleaned (whitespace trimmed, trailing punctuation removed, markdown links extracted)")
		os.Exit(1)
	}
	config.URLs = sanitizedURLs

	database, err := store.Open()
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	var judgeClient llmjudge.CompletionClient
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		judgeClient = llmjudge.NewHTTPCompletionClient(os.Getenv("OPENAI_BASE_URL"), apiKey)
	} else if config.IncludeLLM {
		logger.Info("OPENAI_API_KEY not set, LLM judging will be skipped")
	}
	evaluator := NewEvaluator(llmjudge.NewScorer(judgeClient, logger), logger)

	allResults, runErr := run(context.Background(), logger, config, evaluator, database)

	finalOutput := &FinalOutput{
		Status:  "success",
		Results: make([]ResultOutput, 0, len(allResults)),
	}
	successCount := 0
	for _, result := range allResults {
		out := ResultOutput{URL: result.URL, Status: "success", Evaluation: result.Evaluation}
		if result.Error != nil {
			out.Status = "failed"
			out.Error = result.Error.Error()
			out.ErrorType = result.ErrorType
		} else {
			successCount++
		}
		finalOutput.Results = append(finalOutput.Results, out)
	}
	finalOutput.Stats = Stats{
		TotalURLs:        len(config.URLs),
		Successful:       successCount,
		Failed:           len(config.URLs) - successCount,
		TotalTimeSeconds: time.Since(startTime).Seconds(),
	}
	if runErr != nil {
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
