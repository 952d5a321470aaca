package evaluate

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/dtnitsch/llm-readability/models"
	"github.com/dtnitsch/llm-readability/pkg/llmjudge"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func samplePage() *models.ParsedPage {
	return &models.ParsedPage{
		URL:   "https://example.com/guide",
		Title: "Guide",
		Headings: []models.Heading{
			{Level: 1, Text: "Guide"},
			{Level: 2, Text: "Basics"},
		},
		Paragraphs: []string{
			"The guide explains each step in plain words so readers can follow along without prior training.",
		},
		RawText:         "The guide explains each step in plain words so readers can follow along without prior training.",
		TotalTextLength: 95,
		MainTextLength:  95,
	}
}

func TestEvaluateHeuristicsOnly(t *testing.T) {
	evaluator := NewEvaluator(llmjudge.NewScorer(nil, testLogger()), testLogger())

	result := evaluator.Evaluate(context.Background(), samplePage(), Options{IncludeLLM: false})

	if result.Metadata.Mode != models.ModeHeuristicsOnly {
		t.Errorf("Mode = %q, want %q", result.Metadata.Mode, models.ModeHeuristicsOnly)
	}
	if result.Overall != result.Heuristics.Overall {
		t.Errorf("Overall = %d, want heuristics overall %d", result.Overall, result.Heuristics.Overall)
	}
	if result.LLM != nil {
		t.Error("LLM results should be absent when not requested")
	}
	if result.URL != "https://example.com/guide" {
		t.Errorf("URL = %q, want the page URL", result.URL)
	}
}

func TestEvaluateIncludeLLMWithoutCredentials(t *testing.T) {
	// Nil client: judges are skipped, so the blend falls back.
	evaluator := NewEvaluator(llmjudge.NewScorer(nil, testLogger()), testLogger())

	result := evaluator.Evaluate(context.Background(), samplePage(), Options{IncludeLLM: true})

	if result.Metadata.Mode != models.ModeHeuristicsOnly {
		t.Errorf("Mode = %q, want fallback %q", result.Metadata.Mode, models.ModeHeuristicsOnly)
	}
	if result.LLM == nil {
		t.Fatal("LLM results should be present (all-nil) when requested")
	}
	if result.LLM.Consensus != nil {
		t.Error("Consensus should be nil without credentials")
	}
}

func TestCondensedText(t *testing.T) {
	got := condensedText(samplePage())

	if !strings.Contains(got, "Title: Guide") {
		t.Errorf("condensed text missing title: %q", got)
	}
	if !strings.Contains(got, "- Guide") || !strings.Contains(got, "  - Basics") {
		t.Errorf("condensed text missing indented outline: %q", got)
	}
	if !strings.Contains(got, "plain words") {
		t.Errorf("condensed text missing paragraph content: %q", got)
	}
}

func TestCondensedTextTruncates(t *testing.T) {
	page := samplePage()
	long := strings.Repeat("word ", 1000) // ~5000 chars per paragraph
	page.Paragraphs = []string{long, long, long, long}

	got := condensedText(page)
	if len(got) > judgeTextMaxChars {
		t.Errorf("condensed text length %d exceeds cap %d", len(got), judgeTextMaxChars)
	}
}
