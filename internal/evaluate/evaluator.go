package evaluate

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/dtnitsch/llm-readability/models"
	"github.com/dtnitsch/llm-readability/pkg/heuristics"
	"github.com/dtnitsch/llm-readability/pkg/llmjudge"
	"github.com/dtnitsch/llm-readability/pkg/textmetrics"
)

// judgeTextMaxChars caps the condensed page text sent to the judges.
const judgeTextMaxChars = 12000

const topKeywordCount = 10

// Options controls how a single page evaluation is composed.
type Options struct {
	IncludeLLM bool
}

// Evaluator scores one parsed page: always the five heuristic analyzers,
// optionally the LLM judge panel blended in at equal weight.
type Evaluator struct {
	scorer *llmjudge.Scorer
	logger *slog.Logger
}

func NewEvaluator(scorer *llmjudge.Scorer, logger *slog.Logger) *Evaluator {
	return &Evaluator{scorer: scorer, logger: logger}
}

// Evaluate produces the full result for one page. It never fails: judge
// problems degrade to heuristics-only scoring.
func (e *Evaluator) Evaluate(ctx context.Context, page *models.ParsedPage, opts Options) *models.EvaluationResult {
	start := time.Now()

	heuristicsResult, items := heuristics.Aggregate(page)

	var llmResults *models.LLMResults
	if opts.IncludeLLM {
		llmResults = e.scorer.Score(ctx, condensedText(page))
	}

	var consensus *int
	if llmResults != nil {
		consensus = llmResults.Consensus
	}
	overall, mode := llmjudge.Blend(heuristicsResult.Overall, consensus, opts.IncludeLLM)

	elapsed := time.Since(start)
	return &models.EvaluationResult{
		URL:        page.URL,
		Overall:    overall,
		Heuristics: heuristicsResult,
		LLM:        llmResults,
		Items:      items,
		Metadata: models.EvaluationMetadata{
			Mode:        mode,
			Elapsed:     elapsed,
			ElapsedMS:   elapsed.Milliseconds(),
			EvaluatedAt: time.Now().UTC(),
			TopKeywords: textmetrics.TopKeywords(page.RawText, topKeywordCount),
		},
	}
}

// condensedText builds the page representation the judges read: title,
// heading outline, then body paragraphs, truncated to a fixed budget.
func condensedText(page *models.ParsedPage) string {
	var b strings.Builder

	if page.Title != "" {
		b.WriteString("Title: ")
		b.WriteString(page.Title)
		b.WriteString("\n\n")
	}

	if len(page.Headings) > 0 {
		b.WriteString("Outline:\n")
		for _, h := range page.Headings {
			b.WriteString(strings.Repeat("  ", h.Level-1))
			b.WriteString("- ")
			b.WriteString(h.Text)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	for _, p := range page.Paragraphs {
		if b.Len()+len(p) > judgeTextMaxChars {
			break
		}
		b.WriteString(p)
		b.WriteString("\n\n")
	}

	text := b.String()
	if len(text) > judgeTextMaxChars {
		runes := []rune(text)
		if len(runes) > judgeTextMaxChars {
			text = string(runes[:judgeTextMaxChars])
		}
	}
	return strings.TrimSpace(text)
}
