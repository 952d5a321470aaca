package llmjudge

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/dtnitsch/llm-readability/models"
)

// JudgeModels are the fixed judge identities queried for every evaluation.
var JudgeModels = []string{"gpt-4o", "gpt-4o-mini", "gpt-4.1"}

// judgeTimeout bounds each judge call. A timed-out call counts as failed;
// it is never retried and never cancels its siblings.
const judgeTimeout = 45 * time.Second

// Scorer fans an evaluation out to every judge model and reduces the
// surviving responses to a consensus.
type Scorer struct {
	client CompletionClient
	logger *slog.Logger
}

// NewScorer builds a consensus scorer. A nil client marks credentials as
// unavailable: Score degrades to an all-nil result instead of erroring.
func NewScorer(client CompletionClient, logger *slog.Logger) *Scorer {
	return &Scorer{client: client, logger: logger}
}

// Available reports whether judge calls can be made at all.
func (s *Scorer) Available() bool {
	return s.client != nil
}

// Score queries all judge models concurrently and averages the overall
// scores of the responses that survive validation. Per-model failure is
// normal operation: the model's slot is nil and the consensus is computed
// over the rest, or nil when every judge failed.
func (s *Scorer) Score(ctx context.Context, pageText string) *models.LLMResults {
	results := &models.LLMResults{
		Evaluations: make(map[string]*models.LLMEvaluation, len(JudgeModels)),
	}
	for _, model := range JudgeModels {
		results.Evaluations[model] = nil
	}

	if !s.Available() {
		s.logger.Info("llm judge skipped, no credentials configured")
		return results
	}

	system, user := buildPrompts(pageText)

	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, model := range JudgeModels {
		wg.Add(1)
		go func(model string) {
			defer wg.Done()

			callCtx, cancel := context.WithTimeout(ctx, judgeTimeout)
			defer cancel()

			raw, err := s.client.Complete(callCtx, model, system, user)
			if err != nil {
				s.logger.Warn("judge call failed", "model", model, "error", err)
				return
			}

			eval, err := ParseEvaluation(raw)
			if err != nil {
				s.logger.Warn("judge response rejected", "model", model, "error", err)
				return
			}

			mu.Lock()
			results.Evaluations[model] = eval
			mu.Unlock()
		}(model)
	}
	wg.Wait()

	results.Consensus = consensus(results.Evaluations)
	return results
}

// consensus returns the rounded mean of the present overall scores, or nil
// when no judge succeeded.
func consensus(evaluations map[string]*models.LLMEvaluation) *int {
	sum := 0
	n := 0
	for _, eval := range evaluations {
		if eval != nil {
			sum += eval.OverallScore
			n++
		}
	}
	if n == 0 {
		return nil
	}
	mean := int(math.Round(float64(sum) / float64(n)))
	return &mean
}
