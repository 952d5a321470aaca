package llmjudge

import (
	"math"

	"github.com/dtnitsch/llm-readability/models"
)

const (
	heuristicsBlendWeight = 0.5
	consensusBlendWeight  = 0.5
)

// Blend combines the heuristics score with the optional consensus score.
// Without a consensus (not requested, or every judge failed) the
// heuristics score stands alone.
func Blend(heuristics int, consensus *int, includeLLM bool) (int, string) {
	if !includeLLM || consensus == nil {
		return heuristics, models.ModeHeuristicsOnly
	}

	blended := math.Round(float64(heuristics)*heuristicsBlendWeight + float64(*consensus)*consensusBlendWeight)
	return int(blended), models.ModeBlended
}
