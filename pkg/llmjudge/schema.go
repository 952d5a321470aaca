package llmjudge

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/dtnitsch/llm-readability/models"
)

// evaluationSchema is the shape a judge response must satisfy before any
// field is trusted. All five dimensions need a numeric score and the
// overall_score must be numeric; anything else rejects the whole response.
const evaluationSchema = `{
  "type": "object",
  "required": [
    "structure_quality",
    "content_clarity",
    "factual_support",
    "citation_readiness",
    "extractability",
    "overall_score"
  ],
  "properties": {
    "structure_quality": {"$ref": "#/definitions/dimension"},
    "content_clarity": {"$ref": "#/definitions/dimension"},
    "factual_support": {"$ref": "#/definitions/dimension"},
    "citation_readiness": {"$ref": "#/definitions/dimension"},
    "extractability": {"$ref": "#/definitions/dimension"},
    "overall_score": {"type": "number"},
    "improvements": {"type": "array", "items": {"type": "string"}},
    "example_excerpts": {"type": "array", "items": {"type": "string"}}
  },
  "definitions": {
    "dimension": {
      "type": "object",
      "required": ["score"],
      "properties": {
        "score": {"type": "number"},
        "notes": {"type": "string"}
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(evaluationSchema)

// rawEvaluation mirrors the judge JSON with float scores, before clamping.
type rawEvaluation struct {
	StructureQuality  rawDimension `json:"structure_quality"`
	ContentClarity    rawDimension `json:"content_clarity"`
	FactualSupport    rawDimension `json:"factual_support"`
	CitationReadiness rawDimension `json:"citation_readiness"`
	Extractability    rawDimension `json:"extractability"`
	OverallScore      float64      `json:"overall_score"`
	Improvements      []string     `json:"improvements"`
	ExampleExcerpts   []string     `json:"example_excerpts"`
}

type rawDimension struct {
	Score float64 `json:"score"`
	Notes string  `json:"notes"`
}

// ParseEvaluation validates a raw judge response and converts it into a
// trusted LLMEvaluation with every score clamped to [0,100] and rounded.
// Invalid or malformed responses are rejected as a whole.
func ParseEvaluation(raw string) (*models.LLMEvaluation, error) {
	payload := stripCodeFences(raw)

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewStringLoader(payload))
	if err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("response failed schema validation: %v", result.Errors())
	}

	var parsed rawEvaluation
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &models.LLMEvaluation{
		StructureQuality:  clampDimension(parsed.StructureQuality),
		ContentClarity:    clampDimension(parsed.ContentClarity),
		FactualSupport:    clampDimension(parsed.FactualSupport),
		CitationReadiness: clampDimension(parsed.CitationReadiness),
		Extractability:    clampDimension(parsed.Extractability),
		OverallScore:      clampScore(parsed.OverallScore),
		Improvements:      parsed.Improvements,
		ExampleExcerpts:   parsed.ExampleExcerpts,
	}, nil
}

func clampDimension(d rawDimension) models.DimensionScore {
	return models.DimensionScore{
		Score: clampScore(d.Score),
		Notes: d.Notes,
	}
}

func clampScore(v float64) int {
	score := int(math.Round(v))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// stripCodeFences removes an optional markdown code fence wrapper that
// models often emit around JSON.
func stripCodeFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		// Drop the language tag line (e.g. "json").
		trimmed = trimmed[idx+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
