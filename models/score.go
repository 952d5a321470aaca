package models

import "time"

// Priority ranks an actionable item. Lower rank sorts first.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the sort rank of the priority (high=0, medium=1, low=2).
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// HeuristicScore is the output of a single analyzer: an integer score in
// [0,100] plus human-readable findings and problems, in emission order.
type HeuristicScore struct {
	Score   int      `json:"score"`
	Details []string `json:"details,omitempty"`
	Issues  []string `json:"issues,omitempty"`
}

// ActionableItem is a concrete recommendation produced alongside a score.
type ActionableItem struct {
	Priority       Priority `json:"priority"`
	Category       string   `json:"category"`
	Issue          string   `json:"issue"`
	Recommendation string   `json:"recommendation"`
	CodeExample    string   `json:"code_example,omitempty"`
}

// HeuristicsResult bundles all five analyzer scores with their rounded mean.
type HeuristicsResult struct {
	SemanticStructure HeuristicScore `json:"semantic_structure"`
	StructuredData    HeuristicScore `json:"structured_data"`
	ContentClarity    HeuristicScore `json:"content_clarity"`
	CitationMarkers   HeuristicScore `json:"citation_markers"`
	FactualDensity    HeuristicScore `json:"factual_density"`
	Overall           int            `json:"overall"`
}

// DimensionScore is one judged dimension of an LLM evaluation.
type DimensionScore struct {
	Score int    `json:"score"`
	Notes string `json:"notes,omitempty"`
}

// LLMEvaluation is the validated judgment of a single model.
type LLMEvaluation struct {
	StructureQuality   DimensionScore `json:"structure_quality"`
	ContentClarity     DimensionScore `json:"content_clarity"`
	FactualSupport     DimensionScore `json:"factual_support"`
	CitationReadiness  DimensionScore `json:"citation_readiness"`
	Extractability     DimensionScore `json:"extractability"`
	OverallScore       int            `json:"overall_score"`
	Improvements       []string       `json:"improvements,omitempty"`
	ExampleExcerpts    []string       `json:"example_excerpts,omitempty"`
}

// LLMResults holds one optional evaluation per judge model plus the
// consensus score. Consensus is nil when no model returned a usable answer.
type LLMResults struct {
	Evaluations map[string]*LLMEvaluation `json:"evaluations"`
	Consensus   *int                      `json:"consensus,omitempty"`
}

// Composition modes recorded on the final result.
const (
	ModeHeuristicsOnly = "heuristics_only"
	ModeBlended        = "blended"
)

// EvaluationMetadata records timing and composition details of one run.
type EvaluationMetadata struct {
	Mode        string        `json:"mode"`
	Elapsed     time.Duration `json:"-"`
	ElapsedMS   int64         `json:"elapsed_ms"`
	EvaluatedAt time.Time     `json:"evaluated_at"`
	TopKeywords []string      `json:"top_keywords,omitempty"`
}

// EvaluationResult is the final output of one page evaluation.
type EvaluationResult struct {
	URL        string             `json:"url,omitempty"`
	Overall    int                `json:"overall"`
	Heuristics HeuristicsResult   `json:"heuristics"`
	LLM        *LLMResults        `json:"llm,omitempty"`
	Items      []ActionableItem   `json:"actionable_items"`
	Metadata   EvaluationMetadata `json:"metadata"`
}
