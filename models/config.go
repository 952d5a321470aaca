package models

// EvaluateConfig holds runtime configuration for evaluate runs.
// All values come from CLI flags, not external config files.
type EvaluateConfig struct {
	URLs        []string
	WorkerCount int
	IncludeLLM  bool
}

// SimilarityConfig holds runtime configuration for similarity runs.
type SimilarityConfig struct {
	URLs []string
}
