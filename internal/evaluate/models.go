package evaluate

import (
	"github.com/dtnitsch/llm-readability/models"
)

type Job struct {
	URL        string
	IncludeLLM bool
}

// Result holds the outcome of a processed job.
type Result struct {
	URL        string
	Evaluation *models.EvaluationResult
	Error      error
	ErrorType  string
}

// ResultOutput is the structured output for a single URL.
type ResultOutput struct {
	URL        string                   `json:"url" yaml:"url"`
	Status     string                   `json:"status" yaml:"status"`
	Error      string                   `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorType  string                   `json:"error_type,omitempty" yaml:"error_type,omitempty"`
	Evaluation *models.EvaluationResult `json:"evaluation,omitempty" yaml:"evaluation,omitempty"`
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalURLs        int     `json:"total_urls" yaml:"total_urls"`
	Successful       int     `json:"successful" yaml:"successful"`
	Failed           int     `json:"failed" yaml:"failed"`
	TotalTimeSeconds float64 `json:"total_time_seconds" yaml:"total_time_seconds"`
}

// FinalOutput is the structured output for the entire run.
type FinalOutput struct {
	Status  string         `json:"status" yaml:"status"`
	Results []ResultOutput `json:"results" yaml:"results"`
	Stats   Stats          `json:"stats" yaml:"stats"`
}
