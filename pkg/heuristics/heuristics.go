// Package heuristics scores parsed pages for LLM readability. Five
// independent analyzers each combine weighted sub-checks into a 0-100
// score; the aggregator averages them and merges recommendations.
package heuristics

import (
	"math"

	"github.com/dtnitsch/llm-readability/models"
)

// Analyzer categories, used on actionable items and result fields.
const (
	CategorySemanticStructure = "semantic_structure"
	CategoryStructuredData    = "structured_data"
	CategoryContentClarity    = "content_clarity"
	CategoryCitationMarkers   = "citation_markers"
	CategoryFactualDensity    = "factual_density"
)

// Result is what a single analyzer produces for one page.
type Result struct {
	Score models.HeuristicScore
	Items []models.ActionableItem
}

// Analyzer is a pure scoring function over a ParsedPage. Analyzers hold no
// state and are safe to run concurrently.
type Analyzer interface {
	Category() string
	Analyze(p *models.ParsedPage) Result
}

// subScore is one weighted component of an analyzer score.
type subScore struct {
	weight float64
	value  float64
}

// combine reduces weighted sub-scores (weights sum to 1.0) into an integer
// score clamped to [0,100].
func combine(subs []subScore) int {
	total := 0.0
	for _, s := range subs {
		total += s.weight * s.value
	}
	return clampInt(int(math.Round(total)), 0, 100)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round(v float64) int {
	return int(math.Round(v))
}

// collector accumulates findings while an analyzer walks its sub-checks.
type collector struct {
	category string
	details  []string
	issues   []string
	items    []models.ActionableItem
}

func newCollector(category string) *collector {
	return &collector{category: category}
}

func (c *collector) detail(msg string) {
	c.details = append(c.details, msg)
}

func (c *collector) issue(msg string) {
	c.issues = append(c.issues, msg)
}

func (c *collector) item(priority models.Priority, issue, recommendation string) {
	c.items = append(c.items, models.ActionableItem{
		Priority:       priority,
		Category:       c.category,
		Issue:          issue,
		Recommendation: recommendation,
	})
}

func (c *collector) itemWithExample(priority models.Priority, issue, recommendation, example string) {
	c.items = append(c.items, models.ActionableItem{
		Priority:       priority,
		Category:       c.category,
		Issue:          issue,
		Recommendation: recommendation,
		CodeExample:    example,
	})
}

func (c *collector) result(score int) Result {
	return Result{
		Score: models.HeuristicScore{
			Score:   score,
			Details: c.details,
			Issues:  c.issues,
		},
		Items: c.items,
	}
}
