package heuristics

import (
	"math"
	"sort"

	"github.com/dtnitsch/llm-readability/models"
)

// analyzers in the fixed order their scores land in HeuristicsResult.
var analyzers = []Analyzer{
	SemanticStructureAnalyzer{},
	StructuredDataAnalyzer{},
	ContentClarityAnalyzer{},
	CitationMarkersAnalyzer{},
	FactualDensityAnalyzer{},
}

// Aggregate runs all five analyzers against one page, averages their
// scores, and merges actionable items sorted by priority (stable, so items
// keep their analyzer emission order within a priority band).
func Aggregate(p *models.ParsedPage) (models.HeuristicsResult, []models.ActionableItem) {
	results := make([]Result, len(analyzers))
	for i, a := range analyzers {
		results[i] = a.Analyze(p)
	}

	var items []models.ActionableItem
	sum := 0
	for _, r := range results {
		sum += r.Score.Score
		items = append(items, r.Items...)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Priority.Rank() < items[j].Priority.Rank()
	})

	return models.HeuristicsResult{
		SemanticStructure: results[0].Score,
		StructuredData:    results[1].Score,
		ContentClarity:    results[2].Score,
		CitationMarkers:   results[3].Score,
		FactualDensity:    results[4].Score,
		Overall:           int(math.Round(float64(sum) / float64(len(results)))),
	}, items
}
