// Package similarity turns per-facet embedding similarities into content
// relationships and intent clusters.
package similarity

import (
	"fmt"
	"math"

	"github.com/dtnitsch/llm-readability/models"
)

// Classification thresholds. The rule chain below is ordered; these values
// were calibrated against readability-extracted (paraphrase-prone) text and
// are kept as one table so boundary tests can enumerate them.
const (
	duplicateBodyMin  = 0.78
	duplicateTitleMin = 0.75

	nearDupBodyMin  = 0.70
	nearDupIntroMin = 0.65

	collisionTitleMin = 0.70
	collisionBodyMax  = 0.60

	cannibalTitleMin = 0.60
	cannibalBodyMin  = 0.45
	cannibalBodyMax  = 0.65

	templateFullMin = 0.75
	templateBodyMax = 0.55
)

// Classify maps one pair's facet similarities to a relationship. The rules
// are evaluated top to bottom and the first match wins; order is the
// tie-break for tuples that would satisfy several rules.
func Classify(s models.SimilarityScore) models.ContentRelationship {
	rel := models.ContentRelationship{
		URLA:         s.URLA,
		URLB:         s.URLB,
		Similarities: roundedSummary(s),
	}

	switch {
	case s.Body >= duplicateBodyMin && s.Title >= duplicateTitleMin:
		rel.Classification = models.RelDefiniteDuplicate
		rel.Confidence = pct((s.Body + s.Title) / 2)
		rel.RecommendedAction = "Consolidate into one canonical page and 301-redirect the other."
		rel.Reasoning = fmt.Sprintf(
			"Body similarity %d%% and title similarity %d%% indicate the same content published at two URLs.",
			pct(s.Body), pct(s.Title))

	case s.Body >= nearDupBodyMin && s.Intro >= nearDupIntroMin:
		rel.Classification = models.RelNearDuplicate
		rel.Confidence = pct((s.Body + s.Intro) / 2)
		rel.RecommendedAction = "Merge the overlapping sections or rewrite the weaker page to cover distinct ground."
		rel.Reasoning = fmt.Sprintf(
			"Body similarity %d%% with intro similarity %d%% suggests heavy overlap beyond shared framing.",
			pct(s.Body), pct(s.Intro))

	case s.Title >= collisionTitleMin && s.Body < collisionBodyMax:
		rel.Classification = models.RelIntentCollision
		rel.Confidence = pct(s.Title)
		rel.RecommendedAction = "Differentiate the titles so each page targets a distinct search intent."
		rel.Reasoning = fmt.Sprintf(
			"Titles are %d%% similar while bodies differ (%d%%); the pages compete for the same query without being duplicates.",
			pct(s.Title), pct(s.Body))

	case s.Title >= cannibalTitleMin && s.Body >= cannibalBodyMin && s.Body < cannibalBodyMax:
		rel.Classification = models.RelPotentialCannibalization
		rel.Confidence = pct((s.Title + s.Body) / 2)
		rel.RecommendedAction = "Pick one page as primary for this topic and narrow the other's focus."
		rel.Reasoning = fmt.Sprintf(
			"Title similarity %d%% with partial body overlap (%d%%) suggests the pages split ranking signals for one topic.",
			pct(s.Title), pct(s.Body))

	case s.Full >= templateFullMin && s.Body < templateBodyMax:
		rel.Classification = models.RelTemplateOverlap
		rel.Confidence = pct(s.Full)
		rel.RecommendedAction = "Reduce shared template text so page-specific content dominates."
		rel.Reasoning = fmt.Sprintf(
			"Full-page similarity %d%% despite distinct bodies (%d%%) points at shared boilerplate, not shared content.",
			pct(s.Full), pct(s.Body))

	default:
		rel.Classification = models.RelUnique
		rel.Confidence = pct(1 - s.Full)
		rel.RecommendedAction = "No action needed; the pages cover distinct content."
		rel.Reasoning = fmt.Sprintf(
			"Full-page similarity is only %d%%; the pages do not meaningfully overlap.", pct(s.Full))
	}

	return rel
}

// pct converts a [0,1] similarity to a rounded percentage.
func pct(v float64) int {
	return int(math.Round(v * 100))
}

// roundedSummary copies a score with each facet rounded to two decimals
// for presentation.
func roundedSummary(s models.SimilarityScore) models.SimilarityScore {
	return models.SimilarityScore{
		URLA:  s.URLA,
		URLB:  s.URLB,
		Title: round2(s.Title),
		Intro: round2(s.Intro),
		Body:  round2(s.Body),
		Full:  round2(s.Full),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
