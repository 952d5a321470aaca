package heuristics

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/llm-readability/models"
	"github.com/dtnitsch/llm-readability/pkg/textmetrics"
)

// Weights for the content clarity sub-checks. Must sum to 1.0.
const (
	clarityWeightReadingEase = 0.30
	clarityWeightSentences   = 0.25
	clarityWeightParagraphs  = 0.20
	clarityWeightJargon      = 0.25
)

// Thresholds for the clarity sub-checks.
const (
	clarityMinTextChars = 50

	idealSentenceMin = 12.0
	idealSentenceMax = 22.0

	idealParagraphMeanMin = 30.0
	idealParagraphMeanMax = 120.0
	longParagraphWords    = 150
)

// ContentClarityAnalyzer scores prose quality: reading ease, sentence and
// paragraph lengths, and jargon density.
type ContentClarityAnalyzer struct{}

func (ContentClarityAnalyzer) Category() string { return CategoryContentClarity }

func (a ContentClarityAnalyzer) Analyze(p *models.ParsedPage) Result {
	c := newCollector(CategoryContentClarity)

	text := strings.Join(p.Paragraphs, " ")
	if len(text) < clarityMinTextChars {
		c.issue("Not enough paragraph text to evaluate clarity")
		c.item(models.PriorityHigh,
			"Page has almost no paragraph content",
			"Add substantive body text; models cannot extract answers from empty pages")
		return c.result(0)
	}

	subs := []subScore{
		{clarityWeightReadingEase, a.scoreReadingEase(text, c)},
		{clarityWeightSentences, a.scoreSentenceLength(text, c)},
		{clarityWeightParagraphs, a.scoreParagraphs(p.Paragraphs, c)},
		{clarityWeightJargon, a.scoreJargon(text, c)},
	}

	return c.result(combine(subs))
}

func (ContentClarityAnalyzer) scoreReadingEase(text string, c *collector) float64 {
	fk := textmetrics.FleschKincaidReadingEase(text)

	var score float64
	switch {
	case fk >= 60:
		score = 100
	case fk >= 40:
		score = 50 + 2.5*(fk-40)
	case fk >= 20:
		score = 20 + 1.5*(fk-20)
	default:
		score = fk
	}

	if score < 100 {
		c.issue(fmt.Sprintf("Reading ease is %.1f (below the comfortable 60+ band)", fk))
		c.item(models.PriorityMedium,
			"Text is harder to read than it needs to be",
			"Shorten sentences and prefer plain words; aim for a reading ease of 60 or higher")
	} else {
		c.detail(fmt.Sprintf("Reading ease %.1f", fk))
	}

	return score
}

func (ContentClarityAnalyzer) scoreSentenceLength(text string, c *collector) float64 {
	avg := textmetrics.AverageSentenceLength(text)

	var score float64
	switch {
	case avg >= idealSentenceMin && avg <= idealSentenceMax:
		score = 100
	case avg < idealSentenceMin:
		score = clampFloat(avg/idealSentenceMin*100, 0, 100)
	default:
		score = clampFloat(100-4*(avg-idealSentenceMax), 0, 100)
	}

	if score < 100 {
		if avg > idealSentenceMax {
			c.issue(fmt.Sprintf("Average sentence runs %.1f words (ideal 12-22)", avg))
			c.item(models.PriorityMedium,
				"Sentences are too long on average",
				"Split long sentences; each should carry one idea")
		} else {
			c.issue(fmt.Sprintf("Average sentence is only %.1f words", avg))
		}
	} else {
		c.detail(fmt.Sprintf("Average sentence length %.1f words", avg))
	}

	return score
}

func (ContentClarityAnalyzer) scoreParagraphs(paragraphs []string, c *collector) float64 {
	if len(paragraphs) == 0 {
		return 0
	}

	totalWords := 0
	longParagraphs := 0
	for _, para := range paragraphs {
		words := len(textmetrics.Words(para))
		totalWords += words
		if words > longParagraphWords {
			longParagraphs++
		}
	}
	mean := float64(totalWords) / float64(len(paragraphs))

	score := 100.0
	if mean < idealParagraphMeanMin || mean > idealParagraphMeanMax {
		score = 70
		c.issue(fmt.Sprintf("Mean paragraph length %.0f words (ideal 30-120)", mean))
	}
	if longParagraphs > 0 {
		score -= float64(10 * longParagraphs)
		c.issue(fmt.Sprintf("%d paragraphs exceed %d words", longParagraphs, longParagraphWords))
		c.item(models.PriorityMedium,
			"Wall-of-text paragraphs bury extractable facts",
			"Break paragraphs over 150 words into focused chunks")
	}

	return clampFloat(score, 0, 100)
}

func (ContentClarityAnalyzer) scoreJargon(text string, c *collector) float64 {
	j := textmetrics.JargonDensity(text)

	var score float64
	switch {
	case j <= 0.5:
		score = 100
	case j <= 2:
		score = 80 - 20*(j-0.5)
	default:
		score = clampFloat(50-16*(j-2), 0, 100)
	}

	if score < 100 {
		c.issue(fmt.Sprintf("Jargon density %.2f per 100 words", j))
		c.item(models.PriorityLow,
			"Corporate jargon dilutes the content",
			"Replace buzzwords with concrete language")
	}

	return score
}
