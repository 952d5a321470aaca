package heuristics

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dtnitsch/llm-readability/models"
	"github.com/dtnitsch/llm-readability/pkg/textmetrics"
)

// Weights for the factual density sub-checks. Must sum to 1.0.
const (
	factualWeightContentRatio = 0.30
	factualWeightFiller       = 0.25
	factualWeightSignals      = 0.25
	factualWeightBoilerplate  = 0.20
)

const (
	factualMinTextChars = 50

	boilerplateHeavyOccurrences = 5
	boilerplateSomeOccurrences  = 2
	duplicateParagraphRatio     = 0.2
)

// fillerPhrases pad sentences without adding information.
var fillerPhrases = []string{
	"in order to",
	"it is important to note",
	"as a matter of fact",
	"at the end of the day",
	"needless to say",
	"it goes without saying",
	"for all intents and purposes",
	"in today's world",
	"in this day and age",
	"when it comes to",
	"the fact of the matter",
	"first and foremost",
	"last but not least",
	"each and every",
	"in the event that",
	"due to the fact that",
	"with that being said",
}

// boilerplatePhrases indicate chrome and template text rather than content.
var boilerplatePhrases = []string{
	"all rights reserved",
	"terms of service",
	"privacy policy",
	"cookie policy",
	"subscribe to our newsletter",
	"follow us on",
	"share this article",
	"related posts",
	"back to top",
}

var (
	fillerPatterns = textmetrics.CompilePhrases(fillerPhrases)
	numericTokenRe = regexp.MustCompile(`\b\d+(?:[.,]\d+)*%?`)
	yearRe         = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

// FactualDensityAnalyzer scores information density: content-to-navigation
// balance, filler, concrete factual signals, and boilerplate repetition.
type FactualDensityAnalyzer struct{}

func (FactualDensityAnalyzer) Category() string { return CategoryFactualDensity }

func (a FactualDensityAnalyzer) Analyze(p *models.ParsedPage) Result {
	c := newCollector(CategoryFactualDensity)

	if p.TotalTextLength < factualMinTextChars {
		c.issue("Not enough text to evaluate factual density")
		c.item(models.PriorityHigh,
			"Page has almost no text content",
			"Publish substantive content before optimizing density")
		return c.result(0)
	}

	subs := []subScore{
		{factualWeightContentRatio, a.scoreContentRatio(p, c)},
		{factualWeightFiller, a.scoreFiller(p, c)},
		{factualWeightSignals, a.scoreFactualSignals(p, c)},
		{factualWeightBoilerplate, a.scoreBoilerplate(p, c)},
	}

	return c.result(combine(subs))
}

func (FactualDensityAnalyzer) scoreContentRatio(p *models.ParsedPage, c *collector) float64 {
	denom := p.MainTextLength + p.NavTextLength
	if denom == 0 {
		return 0
	}
	ratio := float64(p.MainTextLength) / float64(denom)

	var score float64
	switch {
	case ratio >= 0.6:
		score = 100
	case ratio >= 0.4:
		score = 60 + 200*(ratio-0.4)
	default:
		score = float64(round(ratio * 150))
	}

	if score < 100 {
		c.issue(fmt.Sprintf("Navigation text rivals content (content ratio %.2f)", ratio))
		c.item(models.PriorityMedium,
			"Too much of the page is navigation chrome",
			"Trim navigation and sidebars relative to main content")
	} else {
		c.detail(fmt.Sprintf("Healthy content-to-navigation ratio (%.2f)", ratio))
	}

	return score
}

func (FactualDensityAnalyzer) scoreFiller(p *models.ParsedPage, c *collector) float64 {
	f := textmetrics.PhraseDensity(p.RawText, fillerPatterns)

	var score float64
	switch {
	case f <= 1:
		score = 100
	case f <= 3:
		score = 70
	default:
		score = clampFloat(50-10*(f-3), 0, 100)
	}

	if score < 100 {
		c.issue(fmt.Sprintf("Filler phrase density %.2f per 100 words", f))
		c.item(models.PriorityLow,
			"Filler phrases pad the text without information",
			`Cut phrases like "in order to" and "at the end of the day"`)
	}

	return score
}

func (FactualDensityAnalyzer) scoreFactualSignals(p *models.ParsedPage, c *collector) float64 {
	words := textmetrics.Words(p.RawText)
	if len(words) == 0 {
		return 0
	}

	signals := len(numericTokenRe.FindAllString(p.RawText, -1)) +
		len(yearRe.FindAllString(p.RawText, -1))
	f := float64(signals) * 100 / float64(len(words))

	var score float64
	switch {
	case f >= 3:
		score = 100
	case f >= 1:
		score = clampFloat(50+25*f, 0, 100)
	default:
		score = float64(round(f * 50))
	}

	if score < 100 {
		c.issue(fmt.Sprintf("Few factual signals (%.2f numbers/dates per 100 words)", f))
		c.item(models.PriorityMedium,
			"Content is light on concrete facts",
			"Add specific numbers, dates, and measurable claims; models prefer citable specifics")
	} else {
		c.detail("Content is rich in numeric and date signals")
	}

	return score
}

func (FactualDensityAnalyzer) scoreBoilerplate(p *models.ParsedPage, c *collector) float64 {
	lower := strings.ToLower(p.RawText)
	occurrences := 0
	for _, phrase := range boilerplatePhrases {
		occurrences += strings.Count(lower, phrase)
	}

	dupRatio := duplicateRatio(p.Paragraphs)

	var score float64
	switch {
	case occurrences > boilerplateHeavyOccurrences || dupRatio > duplicateParagraphRatio:
		score = 30
		c.issue(fmt.Sprintf("Heavy boilerplate (%d phrases, %.0f%% duplicate paragraphs)", occurrences, dupRatio*100))
		c.item(models.PriorityMedium,
			"Boilerplate and repeated blocks crowd out content",
			"Remove repeated template text from the content region")
	case occurrences > boilerplateSomeOccurrences:
		score = 60
		c.issue(fmt.Sprintf("Some boilerplate detected (%d phrases)", occurrences))
	default:
		score = 100
	}

	return score
}

func duplicateRatio(paragraphs []string) float64 {
	if len(paragraphs) == 0 {
		return 0
	}
	seen := make(map[string]int, len(paragraphs))
	duplicates := 0
	for _, para := range paragraphs {
		key := strings.ToLower(strings.TrimSpace(para))
		if key == "" {
			continue
		}
		seen[key]++
		if seen[key] > 1 {
			duplicates++
		}
	}
	return float64(duplicates) / float64(len(paragraphs))
}
