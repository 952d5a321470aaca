package heuristics

import (
	"fmt"

	"github.com/dtnitsch/llm-readability/models"
)

// Weights for the semantic structure sub-checks. Must sum to 1.0.
const (
	semanticWeightHeadings  = 0.25
	semanticWeightLandmarks = 0.25
	semanticWeightRatio     = 0.20
	semanticWeightLists     = 0.15
	semanticWeightTables    = 0.15
)

// Scoring constants for the heading hierarchy check.
const (
	headingSingleH1Points      = 40
	headingMultipleH1Points    = 20
	headingNoSkipsPoints       = 40
	headingDepthPoints         = 20
	headingDepthDistinctLevels = 3
)

// SemanticStructureAnalyzer scores how well the page uses semantic HTML:
// heading hierarchy, landmark coverage, semantic-vs-div balance, list and
// table markup.
type SemanticStructureAnalyzer struct{}

func (SemanticStructureAnalyzer) Category() string { return CategorySemanticStructure }

func (a SemanticStructureAnalyzer) Analyze(p *models.ParsedPage) Result {
	c := newCollector(CategorySemanticStructure)

	subs := []subScore{
		{semanticWeightHeadings, a.scoreHeadings(p, c)},
		{semanticWeightLandmarks, a.scoreLandmarks(p, c)},
		{semanticWeightRatio, a.scoreSemanticRatio(p, c)},
		{semanticWeightLists, a.scoreLists(p, c)},
		{semanticWeightTables, a.scoreTables(p, c)},
	}

	return c.result(combine(subs))
}

func (SemanticStructureAnalyzer) scoreHeadings(p *models.ParsedPage, c *collector) float64 {
	score := 0.0

	switch h1s := p.H1Count(); h1s {
	case 1:
		score += headingSingleH1Points
		c.detail("Page has exactly one H1")
	case 0:
		c.issue("No H1 heading found")
		c.item(models.PriorityHigh,
			"Page has no H1 heading",
			"Add a single H1 that states the page topic; models anchor extraction on it")
	default:
		score += headingMultipleH1Points
		c.issue(fmt.Sprintf("Multiple H1 headings found (%d)", h1s))
		c.item(models.PriorityMedium,
			fmt.Sprintf("Page has %d H1 headings", h1s),
			"Keep one H1 per page and demote the others to H2")
	}

	if skips := headingLevelSkips(p.Headings); skips == 0 {
		score += headingNoSkipsPoints
		if len(p.Headings) > 0 {
			c.detail("Heading levels descend without skips")
		}
	} else {
		c.issue(fmt.Sprintf("Heading hierarchy skips levels (%d skips)", skips))
		c.item(models.PriorityMedium,
			"Heading levels jump (e.g. H2 directly to H4)",
			"Use consecutive heading levels so the outline reflects document structure")
	}

	if distinctHeadingLevels(p.Headings) >= headingDepthDistinctLevels {
		score += headingDepthPoints
		c.detail("Heading outline uses three or more levels")
	}

	return clampFloat(score, 0, 100)
}

func headingLevelSkips(headings []models.Heading) int {
	skips := 0
	prev := 0
	for _, h := range headings {
		if prev > 0 && h.Level > prev+1 {
			skips++
		}
		prev = h.Level
	}
	return skips
}

func distinctHeadingLevels(headings []models.Heading) int {
	seen := map[int]struct{}{}
	for _, h := range headings {
		seen[h.Level] = struct{}{}
	}
	return len(seen)
}

// landmarkTags are the landmark elements whose coverage is scored.
var landmarkTags = []string{"nav", "main", "header", "footer"}

func (SemanticStructureAnalyzer) scoreLandmarks(p *models.ParsedPage, c *collector) float64 {
	present := 0
	var missing []string
	for _, tag := range landmarkTags {
		if p.HasLandmark(tag) {
			present++
		} else {
			missing = append(missing, "<"+tag+">")
		}
	}

	score := float64(present) / float64(len(landmarkTags)) * 100

	if present == len(landmarkTags) {
		c.detail("All landmark elements present (nav, main, header, footer)")
	} else {
		c.issue(fmt.Sprintf("Missing landmark elements: %v", missing))
		c.itemWithExample(models.PriorityMedium,
			"Page lacks landmark elements, so the main content region is ambiguous",
			"Wrap primary content in <main> and add the missing landmarks",
			"<main>\n  <article>...</article>\n</main>")
	}

	return score
}

func (SemanticStructureAnalyzer) scoreSemanticRatio(p *models.ParsedPage, c *collector) float64 {
	containers := p.SemanticCount + p.DivCount
	if containers == 0 {
		return 50
	}

	ratio := float64(p.SemanticCount) / float64(containers)
	score := clampFloat(float64(round(ratio*250)), 0, 100)

	if score < 100 {
		c.issue(fmt.Sprintf("Low semantic-to-div ratio (%.2f)", ratio))
		c.item(models.PriorityLow,
			"Generic <div> containers dominate semantic elements",
			"Replace layout divs with <section>, <article>, or <aside> where content has meaning")
	} else {
		c.detail("Semantic elements outweigh generic divs")
	}

	return score
}

func (SemanticStructureAnalyzer) scoreLists(p *models.ParsedPage, c *collector) float64 {
	if len(p.Lists) == 0 {
		c.issue("No list markup found")
		c.item(models.PriorityLow,
			"Content has no <ul>, <ol>, or <dl> lists",
			"Mark up enumerations as lists; models extract list items cleanly")
		return 30
	}

	score := 60.0
	hasDefinitionList := false
	hasSubstantialList := false
	for _, l := range p.Lists {
		if l.Type == "dl" {
			hasDefinitionList = true
		}
		if l.ItemCount >= 3 {
			hasSubstantialList = true
		}
	}

	if hasDefinitionList {
		score += 20
		c.detail("Definition lists present")
	}
	if hasSubstantialList {
		score += 20
		c.detail("Lists with three or more items present")
	}

	return score
}

func (SemanticStructureAnalyzer) scoreTables(p *models.ParsedPage, c *collector) float64 {
	if len(p.Tables) == 0 {
		return 100
	}

	total := 0.0
	flawed := 0
	for _, t := range p.Tables {
		tableScore := 0.0
		if t.HasThead {
			tableScore += 40
		}
		if t.HasTbody {
			tableScore += 30
		}
		if t.HasScopedTh {
			tableScore += 30
		}
		if tableScore < 100 {
			flawed++
		}
		total += tableScore
	}

	if flawed > 0 {
		c.issue(fmt.Sprintf("%d of %d tables lack full semantic markup", flawed, len(p.Tables)))
		c.itemWithExample(models.PriorityMedium,
			"Tables are missing <thead>, <tbody>, or scoped header cells",
			"Give every data table a <thead> with scoped <th> cells and a <tbody>",
			"<table>\n  <thead><tr><th scope=\"col\">Name</th></tr></thead>\n  <tbody>...</tbody>\n</table>")
	} else {
		c.detail("All tables carry semantic table markup")
	}

	return total / float64(len(p.Tables))
}
