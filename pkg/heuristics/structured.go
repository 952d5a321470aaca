package heuristics

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/llm-readability/models"
)

// Weights for the structured data sub-checks. Must sum to 1.0.
const (
	structuredWeightJSONLD     = 0.30
	structuredWeightMicrodata  = 0.15
	structuredWeightOpenGraph  = 0.25
	structuredWeightBreadcrumb = 0.15
	structuredWeightMetadata   = 0.15
)

// essentialOpenGraphTags are the OpenGraph properties scored for coverage.
var essentialOpenGraphTags = []string{"og:title", "og:description", "og:image", "og:url"}

// Meta tag keys accepted as author/date/description signals.
var (
	authorMetaKeys = []string{"author", "article:author", "dc.creator"}
	dateMetaKeys   = []string{"article:published_time", "date", "dc.date", "publish-date"}
)

// StructuredDataAnalyzer scores machine-readable markup: JSON-LD,
// microdata, OpenGraph, breadcrumbs, and core metadata tags.
type StructuredDataAnalyzer struct{}

func (StructuredDataAnalyzer) Category() string { return CategoryStructuredData }

func (a StructuredDataAnalyzer) Analyze(p *models.ParsedPage) Result {
	c := newCollector(CategoryStructuredData)

	subs := []subScore{
		{structuredWeightJSONLD, a.scoreJSONLD(p, c)},
		{structuredWeightMicrodata, a.scoreMicrodata(p, c)},
		{structuredWeightOpenGraph, a.scoreOpenGraph(p, c)},
		{structuredWeightBreadcrumb, a.scoreBreadcrumb(p, c)},
		{structuredWeightMetadata, a.scoreMetadata(p, c)},
	}

	return c.result(combine(subs))
}

func (StructuredDataAnalyzer) scoreJSONLD(p *models.ParsedPage, c *collector) float64 {
	if len(p.JSONLD) == 0 {
		c.issue("No JSON-LD structured data found")
		c.itemWithExample(models.PriorityHigh,
			"Page carries no JSON-LD block",
			"Add a JSON-LD script with a schema.org type describing the page",
			`<script type="application/ld+json">{"@context":"https://schema.org","@type":"Article"}</script>`)
		return 0
	}

	if !jsonldHasType(p.JSONLD) {
		c.issue("JSON-LD present but no block declares @type")
		c.item(models.PriorityMedium,
			"JSON-LD blocks lack an @type declaration",
			"Declare a schema.org @type (Article, FAQPage, HowTo) so the block is classifiable")
		return 70
	}

	c.detail("Typed JSON-LD structured data present")
	return 100
}

func (StructuredDataAnalyzer) scoreMicrodata(p *models.ParsedPage, c *collector) float64 {
	if p.HasMicrodata {
		c.detail("Microdata attributes present")
		return 100
	}
	// JSON-LD is the preferred vehicle, so missing microdata is only a
	// soft penalty and not worth an actionable item.
	return 40
}

func (StructuredDataAnalyzer) scoreOpenGraph(p *models.ParsedPage, c *collector) float64 {
	present := 0
	var missing []string
	for _, tag := range essentialOpenGraphTags {
		if _, ok := p.OpenGraph[tag]; ok {
			present++
		} else {
			missing = append(missing, tag)
		}
	}

	if present == len(essentialOpenGraphTags) {
		c.detail("All essential OpenGraph tags present")
		return 100
	}

	c.issue(fmt.Sprintf("Missing OpenGraph tags: %s", strings.Join(missing, ", ")))
	c.item(models.PriorityLow,
		"Essential OpenGraph tags are incomplete",
		"Add og:title, og:description, og:image, and og:url meta properties")

	return float64(present) / float64(len(essentialOpenGraphTags)) * 80
}

func (StructuredDataAnalyzer) scoreBreadcrumb(p *models.ParsedPage, c *collector) float64 {
	if jsonldTypeIs(p.JSONLD, "BreadcrumbList") {
		c.detail("BreadcrumbList schema present")
		return 100
	}
	if p.HasBreadcrumbNav {
		c.issue("Breadcrumb nav exists without BreadcrumbList schema")
		c.item(models.PriorityLow,
			"Breadcrumb trail is markup-only",
			"Mirror the breadcrumb nav in a BreadcrumbList JSON-LD block")
		return 40
	}
	c.issue("No breadcrumb markup found")
	return 0
}

func (StructuredDataAnalyzer) scoreMetadata(p *models.ParsedPage, c *collector) float64 {
	score := 0.0

	if hasAnyMetaKey(p, authorMetaKeys) || jsonldHasKey(p.JSONLD, "author") {
		score += 40
		c.detail("Author metadata present")
	} else {
		c.issue("No author metadata")
		c.item(models.PriorityMedium,
			"Page does not declare an author",
			"Add an author meta tag or JSON-LD author so content is attributable")
	}

	if desc, ok := p.MetaTags["description"]; ok && desc != "" {
		score += 30
		c.detail("Meta description present")
	} else {
		c.issue("No meta description")
		c.item(models.PriorityMedium,
			"Page has no meta description",
			"Write a one-sentence meta description summarizing the page")
	}

	if hasAnyMetaKey(p, dateMetaKeys) || jsonldHasKey(p.JSONLD, "datePublished") {
		score += 30
		c.detail("Publication date metadata present")
	} else {
		c.issue("No publication date metadata")
	}

	return clampFloat(score, 0, 100)
}

func hasAnyMetaKey(p *models.ParsedPage, keys []string) bool {
	for _, key := range keys {
		if v, ok := p.MetaTags[key]; ok && v != "" {
			return true
		}
		if v, ok := p.OpenGraph[key]; ok && v != "" {
			return true
		}
	}
	return false
}

func jsonldHasType(blocks []map[string]interface{}) bool {
	for _, block := range blocks {
		if _, ok := block["@type"]; ok {
			return true
		}
	}
	return false
}

func jsonldTypeIs(blocks []map[string]interface{}, want string) bool {
	for _, block := range blocks {
		if t, ok := block["@type"].(string); ok && strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}

func jsonldHasKey(blocks []map[string]interface{}, key string) bool {
	for _, block := range blocks {
		if v, ok := block[key]; ok && v != nil {
			return true
		}
	}
	return false
}
