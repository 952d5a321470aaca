package heuristics

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dtnitsch/llm-readability/models"
)

// Weights for the citation marker sub-checks. Must sum to 1.0.
const (
	citationWeightDate      = 0.25
	citationWeightAuthor    = 0.20
	citationWeightLinks     = 0.20
	citationWeightSources   = 0.20
	citationWeightFootnotes = 0.15
)

const (
	minExternalLinks        = 3
	descriptiveAnchorMinLen = 5
	descriptiveAnchorShare  = 0.6
)

var (
	visibleDateRe = regexp.MustCompile(`(?i)\b(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2},?\s+\d{4}\b|\b\d{4}-\d{2}-\d{2}\b|\b\d{1,2}/\d{1,2}/\d{4}\b`)
	bylineRe      = regexp.MustCompile(`\bBy\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+`)
	inlineCiteRe  = regexp.MustCompile(`\[\d+\]|\([A-Z][A-Za-z-]+(?:\s+(?:&|and)\s+[A-Z][A-Za-z-]+)?,\s*\d{4}\)`)
	sourceHeadingRe = regexp.MustCompile(`(?i)^(references|bibliography|sources|see also)\b`)
)

// boilerplateAnchors are anchor texts that tell a model nothing about the
// link target.
var boilerplateAnchors = map[string]struct{}{
	"click here": {}, "read more": {}, "here": {}, "link": {},
	"learn more": {}, "more": {}, "this": {}, "see more": {},
}

// CitationMarkersAnalyzer scores how citable the page is: date and author
// attribution, link quality, source references, and footnote markup.
type CitationMarkersAnalyzer struct{}

func (CitationMarkersAnalyzer) Category() string { return CategoryCitationMarkers }

func (a CitationMarkersAnalyzer) Analyze(p *models.ParsedPage) Result {
	c := newCollector(CategoryCitationMarkers)

	subs := []subScore{
		{citationWeightDate, a.scoreDate(p, c)},
		{citationWeightAuthor, a.scoreAuthor(p, c)},
		{citationWeightLinks, a.scoreExternalLinks(p, c)},
		{citationWeightSources, a.scoreSourceReferences(p, c)},
		{citationWeightFootnotes, a.scoreFootnotes(p, c)},
	}

	return c.result(combine(subs))
}

func (CitationMarkersAnalyzer) scoreDate(p *models.ParsedPage, c *collector) float64 {
	if hasAnyMetaKey(p, dateMetaKeys) || jsonldHasKey(p.JSONLD, "datePublished") {
		c.detail("Machine-readable publication date present")
		return 100
	}
	if visibleDateRe.MatchString(p.RawText) {
		c.issue("Date appears only as visible text, not metadata")
		c.item(models.PriorityMedium,
			"Publication date is not machine-readable",
			"Add datePublished to JSON-LD or an article:published_time meta tag")
		return 50
	}
	c.issue("No publication date found")
	c.item(models.PriorityHigh,
		"Page gives no publication date",
		"Models discount undated content; add a dated byline and date metadata")
	return 0
}

func (CitationMarkersAnalyzer) scoreAuthor(p *models.ParsedPage, c *collector) float64 {
	metaAuthor := hasAnyMetaKey(p, authorMetaKeys)
	schemaAuthor := jsonldHasKey(p.JSONLD, "author")

	switch {
	case metaAuthor && schemaAuthor:
		c.detail("Author present in both meta tags and schema")
		return 100
	case metaAuthor || schemaAuthor:
		c.detail("Author present in metadata")
		return 70
	case bylineRe.MatchString(p.RawText):
		c.issue("Author appears only as a visible byline")
		c.item(models.PriorityMedium,
			"Byline is not machine-readable",
			"Duplicate the byline into an author meta tag and JSON-LD author")
		return 30
	default:
		c.issue("No author attribution found")
		c.item(models.PriorityMedium,
			"Content has no author attribution",
			"Add a named author; attribution raises citation confidence")
		return 0
	}
}

func (CitationMarkersAnalyzer) scoreExternalLinks(p *models.ParsedPage, c *collector) float64 {
	external := p.ExternalLinks()

	if len(external) == 0 {
		c.issue("No external links found")
		c.item(models.PriorityMedium,
			"Page cites no external sources",
			"Link claims to authoritative external sources")
		return 0
	}

	if len(external) < minExternalLinks {
		c.issue(fmt.Sprintf("Only %d external links found", len(external)))
		return 40
	}

	descriptive := 0
	for _, l := range external {
		anchor := strings.ToLower(strings.TrimSpace(l.Text))
		if _, boiler := boilerplateAnchors[anchor]; !boiler && len(anchor) > descriptiveAnchorMinLen {
			descriptive++
		}
	}

	if float64(descriptive)/float64(len(external)) >= descriptiveAnchorShare {
		c.detail("External links use descriptive anchor text")
		return 100
	}

	c.issue("External links mostly use boilerplate anchor text")
	c.item(models.PriorityLow,
		`Anchor texts like "click here" hide what links point to`,
		"Use anchor text that names the linked source")
	return 80
}

func (CitationMarkersAnalyzer) scoreSourceReferences(p *models.ParsedPage, c *collector) float64 {
	for _, h := range p.Headings {
		if sourceHeadingRe.MatchString(strings.TrimSpace(h.Text)) {
			c.detail(fmt.Sprintf("Source section found: %q", h.Text))
			return 100
		}
	}

	if inlineCiteRe.MatchString(p.RawText) {
		c.detail("Inline citation markers found")
		return 60
	}

	c.issue("No references section or inline citations")
	c.item(models.PriorityLow,
		"Claims are not backed by visible sources",
		"Add a References or Sources section listing what the content draws on")
	return 20
}

func (CitationMarkersAnalyzer) scoreFootnotes(p *models.ParsedPage, c *collector) float64 {
	hasCitePattern := inlineCiteRe.MatchString(p.RawText)

	switch {
	case hasCitePattern && p.HasFootnoteMarkup:
		c.detail("Citations are backed by footnote markup")
		return 100
	case hasCitePattern:
		c.issue("Citation markers lack footnote markup")
		return 60
	default:
		return 20
	}
}
