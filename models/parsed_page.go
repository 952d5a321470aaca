// Package models defines the data structures shared by the scoring and
// similarity pipelines.
package models

// Heading is one entry in a page's ordered heading outline.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// ListInfo describes one list element on the page.
type ListInfo struct {
	Type      string `json:"type"` // "ul", "ol", "dl"
	ItemCount int    `json:"item_count"`
}

// TableInfo captures the semantic markup signals of one table.
type TableInfo struct {
	HasThead    bool `json:"has_thead"`
	HasTbody    bool `json:"has_tbody"`
	HasScopedTh bool `json:"has_scoped_th"`
}

// Link is one anchor found on the page.
type Link struct {
	Href     string `json:"href"`
	Text     string `json:"text"`
	External bool   `json:"external"`
}

// ParsedPage is the read-only structured view of a document that every
// analyzer consumes. It is built once per analysis and never mutated.
type ParsedPage struct {
	URL   string `json:"url"`
	Title string `json:"title"`

	Headings  []Heading `json:"headings"`
	Landmarks []string  `json:"landmarks"` // semantic landmark tags present: nav, main, header, footer

	SemanticCount int `json:"semantic_count"` // article, section, aside, figure, etc.
	DivCount      int `json:"div_count"`

	Lists  []ListInfo  `json:"lists"`
	Tables []TableInfo `json:"tables"`

	JSONLD           []map[string]interface{} `json:"jsonld,omitempty"`
	HasMicrodata     bool                     `json:"has_microdata"`
	HasBreadcrumbNav bool                     `json:"has_breadcrumb_nav"`
	HasFootnoteMarkup bool                    `json:"has_footnote_markup"`

	OpenGraph map[string]string `json:"opengraph,omitempty"`
	MetaTags  map[string]string `json:"meta_tags,omitempty"`

	Links      []Link   `json:"links"`
	Paragraphs []string `json:"paragraphs"`
	Sentences  []string `json:"sentences"`
	RawText    string   `json:"raw_text"`

	NavTextLength   int `json:"nav_text_length"`
	MainTextLength  int `json:"main_text_length"`
	TotalTextLength int `json:"total_text_length"`
}

// HasLandmark reports whether the given landmark tag was found on the page.
func (p *ParsedPage) HasLandmark(tag string) bool {
	for _, l := range p.Landmarks {
		if l == tag {
			return true
		}
	}
	return false
}

// H1Count returns the number of level-1 headings.
func (p *ParsedPage) H1Count() int {
	n := 0
	for _, h := range p.Headings {
		if h.Level == 1 {
			n++
		}
	}
	return n
}

// ExternalLinks returns only the links pointing off-site.
func (p *ParsedPage) ExternalLinks() []Link {
	var out []Link
	for _, l := range p.Links {
		if l.External {
			out = append(out, l)
		}
	}
	return out
}
