// Package pagemodel builds the immutable ParsedPage view of an HTML
// document that the heuristic analyzers consume.
package pagemodel

import (
	"bufio"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dtnitsch/llm-readability/models"
	"github.com/dtnitsch/llm-readability/pkg/textmetrics"
)

// semanticTags are the container elements counted against divs.
var semanticTags = []string{
	"article", "section", "aside", "nav", "main", "header", "footer",
	"figure", "figcaption", "details", "summary",
}

var landmarkTags = []string{"nav", "main", "header", "footer"}

// BuildFromHTML parses raw HTML into a ParsedPage. The returned page is
// complete and read-only; analyzers never touch the DOM.
func BuildFromHTML(rawURL, html string) (*models.ParsedPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	page := &models.ParsedPage{
		URL:       rawURL,
		Title:     normalizeText(doc.Find("title").First().Text()),
		OpenGraph: map[string]string{},
		MetaTags:  map[string]string{},
	}

	collectHeadings(doc, page)
	collectLandmarks(doc, page)
	collectContainers(doc, page)
	collectLists(doc, page)
	collectTables(doc, page)
	collectStructuredData(doc, page)
	collectMeta(doc, page)
	collectLinks(doc, page, rawURL)
	collectText(doc, page)

	return page, nil
}

func collectHeadings(doc *goquery.Document, page *models.ParsedPage) {
	doc.Find("h1,h2,h3,h4,h5,h6").Each(func(_ int, s *goquery.Selection) {
		level, err := strconv.Atoi(strings.TrimPrefix(goquery.NodeName(s), "h"))
		if err != nil {
			return
		}
		page.Headings = append(page.Headings, models.Heading{
			Level: level,
			Text:  normalizeText(s.Text()),
		})
	})
}

func collectLandmarks(doc *goquery.Document, page *models.ParsedPage) {
	for _, tag := range landmarkTags {
		if doc.Find(tag).Length() > 0 {
			page.Landmarks = append(page.Landmarks, tag)
		}
	}
}

func collectContainers(doc *goquery.Document, page *models.ParsedPage) {
	for _, tag := range semanticTags {
		page.SemanticCount += doc.Find(tag).Length()
	}
	page.DivCount = doc.Find("div").Length()
}

func collectLists(doc *goquery.Document, page *models.ParsedPage) {
	doc.Find("ul,ol,dl").Each(func(_ int, s *goquery.Selection) {
		listType := goquery.NodeName(s)
		items := "li"
		if listType == "dl" {
			items = "dt"
		}
		page.Lists = append(page.Lists, models.ListInfo{
			Type:      listType,
			ItemCount: s.ChildrenFiltered(items).Length(),
		})
	})
}

func collectTables(doc *goquery.Document, page *models.ParsedPage) {
	doc.Find("table").Each(func(_ int, s *goquery.Selection) {
		page.Tables = append(page.Tables, models.TableInfo{
			HasThead:    s.Find("thead").Length() > 0,
			HasTbody:    s.Find("tbody").Length() > 0,
			HasScopedTh: s.Find("th[scope]").Length() > 0,
		})
	})
}

func collectStructuredData(doc *goquery.Document, page *models.ParsedPage) {
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		raw := strings.TrimSpace(s.Text())
		if raw == "" {
			return
		}
		// A block may hold a single object or an array of objects.
		if strings.HasPrefix(raw, "[") {
			var blocks []map[string]interface{}
			if err := json.Unmarshal([]byte(raw), &blocks); err == nil {
				page.JSONLD = append(page.JSONLD, blocks...)
			}
			return
		}
		var block map[string]interface{}
		if err := json.Unmarshal([]byte(raw), &block); err == nil {
			page.JSONLD = append(page.JSONLD, block)
		}
	})

	page.HasMicrodata = doc.Find("[itemscope]").Length() > 0
	page.HasBreadcrumbNav = doc.Find(`nav[aria-label*="readcrumb"], nav[class*="readcrumb"], ol[class*="readcrumb"]`).Length() > 0
	page.HasFootnoteMarkup = doc.Find("sup").Length() > 0 ||
		doc.Find(`[class*="footnote"]`).Length() > 0
}

func collectMeta(doc *goquery.Document, page *models.ParsedPage) {
	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		content, _ := s.Attr("content")
		if content == "" {
			return
		}
		if prop, ok := s.Attr("property"); ok {
			prop = strings.ToLower(strings.TrimSpace(prop))
			if strings.HasPrefix(prop, "og:") {
				page.OpenGraph[prop] = content
			} else {
				page.MetaTags[prop] = content
			}
			return
		}
		if name, ok := s.Attr("name"); ok {
			page.MetaTags[strings.ToLower(strings.TrimSpace(name))] = content
		}
	})
}

func collectLinks(doc *goquery.Document, page *models.ParsedPage, rawURL string) {
	base, _ := url.Parse(rawURL)

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") {
			return
		}

		external := false
		if target, err := url.Parse(href); err == nil && target.Host != "" {
			external = base == nil || target.Host != base.Host
		}

		page.Links = append(page.Links, models.Link{
			Href:     href,
			Text:     normalizeText(s.Text()),
			External: external,
		})
	})
}

func collectText(doc *goquery.Document, page *models.ParsedPage) {
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if text := normalizeText(s.Text()); text != "" {
			page.Paragraphs = append(page.Paragraphs, text)
		}
	})

	body := doc.Find("body")
	page.RawText = normalizeText(body.Text())
	page.Sentences = textmetrics.SplitSentences(page.RawText)
	page.TotalTextLength = len(page.RawText)

	navText := 0
	for _, tag := range []string{"nav", "header", "footer", "aside"} {
		body.Find(tag).Each(func(_ int, s *goquery.Selection) {
			navText += len(normalizeText(s.Text()))
		})
	}
	page.NavTextLength = navText

	if main := body.Find("main"); main.Length() > 0 {
		page.MainTextLength = len(normalizeText(main.Text()))
	} else if article := body.Find("article"); article.Length() > 0 {
		page.MainTextLength = len(normalizeText(article.Text()))
	} else {
		page.MainTextLength = max(page.TotalTextLength-navText, 0)
	}
}

// normalizeText collapses whitespace and blank lines into single spaces.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(strings.Join(strings.Fields(b.String()), " "))
}
