// Package contentfetch turns live URLs into the facet text the similarity
// engine embeds: title, H1, intro, and distilled body.
package contentfetch

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"

	"github.com/dtnitsch/llm-readability/models"
	"github.com/dtnitsch/llm-readability/pkg/fetcher"
)

// introParagraphs is how many leading paragraphs make up the intro facet.
const introParagraphs = 2

var detectorLanguages = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Portuguese,
	lingua.Italian,
	lingua.Dutch,
	lingua.Japanese,
	lingua.Chinese,
}

// HTTPContentFetcher fetches pages over HTTP and distills them into
// ContentPage facets using readability extraction.
type HTTPContentFetcher struct {
	fetcher  *fetcher.Fetcher
	detector lingua.LanguageDetector
}

func NewHTTPContentFetcher() *HTTPContentFetcher {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(detectorLanguages...).
		Build()
	return &HTTPContentFetcher{
		fetcher:  fetcher.NewFetcher(),
		detector: detector,
	}
}

// FetchPage downloads one URL and extracts its comparison facets. Fetch
// and extraction failures are returned as errors; the caller records them
// per page without aborting the batch.
func (f *HTTPContentFetcher) FetchPage(ctx context.Context, rawURL string) (*models.ContentPage, error) {
	html, err := f.fetcher.GetHtml(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	return f.extract(rawURL, html)
}

func (f *HTTPContentFetcher) extract(rawURL, html string) (*models.ContentPage, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url %s: %w", rawURL, err)
	}

	readabilityParser := readability.NewParser()
	article, err := readabilityParser.Parse(strings.NewReader(html), parsedURL)
	if err != nil {
		return nil, fmt.Errorf("extract content from %s: %w", rawURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html from %s: %w", rawURL, err)
	}

	page := &models.ContentPage{
		URL:      rawURL,
		Title:    squeeze(doc.Find("title").First().Text()),
		H1:       squeeze(doc.Find("h1").First().Text()),
		BodyText: squeeze(article.TextContent),
	}
	if page.Title == "" {
		page.Title = squeeze(article.Title)
	}
	page.IntroText = leadingParagraphs(article.Content, introParagraphs)
	page.Language = f.detectLanguage(page.BodyText)

	return page, nil
}

// leadingParagraphs takes the first n paragraphs of the distilled article
// content as the intro facet.
func leadingParagraphs(articleHTML string, n int) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(articleHTML))
	if err != nil {
		return ""
	}

	var parts []string
	doc.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if text := squeeze(s.Text()); text != "" {
			parts = append(parts, text)
		}
		return len(parts) < n
	})
	return strings.Join(parts, " ")
}

func (f *HTTPContentFetcher) detectLanguage(text string) string {
	if text == "" {
		return ""
	}
	language, ok := f.detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(language.IsoCode639_1().String())
}

func squeeze(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
