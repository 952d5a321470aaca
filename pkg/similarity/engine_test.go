package similarity

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/dtnitsch/llm-readability/models"
)

// fakeFetcher serves canned pages and fails URLs listed in failures.
type fakeFetcher struct {
	pages    map[string]*models.ContentPage
	failures map[string]bool
}

func (f *fakeFetcher) FetchPage(_ context.Context, url string) (*models.ContentPage, error) {
	if f.failures[url] {
		return nil, fmt.Errorf("fetch %s: connection refused", url)
	}
	page := *f.pages[url]
	return &page, nil
}

// fakeEmbedder maps known facet texts to fixed vectors so pair scores are
// deterministic.
type fakeEmbedder struct {
	vectors map[string][]float64
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	if vec, ok := f.vectors[text]; ok {
		return vec, nil
	}
	return []float64{1, 0, 0}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func contentPage(url, title, intro, body string) *models.ContentPage {
	return &models.ContentPage{URL: url, Title: title, IntroText: intro, BodyText: body}
}

func TestAnalyzeURLsPairsAndCounts(t *testing.T) {
	urls := []string{"https://a.test/", "https://b.test/", "https://c.test/"}
	fetcher := &fakeFetcher{
		pages: map[string]*models.ContentPage{
			urls[0]: contentPage(urls[0], "t1", "i1", "b1"),
			urls[1]: contentPage(urls[1], "t2", "i2", "b2"),
			urls[2]: contentPage(urls[2], "t3", "i3", "b3"),
		},
		failures: map[string]bool{},
	}

	engine := NewEngine(fetcher, &fakeEmbedder{}, testLogger())
	result, err := engine.AnalyzeURLs(context.Background(), urls)
	if err != nil {
		t.Fatalf("AnalyzeURLs() error = %v", err)
	}

	// 3 pages form 3 unordered pairs.
	if len(result.Relationships) != 3 {
		t.Errorf("got %d relationships, want 3", len(result.Relationships))
	}
	if result.PagesAnalyzed != 3 || result.PagesFailed != 0 {
		t.Errorf("counts = (%d analyzed, %d failed), want (3, 0)",
			result.PagesAnalyzed, result.PagesFailed)
	}

	// No pair may appear in both orders.
	seen := map[string]bool{}
	for _, rel := range result.Relationships {
		key := rel.URLA + "|" + rel.URLB
		reversed := rel.URLB + "|" + rel.URLA
		if seen[key] || seen[reversed] {
			t.Errorf("pair %s appears twice", key)
		}
		seen[key] = true
	}
}

func TestAnalyzeURLsExcludesFailedPages(t *testing.T) {
	urls := []string{"https://a.test/", "https://down.test/", "https://c.test/"}
	fetcher := &fakeFetcher{
		pages: map[string]*models.ContentPage{
			urls[0]: contentPage(urls[0], "t1", "i1", "b1"),
			urls[2]: contentPage(urls[2], "t3", "i3", "b3"),
		},
		failures: map[string]bool{urls[1]: true},
	}

	engine := NewEngine(fetcher, &fakeEmbedder{}, testLogger())
	result, err := engine.AnalyzeURLs(context.Background(), urls)
	if err != nil {
		t.Fatalf("AnalyzeURLs() error = %v", err)
	}

	if len(result.Relationships) != 1 {
		t.Errorf("got %d relationships, want 1 (failed page excluded)", len(result.Relationships))
	}
	if result.PagesAnalyzed != 2 || result.PagesFailed != 1 {
		t.Errorf("counts = (%d analyzed, %d failed), want (2, 1)",
			result.PagesAnalyzed, result.PagesFailed)
	}
	if len(result.FailedURLs) != 1 || result.FailedURLs[0] != urls[1] {
		t.Errorf("FailedURLs = %v, want [%s]", result.FailedURLs, urls[1])
	}
}

func TestAnalyzeURLsIdenticalPagesAreDuplicates(t *testing.T) {
	urls := []string{"https://a.test/", "https://b.test/"}
	same := contentPage("", "same title", "same intro", "same body")
	pageA := *same
	pageA.URL = urls[0]
	pageB := *same
	pageB.URL = urls[1]

	fetcher := &fakeFetcher{
		pages: map[string]*models.ContentPage{
			urls[0]: &pageA,
			urls[1]: &pageB,
		},
		failures: map[string]bool{},
	}

	// Every facet embeds to the same vector, so all similarities are 1.
	engine := NewEngine(fetcher, &fakeEmbedder{}, testLogger())
	result, err := engine.AnalyzeURLs(context.Background(), urls)
	if err != nil {
		t.Fatalf("AnalyzeURLs() error = %v", err)
	}

	if len(result.Relationships) != 1 {
		t.Fatalf("got %d relationships, want 1", len(result.Relationships))
	}
	if got := result.Relationships[0].Classification; got != models.RelDefiniteDuplicate {
		t.Errorf("Classification = %q, want %q", got, models.RelDefiniteDuplicate)
	}
}

func TestEmbedEmptyTextYieldsZeroSimilarity(t *testing.T) {
	urls := []string{"https://a.test/", "https://b.test/"}
	fetcher := &fakeFetcher{
		pages: map[string]*models.ContentPage{
			// No intro text on either page: the intro facet has no vector.
			urls[0]: contentPage(urls[0], "t1", "", "b1"),
			urls[1]: contentPage(urls[1], "t2", "", "b2"),
		},
		failures: map[string]bool{},
	}

	engine := NewEngine(fetcher, &fakeEmbedder{}, testLogger())
	result, err := engine.AnalyzeURLs(context.Background(), urls)
	if err != nil {
		t.Fatalf("AnalyzeURLs() error = %v", err)
	}

	if got := result.Relationships[0].Similarities.Intro; got != 0 {
		t.Errorf("Intro similarity = %v, want 0 for missing facet", got)
	}
}
