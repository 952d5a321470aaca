package similarity

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/dtnitsch/llm-readability/models"
	"github.com/dtnitsch/llm-readability/pkg/embeddings"
)

const (
	// fetchBatchSize bounds concurrent page fetches; batchDelay spaces
	// batches out to respect external rate limits.
	fetchBatchSize = 5
	batchDelay     = 1 * time.Second

	// facetMaxChars truncates the body and full facets before embedding.
	facetMaxChars = 8000
)

// ContentFetcher fetches one URL's content facets. A returned error marks
// the page as failed; it is never retried.
type ContentFetcher interface {
	FetchPage(ctx context.Context, url string) (*models.ContentPage, error)
}

// Engine runs the similarity pipeline: fetch pages in bounded batches,
// embed four facets per page, score every unordered pair, classify, and
// cluster intent collisions.
type Engine struct {
	fetcher  ContentFetcher
	embedder embeddings.Client
	logger   *slog.Logger
}

// NewEngine wires the engine's collaborators. Clients are injected so
// tests can substitute them.
func NewEngine(fetcher ContentFetcher, embedder embeddings.Client, logger *slog.Logger) *Engine {
	return &Engine{
		fetcher:  fetcher,
		embedder: embedder,
		logger:   logger,
	}
}

// AnalyzeURLs evaluates every unordered pair of the given URLs and returns
// the classified relationships plus intent collision clusters. Pages that
// fail to fetch are excluded from pairing and reported in FailedURLs.
func (e *Engine) AnalyzeURLs(ctx context.Context, urls []string) (*models.ContentSimilarityResult, error) {
	pages := e.fetchPages(ctx, urls)

	var valid []*models.ContentPage
	var failed []string
	for _, page := range pages {
		if page.FetchError != "" {
			failed = append(failed, page.URL)
			continue
		}
		valid = append(valid, page)
	}

	e.logger.Info("pages fetched", "total", len(urls), "valid", len(valid), "failed", len(failed))

	var relationships []models.ContentRelationship
	for i := 0; i < len(valid); i++ {
		for j := i + 1; j < len(valid); j++ {
			score := scorePair(valid[i], valid[j])
			relationships = append(relationships, Classify(score))
		}
	}

	return &models.ContentSimilarityResult{
		Relationships:           relationships,
		IntentCollisionClusters: IdentifyIntentClusters(relationships),
		PagesAnalyzed:           len(valid),
		PagesFailed:             len(failed),
		FailedURLs:              failed,
	}, nil
}

// fetchPages processes URLs in fixed-size concurrent batches with a fixed
// delay between batches. Results keep input order.
func (e *Engine) fetchPages(ctx context.Context, urls []string) []*models.ContentPage {
	pages := make([]*models.ContentPage, len(urls))

	for start := 0; start < len(urls); start += fetchBatchSize {
		end := start + fetchBatchSize
		if end > len(urls) {
			end = len(urls)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(idx int, url string) {
				defer wg.Done()
				pages[idx] = e.fetchAndEmbed(ctx, url)
			}(i, urls[i])
		}
		wg.Wait()

		if end < len(urls) {
			select {
			case <-time.After(batchDelay):
			case <-ctx.Done():
				for i := end; i < len(urls); i++ {
					pages[i] = &models.ContentPage{URL: urls[i], FetchError: ctx.Err().Error()}
				}
				return pages
			}
		}
	}

	return pages
}

func (e *Engine) fetchAndEmbed(ctx context.Context, url string) *models.ContentPage {
	page, err := e.fetcher.FetchPage(ctx, url)
	if err != nil {
		e.logger.Warn("page fetch failed", "url", url, "error", err)
		return &models.ContentPage{URL: url, FetchError: err.Error()}
	}

	full := strings.TrimSpace(page.Title + "\n" + page.IntroText + "\n" + page.BodyText)

	page.Embeddings = models.FacetVectors{
		Title: e.embed(ctx, url, "title", page.Title),
		Intro: e.embed(ctx, url, "intro", page.IntroText),
		Body:  e.embed(ctx, url, "body", truncate(page.BodyText, facetMaxChars)),
		Full:  e.embed(ctx, url, "full", truncate(full, facetMaxChars)),
	}

	return page
}

// embed returns the facet vector, or an empty vector on failure. A missing
// vector degrades that facet's similarity to 0 rather than failing the page.
func (e *Engine) embed(ctx context.Context, url, facet, text string) []float64 {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	vec, err := e.embedder.Embed(ctx, text)
	if err != nil {
		e.logger.Warn("embedding failed", "url", url, "facet", facet, "error", err)
		return nil
	}
	return vec
}

func scorePair(a, b *models.ContentPage) models.SimilarityScore {
	return models.SimilarityScore{
		URLA:  a.URL,
		URLB:  b.URL,
		Title: embeddings.CosineSimilarity(a.Embeddings.Title, b.Embeddings.Title),
		Intro: embeddings.CosineSimilarity(a.Embeddings.Intro, b.Embeddings.Intro),
		Body:  embeddings.CosineSimilarity(a.Embeddings.Body, b.Embeddings.Body),
		Full:  embeddings.CosineSimilarity(a.Embeddings.Full, b.Embeddings.Full),
	}
}

func truncate(s string, maxChars int) string {
	if len(s) <= maxChars {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars])
}
