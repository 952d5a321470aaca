package pagemodel

import (
	"testing"
)

const sampleHTML = `<!DOCTYPE html>
<html>
<head>
  <title>  Field Guide
  </title>
  <meta name="author" content="Jane Roe">
  <meta name="description" content="A field guide.">
  <meta property="og:title" content="Field Guide">
  <meta property="article:published_time" content="2024-03-05T00:00:00Z">
  <script type="application/ld+json">{"@context":"https://schema.org","@type":"Article","author":"Jane Roe"}</script>
</head>
<body>
  <header>Site header</header>
  <nav class="breadcrumbs"><a href="/">Home</a></nav>
  <main>
    <article itemscope>
      <h1>Field Guide</h1>
      <h2>Habitats</h2>
      <h3>Wetlands</h3>
      <p>Herons wade in shallow water. They hunt fish at dawn.</p>
      <p>Most sightings happen between April and June.<sup>1</sup></p>
      <ul><li>Heron</li><li>Egret</li><li>Bittern</li></ul>
      <table>
        <thead><tr><th scope="col">Species</th></tr></thead>
        <tbody><tr><td>Heron</td></tr></tbody>
      </table>
      <a href="https://birds.example.org/heron">heron reference</a>
      <a href="/about">About</a>
      <a href="#top">Top</a>
    </article>
  </main>
  <footer>Copyright</footer>
</body>
</html>`

func TestBuildFromHTML(t *testing.T) {
	page, err := BuildFromHTML("https://example.com/guide", sampleHTML)
	if err != nil {
		t.Fatalf("BuildFromHTML() error = %v", err)
	}

	if page.Title != "Field Guide" {
		t.Errorf("Title = %q, want %q", page.Title, "Field Guide")
	}

	if len(page.Headings) != 3 {
		t.Fatalf("got %d headings, want 3", len(page.Headings))
	}
	if page.Headings[0].Level != 1 || page.Headings[0].Text != "Field Guide" {
		t.Errorf("first heading = %+v, want level 1 %q", page.Headings[0], "Field Guide")
	}
	if page.H1Count() != 1 {
		t.Errorf("H1Count() = %d, want 1", page.H1Count())
	}

	for _, landmark := range []string{"nav", "main", "header", "footer"} {
		if !page.HasLandmark(landmark) {
			t.Errorf("missing landmark %q", landmark)
		}
	}

	if len(page.Lists) != 1 || page.Lists[0].Type != "ul" || page.Lists[0].ItemCount != 3 {
		t.Errorf("Lists = %+v, want one ul with 3 items", page.Lists)
	}

	if len(page.Tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(page.Tables))
	}
	table := page.Tables[0]
	if !table.HasThead || !table.HasTbody || !table.HasScopedTh {
		t.Errorf("table markup flags = %+v, want all true", table)
	}
}

func TestBuildFromHTMLStructuredData(t *testing.T) {
	page, err := BuildFromHTML("https://example.com/guide", sampleHTML)
	if err != nil {
		t.Fatalf("BuildFromHTML() error = %v", err)
	}

	if len(page.JSONLD) != 1 {
		t.Fatalf("got %d JSON-LD blocks, want 1", len(page.JSONLD))
	}
	if page.JSONLD[0]["@type"] != "Article" {
		t.Errorf("JSON-LD @type = %v, want Article", page.JSONLD[0]["@type"])
	}

	if !page.HasMicrodata {
		t.Error("HasMicrodata = false, want true (itemscope present)")
	}
	if !page.HasBreadcrumbNav {
		t.Error("HasBreadcrumbNav = false, want true")
	}
	if !page.HasFootnoteMarkup {
		t.Error("HasFootnoteMarkup = false, want true (sup present)")
	}

	if page.OpenGraph["og:title"] != "Field Guide" {
		t.Errorf("OpenGraph og:title = %q, want %q", page.OpenGraph["og:title"], "Field Guide")
	}
	if page.MetaTags["author"] != "Jane Roe" {
		t.Errorf("MetaTags author = %q, want %q", page.MetaTags["author"], "Jane Roe")
	}
	if page.MetaTags["article:published_time"] == "" {
		t.Error("article:published_time should land in MetaTags")
	}
}

func TestBuildFromHTMLLinksAndText(t *testing.T) {
	page, err := BuildFromHTML("https://example.com/guide", sampleHTML)
	if err != nil {
		t.Fatalf("BuildFromHTML() error = %v", err)
	}

	// The fragment-only link is dropped; the breadcrumb, article, and about
	// links remain.
	if len(page.Links) != 3 {
		t.Fatalf("got %d links, want 3: %+v", len(page.Links), page.Links)
	}
	if external := page.ExternalLinks(); len(external) != 1 || external[0].Text != "heron reference" {
		t.Errorf("ExternalLinks() = %+v, want only the off-site link", external)
	}

	if len(page.Paragraphs) != 2 {
		t.Errorf("got %d paragraphs, want 2", len(page.Paragraphs))
	}
	if len(page.Sentences) == 0 {
		t.Error("Sentences should not be empty")
	}

	if page.TotalTextLength == 0 {
		t.Error("TotalTextLength = 0, want > 0")
	}
	if page.MainTextLength == 0 || page.MainTextLength >= page.TotalTextLength {
		t.Errorf("MainTextLength = %d, want within (0, %d)", page.MainTextLength, page.TotalTextLength)
	}
	if page.NavTextLength == 0 {
		t.Error("NavTextLength = 0, want > 0 (header, nav, footer text)")
	}
}

func TestBuildFromHTMLEmptyDocument(t *testing.T) {
	page, err := BuildFromHTML("https://example.com/empty", "")
	if err != nil {
		t.Fatalf("BuildFromHTML() error = %v", err)
	}

	if page.H1Count() != 0 || len(page.Paragraphs) != 0 || page.TotalTextLength != 0 {
		t.Errorf("empty document produced content: %+v", page)
	}
}

func TestNormalizeText(t *testing.T) {
	got := normalizeText("  line one \n\n   line two\t \n")
	want := "line one line two"
	if got != want {
		t.Errorf("normalizeText() = %q, want %q", got, want)
	}
}
