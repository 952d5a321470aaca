package models

// FacetVectors holds one embedding per text facet of a page.
type FacetVectors struct {
	Title []float64 `json:"-"`
	Intro []float64 `json:"-"`
	Body  []float64 `json:"-"`
	Full  []float64 `json:"-"`
}

// ContentPage is the per-URL fetched content used by the similarity
// pipeline. Pages with a non-empty FetchError are excluded from pairing.
type ContentPage struct {
	URL        string       `json:"url"`
	Title      string       `json:"title"`
	H1         string       `json:"h1"`
	IntroText  string       `json:"intro_text"`
	BodyText   string       `json:"body_text"`
	Language   string       `json:"language,omitempty"`
	FetchError string       `json:"fetch_error,omitempty"`
	Embeddings FacetVectors `json:"-"`
}

// SimilarityScore holds the four per-facet cosine similarities for one
// unordered page pair (computed once, for i<j only).
type SimilarityScore struct {
	URLA  string  `json:"url_a"`
	URLB  string  `json:"url_b"`
	Title float64 `json:"title"`
	Intro float64 `json:"intro"`
	Body  float64 `json:"body"`
	Full  float64 `json:"full"`
}

// Relationship classification categories, one per pair.
const (
	RelDefiniteDuplicate        = "Definite Duplicate"
	RelNearDuplicate            = "Near Duplicate"
	RelIntentCollision          = "Intent Collision"
	RelPotentialCannibalization = "Potential Cannibalization"
	RelTemplateOverlap          = "Template Overlap"
	RelUnique                   = "Unique"
)

// ContentRelationship is the classified relationship of one page pair.
type ContentRelationship struct {
	URLA              string          `json:"url_a"`
	URLB              string          `json:"url_b"`
	Classification    string          `json:"classification"`
	Confidence        int             `json:"confidence"`
	Similarities      SimilarityScore `json:"similarities"`
	RecommendedAction string          `json:"recommended_action"`
	Reasoning         string          `json:"reasoning"`
}

// IntentCluster groups pages competing for the same search intent.
type IntentCluster struct {
	PrimaryURL  string   `json:"primary_url"`
	ClusterURLs []string `json:"cluster_urls"`
	Reasoning   string   `json:"reasoning"`
}

// ContentSimilarityResult is the final output of a similarity analysis run.
type ContentSimilarityResult struct {
	Relationships          []ContentRelationship `json:"relationships"`
	IntentCollisionClusters []IntentCluster      `json:"intent_collision_clusters"`
	PagesAnalyzed          int                   `json:"pages_analyzed"`
	PagesFailed            int                   `json:"pages_failed"`
	FailedURLs             []string              `json:"failed_urls,omitempty"`
}
