package similarity

import (
	"testing"

	"github.com/dtnitsch/llm-readability/models"
)

func collision(a, b string) models.ContentRelationship {
	return models.ContentRelationship{
		URLA:           a,
		URLB:           b,
		Classification: models.RelIntentCollision,
	}
}

func TestIdentifyIntentClustersTransitive(t *testing.T) {
	// A-B and B-C collide; no A-C edge, still one cluster of three.
	relationships := []models.ContentRelationship{
		collision("https://example.com/a", "https://example.com/b"),
		collision("https://example.com/b", "https://example.com/c"),
	}

	clusters := IdentifyIntentClusters(relationships)

	if len(clusters) != 1 {
		t.Fatalf("got %d clusters, want 1", len(clusters))
	}
	cluster := clusters[0]
	if cluster.PrimaryURL != "https://example.com/a" {
		t.Errorf("PrimaryURL = %q, want the first-seen URL", cluster.PrimaryURL)
	}
	if len(cluster.ClusterURLs) != 2 {
		t.Errorf("ClusterURLs = %v, want the 2 remaining URLs", cluster.ClusterURLs)
	}
}

func TestIdentifyIntentClustersSeparateComponents(t *testing.T) {
	relationships := []models.ContentRelationship{
		collision("https://example.com/a", "https://example.com/b"),
		collision("https://example.com/x", "https://example.com/y"),
	}

	clusters := IdentifyIntentClusters(relationships)
	if len(clusters) != 2 {
		t.Fatalf("got %d clusters, want 2", len(clusters))
	}
}

func TestIdentifyIntentClustersIgnoresOtherCategories(t *testing.T) {
	relationships := []models.ContentRelationship{
		{
			URLA:           "https://example.com/a",
			URLB:           "https://example.com/b",
			Classification: models.RelDefiniteDuplicate,
		},
		{
			URLA:           "https://example.com/c",
			URLB:           "https://example.com/d",
			Classification: models.RelUnique,
		},
	}

	if clusters := IdentifyIntentClusters(relationships); len(clusters) != 0 {
		t.Errorf("got %d clusters from non-collision edges, want 0", len(clusters))
	}
}

func TestIdentifyIntentClustersEmptyInput(t *testing.T) {
	if clusters := IdentifyIntentClusters(nil); len(clusters) != 0 {
		t.Errorf("got %d clusters from empty input, want 0", len(clusters))
	}
}

func TestIdentifyIntentClustersIsPerCall(t *testing.T) {
	relationships := []models.ContentRelationship{
		collision("https://example.com/a", "https://example.com/b"),
	}

	first := IdentifyIntentClusters(relationships)
	second := IdentifyIntentClusters(relationships)

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("repeated calls: got %d then %d clusters, want 1 and 1", len(first), len(second))
	}
}
