package similarity

import (
	"fmt"

	"github.com/dtnitsch/llm-readability/models"
)

// IdentifyIntentClusters groups URLs connected by Intent Collision edges
// into clusters via breadth-first traversal. Connectivity is transitive:
// A-B and B-C collide puts all three in one cluster even without an A-C
// edge. Components below two members are discarded.
func IdentifyIntentClusters(relationships []models.ContentRelationship) []models.IntentCluster {
	adjacency := make(map[string][]string)
	var order []string // deterministic iteration over first-seen URLs

	addEdge := func(a, b string) {
		if _, seen := adjacency[a]; !seen {
			order = append(order, a)
		}
		adjacency[a] = append(adjacency[a], b)
	}

	for _, rel := range relationships {
		if rel.Classification != models.RelIntentCollision {
			continue
		}
		addEdge(rel.URLA, rel.URLB)
		addEdge(rel.URLB, rel.URLA)
	}

	visited := make(map[string]bool, len(adjacency))
	var clusters []models.IntentCluster

	for _, start := range order {
		if visited[start] {
			continue
		}

		component := bfs(start, adjacency, visited)
		if len(component) < 2 {
			// Every node in the map has at least one edge, so this should
			// not happen; enforce the minimum anyway.
			continue
		}

		clusters = append(clusters, models.IntentCluster{
			PrimaryURL:  component[0],
			ClusterURLs: component[1:],
			Reasoning: fmt.Sprintf(
				"%d pages are linked by intent collisions and compete for the same search intent.",
				len(component)),
		})
	}

	return clusters
}

// bfs walks one connected component from start, marking nodes in visited,
// and returns them in visitation order.
func bfs(start string, adjacency map[string][]string, visited map[string]bool) []string {
	queue := []string{start}
	visited[start] = true
	var component []string

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		component = append(component, node)

		for _, neighbor := range adjacency[node] {
			if !visited[neighbor] {
				visited[neighbor] = true
				queue = append(queue, neighbor)
			}
		}
	}

	return component
}
