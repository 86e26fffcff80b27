package centrality

import (
	"math"
	"testing"

	"github.com/dd0wney/cluso-netmetrics/pkg/graph"
)

// buildCoauthorGraph builds the five-author collaboration network used
// throughout these tests. Weights count co-authored papers, so they behave
// like parallel-edge multiplicities.
func buildCoauthorGraph(t *testing.T) *graph.Graph {
	t.Helper()

	nodes := []graph.Node{
		{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}, {ID: "5"},
	}
	edges := []graph.Edge{
		{From: "1", To: "2", Weight: 2},
		{From: "1", To: "3", Weight: 1},
		{From: "2", To: "4", Weight: 1},
		{From: "3", To: "4", Weight: 2},
		{From: "3", To: "5", Weight: 1},
		{From: "5", To: "2", Weight: 2},
	}

	g, err := graph.New(false, nodes, edges)
	if err != nil {
		t.Fatalf("Failed to build coauthor graph: %v", err)
	}
	return g
}

// buildChain builds the path a-b-c with unit weights.
func buildChain(t *testing.T) *graph.Graph {
	t.Helper()

	g, err := graph.NewFromEdges(false, []graph.Edge{
		{From: "a", To: "b", Weight: 1},
		{From: "b", To: "c", Weight: 1},
	})
	if err != nil {
		t.Fatalf("Failed to build chain: %v", err)
	}
	return g
}

// buildStar builds a star with one hub and three leaves, unit weights.
func buildStar(t *testing.T) *graph.Graph {
	t.Helper()

	g, err := graph.NewFromEdges(false, []graph.Edge{
		{From: "hub", To: "l1", Weight: 1},
		{From: "hub", To: "l2", Weight: 1},
		{From: "hub", To: "l3", Weight: 1},
	})
	if err != nil {
		t.Fatalf("Failed to build star: %v", err)
	}
	return g
}

// checkScores compares a score map against expected values within tolerance.
func checkScores(t *testing.T, got, want map[string]float64, tolerance float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("Expected %d scores, got %d: %v", len(want), len(got), got)
	}
	for id, expected := range want {
		actual, ok := got[id]
		if !ok {
			t.Errorf("Missing score for node %s", id)
			continue
		}
		if math.Abs(actual-expected) > tolerance {
			t.Errorf("Node %s: expected %f, got %f", id, expected, actual)
		}
	}
}
