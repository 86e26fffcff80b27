package centrality

import (
	"errors"
	"math"
	"testing"

	"github.com/dd0wney/cluso-netmetrics/pkg/graph"
)

// TestEigenvector_StarHub tests that the hub dominates a star
func TestEigenvector_StarHub(t *testing.T) {
	g := buildStar(t)

	result, err := Eigenvector(g, DefaultEigenvectorOptions())
	if err != nil {
		t.Fatalf("Eigenvector failed: %v", err)
	}

	if result.Scores["hub"] != 1 {
		t.Errorf("Expected the hub to hold the maximum score 1, got %f", result.Scores["hub"])
	}

	// Leaves are interchangeable and sit at 1/sqrt(3) of the hub.
	expected := 1 / math.Sqrt(3)
	for _, leaf := range []string{"l1", "l2", "l3"} {
		if math.Abs(result.Scores[leaf]-expected) > 1e-3 {
			t.Errorf("Leaf %s: expected ~%f, got %f", leaf, expected, result.Scores[leaf])
		}
	}

	if result.Iterations <= 0 || result.Iterations > 100 {
		t.Errorf("Implausible iteration count %d", result.Iterations)
	}
}

// TestEigenvector_CoauthorGraph tests score shape on the fixture
func TestEigenvector_CoauthorGraph(t *testing.T) {
	g := buildCoauthorGraph(t)

	result, err := Eigenvector(g, DefaultEigenvectorOptions())
	if err != nil {
		t.Fatalf("Eigenvector failed: %v", err)
	}

	max := 0.0
	for id, score := range result.Scores {
		if score <= 0 || score > 1 {
			t.Errorf("Node %s: score %f outside (0, 1]", id, score)
		}
		if score > max {
			max = score
		}
	}
	if max != 1 {
		t.Errorf("Expected the maximum score to be exactly 1, got %f", max)
	}
}

// TestEigenvector_RescaleInvariance tests that uniform weight scaling is a no-op
func TestEigenvector_RescaleInvariance(t *testing.T) {
	base := buildCoauthorGraph(t)

	scaled := make([]graph.Edge, 0)
	for _, e := range base.Edges() {
		e.Weight *= 10
		scaled = append(scaled, e)
	}
	g, err := graph.NewFromEdges(false, scaled)
	if err != nil {
		t.Fatalf("Failed to build scaled graph: %v", err)
	}

	baseResult, err := Eigenvector(base, DefaultEigenvectorOptions())
	if err != nil {
		t.Fatalf("Eigenvector failed on base graph: %v", err)
	}
	scaledResult, err := Eigenvector(g, DefaultEigenvectorOptions())
	if err != nil {
		t.Fatalf("Eigenvector failed on scaled graph: %v", err)
	}

	for id, score := range baseResult.Scores {
		if math.Abs(score-scaledResult.Scores[id]) > 1e-3 {
			t.Errorf("Node %s: score changed under uniform rescaling: %f vs %f",
				id, score, scaledResult.Scores[id])
		}
	}
}

// TestEigenvector_NonConvergence tests the iteration cap failure mode
func TestEigenvector_NonConvergence(t *testing.T) {
	g := buildChain(t)

	result, err := Eigenvector(g, EigenvectorOptions{
		MaxIterations: 1,
		Tolerance:     1e-12,
	})
	if err == nil {
		t.Fatal("Expected non-convergence after a single iteration")
	}
	if result != nil {
		t.Errorf("Expected no partial result on failure, got %+v", result)
	}

	if !errors.Is(err, ErrNonConvergence) {
		t.Fatalf("Expected ErrNonConvergence in chain, got %v", err)
	}
	var ncErr *NonConvergenceError
	if !errors.As(err, &ncErr) {
		t.Fatalf("Expected *NonConvergenceError, got %T", err)
	}
	if ncErr.Iterations != 1 {
		t.Errorf("Expected the cap of 1 in the error, got %d", ncErr.Iterations)
	}
	if ncErr.Delta <= ncErr.Tolerance {
		t.Errorf("Reported delta %g should exceed tolerance %g", ncErr.Delta, ncErr.Tolerance)
	}
}

// TestEigenvector_Defaults tests that zero options fall back to the defaults
func TestEigenvector_Defaults(t *testing.T) {
	g := buildStar(t)

	result, err := Eigenvector(g, EigenvectorOptions{})
	if err != nil {
		t.Fatalf("Eigenvector with zero options failed: %v", err)
	}
	if result.Scores["hub"] != 1 {
		t.Errorf("Expected hub score 1 under defaults, got %f", result.Scores["hub"])
	}
}

// TestEigenvector_IsolatedNode tests the zero convention
func TestEigenvector_IsolatedNode(t *testing.T) {
	g, err := graph.New(false,
		[]graph.Node{{ID: "a"}, {ID: "b"}, {ID: "x"}},
		[]graph.Edge{{From: "a", To: "b", Weight: 1}})
	if err != nil {
		t.Fatalf("Failed to build graph: %v", err)
	}

	result, eErr := Eigenvector(g, DefaultEigenvectorOptions())
	if eErr != nil {
		t.Fatalf("Eigenvector failed: %v", eErr)
	}
	if result.Scores["x"] != 0 {
		t.Errorf("Expected 0 for isolated node, got %f", result.Scores["x"])
	}
	if result.Scores["a"] != 1 || result.Scores["b"] != 1 {
		t.Errorf("Expected the symmetric pair to score 1 each, got a=%f b=%f",
			result.Scores["a"], result.Scores["b"])
	}
}

// TestEigenvector_EmptyGraph tests the trivial case
func TestEigenvector_EmptyGraph(t *testing.T) {
	g, err := graph.New(false, nil, nil)
	if err != nil {
		t.Fatalf("Failed to build empty graph: %v", err)
	}

	result, eErr := Eigenvector(g, DefaultEigenvectorOptions())
	if eErr != nil {
		t.Fatalf("Eigenvector failed on empty graph: %v", eErr)
	}
	if len(result.Scores) != 0 {
		t.Errorf("Expected no scores, got %v", result.Scores)
	}
}
