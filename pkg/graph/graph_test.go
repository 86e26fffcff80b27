package graph

import (
	"errors"
	"testing"
)

// buildTestGraph creates the five-node co-authorship fixture used across
// the analysis tests.
func buildTestGraph(t *testing.T) *Graph {
	t.Helper()

	g, err := New(false,
		[]Node{{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}, {ID: "5"}},
		[]Edge{
			{From: "1", To: "2", Weight: 2},
			{From: "1", To: "3", Weight: 1},
			{From: "2", To: "4", Weight: 1},
			{From: "3", To: "4", Weight: 2},
			{From: "3", To: "5", Weight: 1},
			{From: "5", To: "2", Weight: 2},
		})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g
}

// TestNew_Valid tests basic construction
func TestNew_Valid(t *testing.T) {
	g := buildTestGraph(t)

	if g.NodeCount() != 5 {
		t.Errorf("Expected 5 nodes, got %d", g.NodeCount())
	}
	if g.EdgeCount() != 6 {
		t.Errorf("Expected 6 edges, got %d", g.EdgeCount())
	}
	if g.Directed() {
		t.Error("Expected undirected graph")
	}
}

// TestNew_UnknownEndpoint tests that edges referencing missing nodes fail
func TestNew_UnknownEndpoint(t *testing.T) {
	_, err := New(false,
		[]Node{{ID: "a"}, {ID: "b"}},
		[]Edge{{From: "a", To: "ghost"}})

	if err == nil {
		t.Fatal("Expected error for unknown endpoint")
	}

	var invalidEdge *InvalidEdgeError
	if !errors.As(err, &invalidEdge) {
		t.Fatalf("Expected InvalidEdgeError, got %T: %v", err, err)
	}
	if invalidEdge.Missing != "ghost" {
		t.Errorf("Expected missing endpoint %q, got %q", "ghost", invalidEdge.Missing)
	}
	if !errors.Is(err, ErrUnknownNode) {
		t.Error("Expected error to unwrap to ErrUnknownNode")
	}
}

// TestNew_DuplicateNode tests duplicate node ID rejection
func TestNew_DuplicateNode(t *testing.T) {
	_, err := New(false, []Node{{ID: "a"}, {ID: "a"}}, nil)

	if !errors.Is(err, ErrDuplicateNode) {
		t.Fatalf("Expected ErrDuplicateNode, got %v", err)
	}
}

// TestNew_EmptyNodeID tests empty node ID rejection
func TestNew_EmptyNodeID(t *testing.T) {
	_, err := New(false, []Node{{ID: ""}}, nil)

	if !errors.Is(err, ErrEmptyNodeID) {
		t.Fatalf("Expected ErrEmptyNodeID, got %v", err)
	}
}

// TestNew_NegativeWeight tests negative weight rejection
func TestNew_NegativeWeight(t *testing.T) {
	_, err := New(false,
		[]Node{{ID: "a"}, {ID: "b"}},
		[]Edge{{From: "a", To: "b", Weight: -1}})

	if !errors.Is(err, ErrBadWeight) {
		t.Fatalf("Expected ErrBadWeight, got %v", err)
	}
}

// TestNew_ZeroWeightDefaults tests that omitted weights become 1
func TestNew_ZeroWeightDefaults(t *testing.T) {
	g, err := New(false,
		[]Node{{ID: "a"}, {ID: "b"}},
		[]Edge{{From: "a", To: "b"}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	edges := g.Edges()
	if edges[0].Weight != 1 {
		t.Errorf("Expected default weight 1, got %f", edges[0].Weight)
	}
}

// TestEdges_RoundTrip tests that the edge multiset survives construction
// unchanged, parallel edges included
func TestEdges_RoundTrip(t *testing.T) {
	input := []Edge{
		{From: "a", To: "b", Weight: 1},
		{From: "a", To: "b", Weight: 2}, // parallel
		{From: "b", To: "a", Weight: 1}, // reversed duplicate, still distinct
		{From: "b", To: "c", Weight: 3},
	}
	g, err := New(false, []Node{{ID: "a"}, {ID: "b"}, {ID: "c"}}, input)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got := g.Edges()
	if len(got) != len(input) {
		t.Fatalf("Expected %d edges back, got %d", len(input), len(got))
	}
	for i, e := range input {
		if got[i].From != e.From || got[i].To != e.To || got[i].Weight != e.Weight {
			t.Errorf("Edge %d: expected %+v, got %+v", i, e, got[i])
		}
	}

	// Rebuilding from the derived edge list reproduces the graph.
	g2, err := NewFromEdges(false, got)
	if err != nil {
		t.Fatalf("NewFromEdges failed: %v", err)
	}
	if g2.EdgeCount() != g.EdgeCount() {
		t.Errorf("Round trip changed edge count: %d vs %d", g2.EdgeCount(), g.EdgeCount())
	}
}

// TestNeighbors_Undirected tests neighbor listing with parallel edges
func TestNeighbors_Undirected(t *testing.T) {
	g := buildTestGraph(t)

	neighbors := g.Neighbors("3")
	expected := map[string]bool{"1": true, "4": true, "5": true}
	if len(neighbors) != len(expected) {
		t.Fatalf("Expected %d neighbors, got %v", len(expected), neighbors)
	}
	for _, id := range neighbors {
		if !expected[id] {
			t.Errorf("Unexpected neighbor %q", id)
		}
	}
}

// TestNeighbors_Directed tests that direction is respected
func TestNeighbors_Directed(t *testing.T) {
	g, err := New(true,
		[]Node{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		[]Edge{{From: "a", To: "b"}, {From: "c", To: "a"}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if n := g.Neighbors("a"); len(n) != 1 || n[0] != "b" {
		t.Errorf("Expected out-neighbors [b], got %v", n)
	}
	if arcs := g.InArcs("a"); len(arcs) != 1 || arcs[0].To != "c" {
		t.Errorf("Expected in-arc from c, got %v", arcs)
	}
}

// TestNewFromEdges_ImpliedNodes tests node discovery from an edge list
func TestNewFromEdges_ImpliedNodes(t *testing.T) {
	g, err := NewFromEdges(false, []Edge{
		{From: "x", To: "y"},
		{From: "y", To: "z"},
	})
	if err != nil {
		t.Fatalf("NewFromEdges failed: %v", err)
	}

	if g.NodeCount() != 3 {
		t.Errorf("Expected 3 implied nodes, got %d", g.NodeCount())
	}
	ids := g.NodeIDs()
	if ids[0] != "x" || ids[1] != "y" || ids[2] != "z" {
		t.Errorf("Expected first-seen order [x y z], got %v", ids)
	}
}

// TestNode_Attrs tests attribute carry-through
func TestNode_Attrs(t *testing.T) {
	g, err := New(false,
		[]Node{{ID: "a", Attrs: map[string]any{"department": "sociology"}}},
		nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	node, ok := g.Node("a")
	if !ok {
		t.Fatal("Expected node a to exist")
	}
	if node.Attrs["department"] != "sociology" {
		t.Errorf("Expected department attr, got %v", node.Attrs)
	}
}
