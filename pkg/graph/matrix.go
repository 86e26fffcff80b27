package graph

import (
	"errors"
	"fmt"
)

// Matrix construction errors
var (
	ErrMatrixShape = errors.New("matrix shape does not match identifier count")
)

// AdjacencyMatrix returns the weighted adjacency matrix in NodeIDs order.
// Parallel edges accumulate as weight. Undirected edges appear symmetrically;
// an undirected self-loop contributes its weight twice on the diagonal, so
// row sums equal weighted degree in every case.
func (g *Graph) AdjacencyMatrix() [][]float64 {
	index := make(map[string]int, len(g.order))
	for i, id := range g.order {
		index[id] = i
	}

	m := make([][]float64, len(g.order))
	for i := range m {
		m[i] = make([]float64, len(g.order))
	}

	for _, e := range g.edges {
		i, j := index[e.From], index[e.To]
		m[i][j] += e.Weight
		if !g.directed {
			m[j][i] += e.Weight
		}
	}

	return m
}

// NewFromAdjacency builds a graph from a square adjacency matrix. ids names
// the rows/columns in order. Non-zero entries become edges with the entry as
// weight. For undirected graphs only the upper triangle (including the
// diagonal) is read, so a symmetric matrix round-trips without doubling.
func NewFromAdjacency(directed bool, ids []string, m [][]float64) (*Graph, error) {
	if len(m) != len(ids) {
		return nil, fmt.Errorf("adjacency: %d rows for %d ids: %w", len(m), len(ids), ErrMatrixShape)
	}

	nodes := make([]Node, len(ids))
	for i, id := range ids {
		nodes[i] = Node{ID: id}
	}

	edges := make([]Edge, 0)
	for i, row := range m {
		if len(row) != len(ids) {
			return nil, fmt.Errorf("adjacency row %d: %d columns for %d ids: %w", i, len(row), len(ids), ErrMatrixShape)
		}
		for j, w := range row {
			if w == 0 {
				continue
			}
			if !directed && j < i {
				continue
			}
			edges = append(edges, Edge{From: ids[i], To: ids[j], Weight: w})
		}
	}

	return New(directed, nodes, edges)
}

// NewFromIncidence builds a bipartite graph from an incidence matrix: rows
// are one mode (e.g. authors), columns the other (e.g. papers or groups),
// and a non-zero entry links row i to column j with the entry as weight.
// Every node gets a "mode" attribute of "row" or "column" so the two sets
// stay distinguishable. The resulting graph is undirected.
func NewFromIncidence(rowIDs, colIDs []string, m [][]float64) (*Graph, error) {
	if len(m) != len(rowIDs) {
		return nil, fmt.Errorf("incidence: %d rows for %d ids: %w", len(m), len(rowIDs), ErrMatrixShape)
	}

	nodes := make([]Node, 0, len(rowIDs)+len(colIDs))
	for _, id := range rowIDs {
		nodes = append(nodes, Node{ID: id, Attrs: map[string]any{"mode": "row"}})
	}
	for _, id := range colIDs {
		nodes = append(nodes, Node{ID: id, Attrs: map[string]any{"mode": "column"}})
	}

	edges := make([]Edge, 0)
	for i, row := range m {
		if len(row) != len(colIDs) {
			return nil, fmt.Errorf("incidence row %d: %d columns for %d ids: %w", i, len(row), len(colIDs), ErrMatrixShape)
		}
		for j, w := range row {
			if w == 0 {
				continue
			}
			edges = append(edges, Edge{From: rowIDs[i], To: colIDs[j], Weight: w})
		}
	}

	return New(false, nodes, edges)
}

// ProjectRows collapses a bipartite graph built by NewFromIncidence onto its
// row mode: two row nodes become adjacent when they share a column neighbor,
// with one edge per shared column (so co-membership accumulates as weight in
// the projection's adjacency). Column nodes are dropped.
func (g *Graph) ProjectRows() (*Graph, error) {
	isRow := func(id string) bool {
		n, ok := g.nodes[id]
		if !ok || n.Attrs == nil {
			return false
		}
		return n.Attrs["mode"] == "row"
	}

	nodes := make([]Node, 0)
	for _, id := range g.order {
		if isRow(id) {
			nodes = append(nodes, *g.nodes[id])
		}
	}

	edges := make([]Edge, 0)
	for _, id := range g.order {
		if isRow(id) {
			continue
		}
		// id is a column: link every pair of its row neighbors once.
		members := g.Neighbors(id)
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				edges = append(edges, Edge{From: members[i], To: members[j], Weight: 1})
			}
		}
	}

	return New(false, nodes, edges)
}
