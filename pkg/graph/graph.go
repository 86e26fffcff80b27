// Package graph provides the immutable in-memory network representation the
// analysis code operates on: nodes with string identifiers and optional
// attributes, a weighted edge multiset, and a directedness flag fixed at
// construction time.
//
// A Graph is validated once when built and never mutated afterwards, so the
// centrality functions in pkg/centrality can treat it as a stable snapshot.
package graph

// New builds a validated graph from a node list and an edge list.
// Directedness is a construction-time parameter. Undirected graphs treat
// (a,b) and (b,a) as equivalent for adjacency purposes but both are
// preserved as distinct multi-edges when both are supplied.
//
// Fails with InvalidEdgeError if an edge references an unknown node ID, with
// NodeError on empty or duplicate node IDs, and with EdgeError on negative
// weights. A zero edge weight is normalised to 1.
func New(directed bool, nodes []Node, edges []Edge) (*Graph, error) {
	g := &Graph{
		directed: directed,
		order:    make([]string, 0, len(nodes)),
		nodes:    make(map[string]*Node, len(nodes)),
		edges:    make([]Edge, 0, len(edges)),
		adjOut:   make(map[string][]Arc, len(nodes)),
	}
	if directed {
		g.adjIn = make(map[string][]Arc, len(nodes))
	}

	for _, n := range nodes {
		if n.ID == "" {
			return nil, &NodeError{ID: n.ID, Cause: ErrEmptyNodeID}
		}
		if _, exists := g.nodes[n.ID]; exists {
			return nil, &NodeError{ID: n.ID, Cause: ErrDuplicateNode}
		}
		stored := n
		g.nodes[n.ID] = &stored
		g.order = append(g.order, n.ID)
		g.adjOut[n.ID] = nil
		if directed {
			g.adjIn[n.ID] = nil
		}
	}

	for _, e := range edges {
		if !g.HasNode(e.From) {
			return nil, &InvalidEdgeError{From: e.From, To: e.To, Missing: e.From}
		}
		if !g.HasNode(e.To) {
			return nil, &InvalidEdgeError{From: e.From, To: e.To, Missing: e.To}
		}
		if e.Weight < 0 {
			return nil, &EdgeError{From: e.From, To: e.To, Cause: ErrBadWeight}
		}
		if e.Weight == 0 {
			e.Weight = 1
		}

		g.edges = append(g.edges, e)
		g.adjOut[e.From] = append(g.adjOut[e.From], Arc{To: e.To, Weight: e.Weight})
		if directed {
			g.adjIn[e.To] = append(g.adjIn[e.To], Arc{To: e.From, Weight: e.Weight})
		} else if e.From != e.To {
			// Self-loops get a single arc so traversal sees them once.
			g.adjOut[e.To] = append(g.adjOut[e.To], Arc{To: e.From, Weight: e.Weight})
		}
	}

	return g, nil
}

// NewFromEdges builds a graph whose node set is implied by the edge list:
// every endpoint becomes a node with no attributes, in first-seen order.
// Useful when the tabular source is an edge list without a node table.
func NewFromEdges(directed bool, edges []Edge) (*Graph, error) {
	seen := make(map[string]bool)
	nodes := make([]Node, 0)
	for _, e := range edges {
		if e.From != "" && !seen[e.From] {
			seen[e.From] = true
			nodes = append(nodes, Node{ID: e.From})
		}
		if e.To != "" && !seen[e.To] {
			seen[e.To] = true
			nodes = append(nodes, Node{ID: e.To})
		}
	}
	return New(directed, nodes, edges)
}
