package graph

// Node represents an entity in the network. ID must be unique and stable
// within a graph. Attrs carries optional metadata (e.g. department, gender)
// and is never interpreted by the analysis code.
type Node struct {
	ID    string
	Attrs map[string]any
}

// Edge represents a tie between two nodes. For undirected graphs From/To
// ordering is preserved as supplied but carries no semantic meaning. Weight
// must be non-negative; a zero weight is treated as the default multiplicity
// of 1. Parallel edges between the same pair are permitted and accumulate as
// weight for adjacency purposes.
type Edge struct {
	From   string
	To     string
	Weight float64
	Attrs  map[string]any
}

// Arc is a directed half-edge as seen from one endpoint. Undirected edges
// produce one arc in each direction. Parallel edges produce parallel arcs.
type Arc struct {
	To     string
	Weight float64
}

// Graph is an immutable snapshot of a network: a set of nodes, a multiset of
// edges and a directedness flag. All analysis functions treat it as
// read-only; there is no mutation API after construction.
type Graph struct {
	directed bool

	order []string         // node IDs in insertion order
	nodes map[string]*Node // node ID -> node

	edges []Edge // multiset, input order preserved

	adjOut map[string][]Arc // undirected: both directions live here
	adjIn  map[string][]Arc // directed graphs only
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of edges in the multiset (parallel edges
// count individually, weights do not).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// NodeIDs returns all node identifiers in insertion order.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, len(g.order))
	copy(ids, g.order)
	return ids
}

// HasNode reports whether the identifier names a node in this graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Node returns the node with the given identifier.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Edges returns a copy of the edge multiset in input order. Together with
// NodeIDs this reproduces exactly the tabular data the graph was built from.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)
	return edges
}

// Arcs returns the outgoing arcs of a node: one arc per incident edge, with
// undirected edges visible from both endpoints. The returned slice must not
// be modified.
func (g *Graph) Arcs(id string) []Arc {
	return g.adjOut[id]
}

// InArcs returns the incoming arcs of a node. For undirected graphs this is
// the same row as Arcs.
func (g *Graph) InArcs(id string) []Arc {
	if !g.directed {
		return g.adjOut[id]
	}
	return g.adjIn[id]
}

// Neighbors returns the distinct adjacent node IDs of a node (out-neighbors
// for directed graphs), in first-seen order. Parallel edges contribute one
// entry.
func (g *Graph) Neighbors(id string) []string {
	seen := make(map[string]bool)
	neighbors := make([]string, 0, len(g.adjOut[id]))
	for _, arc := range g.adjOut[id] {
		if !seen[arc.To] {
			seen[arc.To] = true
			neighbors = append(neighbors, arc.To)
		}
	}
	return neighbors
}
