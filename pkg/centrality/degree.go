package centrality

import "github.com/dd0wney/cluso-netmetrics/pkg/graph"

// DegreeOptions configures degree centrality.
type DegreeOptions struct {
	// Normalized divides each score by (n-1), the maximum possible degree in
	// a simple graph of the same order.
	Normalized bool
}

// Degree computes degree centrality for all nodes: the number of incident
// edges, with multi-edges counting multiply (an edge of weight w counts as w
// parallel ties, so weighted graphs yield weighted degree). Undirected
// self-loops count twice. For directed graphs this is in-degree plus
// out-degree; see InDegree and OutDegree for the split. O(V+E).
func Degree(g *graph.Graph, opts DegreeOptions) map[string]float64 {
	degree := make(map[string]float64, g.NodeCount())
	for _, id := range g.NodeIDs() {
		degree[id] = 0
	}

	for _, e := range g.Edges() {
		if g.Directed() {
			degree[e.From] += e.Weight
			degree[e.To] += e.Weight
		} else if e.From == e.To {
			degree[e.From] += 2 * e.Weight
		} else {
			degree[e.From] += e.Weight
			degree[e.To] += e.Weight
		}
	}

	if opts.Normalized {
		normalize(degree, g.NodeCount())
	}
	return degree
}

// InDegree computes in-degree centrality for all nodes. On undirected graphs
// it equals Degree.
func InDegree(g *graph.Graph, opts DegreeOptions) map[string]float64 {
	if !g.Directed() {
		return Degree(g, opts)
	}

	degree := make(map[string]float64, g.NodeCount())
	for _, id := range g.NodeIDs() {
		degree[id] = 0
	}
	for _, e := range g.Edges() {
		degree[e.To] += e.Weight
	}

	if opts.Normalized {
		normalize(degree, g.NodeCount())
	}
	return degree
}

// OutDegree computes out-degree centrality for all nodes. On undirected
// graphs it equals Degree.
func OutDegree(g *graph.Graph, opts DegreeOptions) map[string]float64 {
	if !g.Directed() {
		return Degree(g, opts)
	}

	degree := make(map[string]float64, g.NodeCount())
	for _, id := range g.NodeIDs() {
		degree[id] = 0
	}
	for _, e := range g.Edges() {
		degree[e.From] += e.Weight
	}

	if opts.Normalized {
		normalize(degree, g.NodeCount())
	}
	return degree
}

// normalize divides every score by (n-1). No-op for graphs too small for the
// factor to be defined.
func normalize(scores map[string]float64, n int) {
	if n < 2 {
		return
	}
	for id := range scores {
		scores[id] /= float64(n - 1)
	}
}
