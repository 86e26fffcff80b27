// Package centrality implements the standard node importance measures over
// an immutable graph snapshot: degree, betweenness (Brandes), closeness and
// eigenvector (power iteration). All functions are pure and synchronous;
// results are plain node-ID-to-score maps ready for handoff to external
// rendering or export collaborators.
package centrality

import (
	"errors"

	"github.com/dd0wney/cluso-netmetrics/pkg/graph"
)

// topN is how many ranked nodes Result carries per measure.
const topN = 10

// Options aggregates per-measure configuration for ComputeAll.
type Options struct {
	Degree      DegreeOptions
	Betweenness BetweennessOptions
	Closeness   ClosenessOptions
	Eigenvector EigenvectorOptions
}

// Result contains all centrality measures for a graph.
type Result struct {
	Degree      map[string]float64 `json:"degree"`
	Betweenness map[string]float64 `json:"betweenness"`
	Closeness   map[string]float64 `json:"closeness"`
	Eigenvector map[string]float64 `json:"eigenvector"`

	TopByDegree      []RankedNode `json:"top_by_degree"`
	TopByBetweenness []RankedNode `json:"top_by_betweenness"`
	TopByCloseness   []RankedNode `json:"top_by_closeness"`
	TopByEigenvector []RankedNode `json:"top_by_eigenvector"`

	// Disconnected is set when closeness ran on a disconnected graph
	// without the largest-component opt-in; the closeness scores then cover
	// each node's own reachable set (see DisconnectedGraphWarning).
	Disconnected bool `json:"disconnected,omitempty"`

	// EigenvectorIterations records how many power iteration rounds were
	// needed.
	EigenvectorIterations int `json:"eigenvector_iterations"`
}

// ComputeAll computes every measure over one snapshot. A closeness
// disconnection advisory is recorded on the result rather than returned;
// eigenvector non-convergence is fatal.
func ComputeAll(g *graph.Graph, opts Options) (*Result, error) {
	degree := Degree(g, opts.Degree)
	betweenness := Betweenness(g, opts.Betweenness)

	closeness, err := Closeness(g, opts.Closeness)
	disconnected := false
	if err != nil {
		if !errors.Is(err, ErrDisconnected) {
			return nil, err
		}
		disconnected = true
	}

	eigen, err := Eigenvector(g, opts.Eigenvector)
	if err != nil {
		return nil, err
	}

	return &Result{
		Degree:      degree,
		Betweenness: betweenness,
		Closeness:   closeness,
		Eigenvector: eigen.Scores,

		TopByDegree:      TopNodes(degree, topN),
		TopByBetweenness: TopNodes(betweenness, topN),
		TopByCloseness:   TopNodes(closeness, topN),
		TopByEigenvector: TopNodes(eigen.Scores, topN),

		Disconnected:          disconnected,
		EigenvectorIterations: eigen.Iterations,
	}, nil
}
