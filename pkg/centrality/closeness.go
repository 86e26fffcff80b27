package centrality

import (
	"container/list"

	"github.com/dd0wney/cluso-netmetrics/pkg/graph"
)

// ClosenessOptions configures closeness centrality.
type ClosenessOptions struct {
	// LargestComponentOnly restricts the computation to the largest
	// connected component when the graph is disconnected: only its members
	// receive scores, measured within that subgraph. Without this opt-in a
	// disconnected graph still yields scores (each node against its own
	// reachable set) but the call returns a DisconnectedGraphWarning
	// advisory alongside them.
	LargestComponentOnly bool
}

// Closeness computes closeness centrality for all nodes:
//
//	closeness(v) = (n-1) / sum of geodesic distances from v
//
// where n counts the nodes reachable from v, v included. Distances are hop
// counts; edge direction is respected on directed graphs. Every node of a
// complete graph scores exactly 1. Isolated nodes score 0.
//
// On a disconnected graph the returned error is a non-nil
// *DisconnectedGraphWarning unless LargestComponentOnly is set; the scores
// are still valid in that case. Any other error is fatal and comes with a
// nil map.
func Closeness(g *graph.Graph, opts ClosenessOptions) (map[string]float64, error) {
	components := g.Components()

	if len(components) > 1 && opts.LargestComponentOnly {
		largest := g.LargestComponent()
		sub, err := g.Subgraph(largest)
		if err != nil {
			return nil, err
		}
		return closenessScores(sub), nil
	}

	scores := closenessScores(g)
	if len(components) > 1 {
		return scores, &DisconnectedGraphWarning{Components: len(components)}
	}
	return scores, nil
}

// closenessScores measures every node against its reachable set.
func closenessScores(g *graph.Graph) map[string]float64 {
	nodeIDs := g.NodeIDs()
	closeness := make(map[string]float64, len(nodeIDs))

	for _, source := range nodeIDs {
		distance := map[string]int{source: 0}

		queue := list.New()
		queue.PushBack(source)

		for queue.Len() > 0 {
			v, ok := queue.Remove(queue.Front()).(string)
			if !ok {
				continue
			}
			for _, arc := range g.Arcs(v) {
				if _, seen := distance[arc.To]; !seen {
					distance[arc.To] = distance[v] + 1
					queue.PushBack(arc.To)
				}
			}
		}

		total := 0
		for _, d := range distance {
			total += d
		}

		if total > 0 {
			// len(distance) counts the reachable set including source.
			closeness[source] = float64(len(distance)-1) / float64(total)
		} else {
			closeness[source] = 0
		}
	}

	return closeness
}
