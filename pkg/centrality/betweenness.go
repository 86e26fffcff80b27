package centrality

import (
	"container/heap"
	"container/list"
	"math"

	"github.com/dd0wney/cluso-netmetrics/pkg/graph"
)

// BetweennessOptions configures betweenness centrality.
type BetweennessOptions struct {
	// Weighted interprets edge weights as traversal costs and builds the
	// shortest-path trees with Dijkstra expansion instead of BFS. Weights
	// must be non-negative, which graph construction guarantees.
	Weighted bool

	// Normalized divides each score by the number of node pairs that could
	// route through a node: (n-1)(n-2)/2 undirected, (n-1)(n-2) directed.
	Normalized bool
}

// Betweenness computes betweenness centrality for all nodes via Brandes'
// algorithm: one shortest-path expansion per source with dependency
// back-propagation, splitting ties among multiple shortest paths
// proportionally. Scores are raw pair sums unless Normalized is set.
// O(V*E) unweighted, O(V*E*log V) weighted. Any node of a graph with two or
// fewer nodes scores 0.
func Betweenness(g *graph.Graph, opts BetweennessOptions) map[string]float64 {
	nodeIDs := g.NodeIDs()
	betweenness := make(map[string]float64, len(nodeIDs))
	for _, id := range nodeIDs {
		betweenness[id] = 0
	}

	adj := collapseArcs(g)

	for _, source := range nodeIDs {
		var stack []string
		var predecessors map[string][]string
		var sigma map[string]float64

		if opts.Weighted {
			stack, predecessors, sigma = dijkstraExpand(nodeIDs, adj, source)
		} else {
			stack, predecessors, sigma = bfsExpand(nodeIDs, adj, source)
		}

		// Back-propagation: accumulate dependency onto predecessors.
		delta := make(map[string]float64, len(stack))
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, pred := range predecessors[w] {
				delta[pred] += (sigma[pred] / sigma[w]) * (1.0 + delta[w])
			}
			if w != source {
				betweenness[w] += delta[w]
			}
		}
	}

	// Symmetric expansion visits each unordered pair from both ends.
	if !g.Directed() {
		for id := range betweenness {
			betweenness[id] /= 2
		}
	}

	if opts.Normalized && len(nodeIDs) > 2 {
		n := float64(len(nodeIDs))
		factor := (n - 1) * (n - 2)
		if !g.Directed() {
			factor /= 2
		}
		for id := range betweenness {
			betweenness[id] /= factor
		}
	}

	return betweenness
}

// collapseArcs folds parallel arcs into one entry per distinct neighbor,
// keeping the minimum traversal cost. Multi-edge multiplicity matters for
// degree and adjacency, but a parallel group is a single hop for geodesics.
func collapseArcs(g *graph.Graph) map[string][]graph.Arc {
	adj := make(map[string][]graph.Arc, g.NodeCount())
	for _, id := range g.NodeIDs() {
		best := make(map[string]float64)
		order := make([]string, 0)
		for _, arc := range g.Arcs(id) {
			if arc.To == id {
				continue // self-loops never lie on a shortest path
			}
			if cost, seen := best[arc.To]; !seen || arc.Weight < cost {
				if !seen {
					order = append(order, arc.To)
				}
				best[arc.To] = arc.Weight
			}
		}
		arcs := make([]graph.Arc, 0, len(order))
		for _, to := range order {
			arcs = append(arcs, graph.Arc{To: to, Weight: best[to]})
		}
		adj[id] = arcs
	}
	return adj
}

// bfsExpand runs the unweighted single-source phase of Brandes' algorithm.
// Returns nodes in non-decreasing distance order, shortest-path predecessor
// lists, and geodesic counts.
func bfsExpand(nodeIDs []string, adj map[string][]graph.Arc, source string) (stack []string, predecessors map[string][]string, sigma map[string]float64) {
	stack = make([]string, 0, len(nodeIDs))
	predecessors = make(map[string][]string, len(nodeIDs))
	sigma = map[string]float64{source: 1}
	distance := map[string]int{source: 0}

	queue := list.New()
	queue.PushBack(source)

	for queue.Len() > 0 {
		v, ok := queue.Remove(queue.Front()).(string)
		if !ok {
			continue
		}
		stack = append(stack, v)

		for _, arc := range adj[v] {
			w := arc.To
			if _, seen := distance[w]; !seen {
				distance[w] = distance[v] + 1
				queue.PushBack(w)
			}
			if distance[w] == distance[v]+1 {
				sigma[w] += sigma[v]
				predecessors[w] = append(predecessors[w], v)
			}
		}
	}

	return stack, predecessors, sigma
}

// distItem is a priority queue entry for the weighted expansion.
type distItem struct {
	id   string
	dist float64
}

// distHeap implements a min-heap of distItem by distance.
type distHeap []distItem

func (h distHeap) Len() int           { return len(h) }
func (h distHeap) Less(i, j int) bool { return h[i].dist < h[j].dist }
func (h distHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *distHeap) Push(x any) {
	*h = append(*h, x.(distItem))
}

func (h *distHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// distEpsilon absorbs float error when comparing path lengths for ties.
const distEpsilon = 1e-9

// dijkstraExpand runs the weighted single-source phase of Brandes'
// algorithm: a shortest-path tree over non-negative costs with proportional
// geodesic counting.
func dijkstraExpand(nodeIDs []string, adj map[string][]graph.Arc, source string) (stack []string, predecessors map[string][]string, sigma map[string]float64) {
	stack = make([]string, 0, len(nodeIDs))
	predecessors = make(map[string][]string, len(nodeIDs))
	sigma = map[string]float64{source: 1}
	distance := make(map[string]float64, len(nodeIDs))
	settled := make(map[string]bool, len(nodeIDs))

	h := &distHeap{{id: source, dist: 0}}
	heap.Init(h)
	distance[source] = 0

	for h.Len() > 0 {
		item := heap.Pop(h).(distItem)
		if settled[item.id] {
			continue
		}
		settled[item.id] = true
		stack = append(stack, item.id)

		for _, arc := range adj[item.id] {
			w := arc.To
			candidate := item.dist + arc.Weight

			current, seen := distance[w]
			switch {
			case !seen || candidate < current-distEpsilon:
				distance[w] = candidate
				sigma[w] = sigma[item.id]
				predecessors[w] = []string{item.id}
				heap.Push(h, distItem{id: w, dist: candidate})
			case math.Abs(candidate-current) <= distEpsilon:
				sigma[w] += sigma[item.id]
				predecessors[w] = append(predecessors[w], item.id)
			}
		}
	}

	return stack, predecessors, sigma
}
