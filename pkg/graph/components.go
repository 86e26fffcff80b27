package graph

import "container/list"

// Components returns the connected components of the graph under undirected
// reachability (edge direction is ignored for directed graphs). Components
// are listed in order of their first member's insertion, and members appear
// in BFS discovery order.
func (g *Graph) Components() [][]string {
	visited := make(map[string]bool, len(g.order))
	components := make([][]string, 0)

	for _, start := range g.order {
		if visited[start] {
			continue
		}

		members := make([]string, 0)
		queue := list.New()
		queue.PushBack(start)
		visited[start] = true

		for queue.Len() > 0 {
			id, ok := queue.Remove(queue.Front()).(string)
			if !ok {
				continue
			}
			members = append(members, id)

			for _, arc := range g.adjOut[id] {
				if !visited[arc.To] {
					visited[arc.To] = true
					queue.PushBack(arc.To)
				}
			}
			if g.directed {
				for _, arc := range g.adjIn[id] {
					if !visited[arc.To] {
						visited[arc.To] = true
						queue.PushBack(arc.To)
					}
				}
			}
		}

		components = append(components, members)
	}

	return components
}

// Connected reports whether the graph has at most one connected component
// under undirected reachability. The empty graph is connected.
func (g *Graph) Connected() bool {
	return len(g.Components()) <= 1
}

// LargestComponent returns the member IDs of the largest connected
// component. Ties break toward the earliest component. Returns nil for the
// empty graph.
func (g *Graph) LargestComponent() []string {
	var largest []string
	for _, members := range g.Components() {
		if len(members) > len(largest) {
			largest = members
		}
	}
	return largest
}

// Subgraph builds a new graph restricted to the given node IDs, keeping
// every edge whose endpoints both survive. Node attributes and edge
// multiplicities carry over; directedness is inherited.
//
// Fails with InvalidEdgeError-style ErrUnknownNode if an ID does not name a
// node of the receiver.
func (g *Graph) Subgraph(ids []string) (*Graph, error) {
	keep := make(map[string]bool, len(ids))
	nodes := make([]Node, 0, len(ids))
	for _, id := range ids {
		n, ok := g.nodes[id]
		if !ok {
			return nil, &NodeError{ID: id, Cause: ErrUnknownNode}
		}
		if keep[id] {
			continue
		}
		keep[id] = true
		nodes = append(nodes, *n)
	}

	edges := make([]Edge, 0)
	for _, e := range g.edges {
		if keep[e.From] && keep[e.To] {
			edges = append(edges, e)
		}
	}

	return New(g.directed, nodes, edges)
}
