package graph

import "sort"

// EdgeTypeBus tags directed service edges contributed by a bus assigned to a
// route.
const EdgeTypeBus = "bus"

// ServiceEdge is one directed edge of a service network. Bus edges carry the
// route they belong to and the discomfort level of the bus producing them.
type ServiceEdge struct {
	From       int     `json:"from"`
	To         int     `json:"to"`
	Weight     float64 `json:"weight"`
	Type       string  `json:"type"`
	RouteID    string  `json:"route_id,omitempty"`
	Discomfort int     `json:"discomfort,omitempty"`
}

// ServiceNetwork is a directed multigraph overlaying bus service on a street
// network. Parallel edges are kept: each bus on a route contributes its own
// edge per segment, modelling added frequency rather than a single canonical
// link.
type ServiceNetwork struct {
	adj   map[int][]ServiceEdge
	nodes map[int]struct{}
}

func NewServiceNetwork() *ServiceNetwork {
	return &ServiceNetwork{
		adj:   map[int][]ServiceEdge{},
		nodes: map[int]struct{}{},
	}
}

// AddEdge appends a directed edge. Existing parallel edges between the same
// node pair are kept.
func (g *ServiceNetwork) AddEdge(e ServiceEdge) {
	g.adj[e.From] = append(g.adj[e.From], e)
	g.nodes[e.From] = struct{}{}
	g.nodes[e.To] = struct{}{}
}

// OutEdges returns the directed edges leaving n in insertion order.
func (g *ServiceNetwork) OutEdges(n int) []ServiceEdge {
	return g.adj[n]
}

func (g *ServiceNetwork) HasNode(n int) bool {
	_, ok := g.nodes[n]
	return ok
}

// Nodes returns all node ids in ascending order.
func (g *ServiceNetwork) Nodes() []int {
	nodes := make([]int, 0, len(g.nodes))
	for n := range g.nodes {
		nodes = append(nodes, n)
	}
	sort.Ints(nodes)
	return nodes
}

// NumEdges counts directed edges including parallels.
func (g *ServiceNetwork) NumEdges() int {
	total := 0
	for _, out := range g.adj {
		total += len(out)
	}
	return total
}
