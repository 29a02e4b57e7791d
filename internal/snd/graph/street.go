package graph

import "sort"

// EdgeTypeDistance tags structural-only street edges that must not be carried
// into a service network as traversable service.
const EdgeTypeDistance = "distance"

// EdgeAttrs are the attributes attached to one undirected street edge.
type EdgeAttrs struct {
	Weight   float64
	Weighted bool
	Length   float64
	Type     string
}

// StreetEdge is one undirected street edge with its endpoints, reported once
// per edge by Edges.
type StreetEdge struct {
	U, V  int
	Attrs EdgeAttrs
}

// Street is an undirected weighted street network. The evaluation engine
// treats it as read-only once a design has been constructed around it.
type Street struct {
	adj map[int]map[int]*EdgeAttrs
}

func NewStreet() *Street {
	return &Street{adj: map[int]map[int]*EdgeAttrs{}}
}

// AddEdge adds an undirected weighted edge, overwriting any existing edge
// between the two nodes.
func (g *Street) AddEdge(u, v int, weight float64) {
	g.addEdge(u, v, &EdgeAttrs{Weight: weight, Weighted: true, Length: weight})
}

// AddUnweightedEdge adds an undirected edge carrying no weight attribute.
// Designs built over such an edge fail validation.
func (g *Street) AddUnweightedEdge(u, v int) {
	g.addEdge(u, v, &EdgeAttrs{})
}

func (g *Street) addEdge(u, v int, attrs *EdgeAttrs) {
	if g.adj[u] == nil {
		g.adj[u] = map[int]*EdgeAttrs{}
	}
	if g.adj[v] == nil {
		g.adj[v] = map[int]*EdgeAttrs{}
	}
	g.adj[u][v] = attrs
	g.adj[v][u] = attrs
}

// SetEdgeType tags the edge between u and v, e.g. with EdgeTypeDistance.
// Missing edges are ignored.
func (g *Street) SetEdgeType(u, v int, edgeType string) {
	if attrs, ok := g.adj[u][v]; ok {
		attrs.Type = edgeType
	}
}

func (g *Street) HasNode(n int) bool {
	_, ok := g.adj[n]
	return ok
}

func (g *Street) HasEdge(u, v int) bool {
	_, ok := g.adj[u][v]
	return ok
}

// EdgeWeight returns the weight of the edge between u and v. The second
// result is false when the edge is absent or carries no weight attribute.
func (g *Street) EdgeWeight(u, v int) (float64, bool) {
	attrs, ok := g.adj[u][v]
	if !ok || !attrs.Weighted {
		return 0, false
	}
	return attrs.Weight, true
}

// Nodes returns all node ids in ascending order.
func (g *Street) Nodes() []int {
	nodes := make([]int, 0, len(g.adj))
	for n := range g.adj {
		nodes = append(nodes, n)
	}
	sort.Ints(nodes)
	return nodes
}

// Edges returns every undirected edge exactly once, ordered by endpoints.
func (g *Street) Edges() []StreetEdge {
	var edges []StreetEdge
	for _, u := range g.Nodes() {
		for v, attrs := range g.adj[u] {
			if u < v {
				edges = append(edges, StreetEdge{U: u, V: v, Attrs: *attrs})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})
	return edges
}

// HasPath reports whether v is reachable from u, ignoring weights.
func (g *Street) HasPath(u, v int) bool {
	if !g.HasNode(u) || !g.HasNode(v) {
		return false
	}
	if u == v {
		return true
	}
	visited := map[int]bool{u: true}
	queue := []int{u}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for next := range g.adj[n] {
			if next == v {
				return true
			}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}
