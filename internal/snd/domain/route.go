package domain

// Route is a fixed sequence of street-network nodes a bus can traverse.
type Route struct {
	Name  string `json:"name"`
	Nodes []int  `json:"nodes"`
}

// NewRoute validates the node sequence before constructing the route.
func NewRoute(name string, nodes []int) (Route, error) {
	if len(nodes) < 2 {
		return Route{}, ErrRouteTooShort
	}
	return Route{Name: name, Nodes: nodes}, nil
}

// Len is the number of segments, one less than the node count.
func (r Route) Len() int {
	return len(r.Nodes) - 1
}

// Contains reports whether the route passes through the given node.
func (r Route) Contains(node int) bool {
	for _, n := range r.Nodes {
		if n == node {
			return true
		}
	}
	return false
}

// Segments returns the consecutive (from, to) node pairs along the route.
func (r Route) Segments() [][2]int {
	segs := make([][2]int, 0, r.Len())
	for i := 0; i+1 < len(r.Nodes); i++ {
		segs = append(segs, [2]int{r.Nodes[i], r.Nodes[i+1]})
	}
	return segs
}
