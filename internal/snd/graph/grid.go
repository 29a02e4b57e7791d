package graph

// Position is a 2D layout coordinate for a street-network node. The engine
// never reads positions; they exist for diagram consumers.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewGrid builds an m-by-n street grid with unit edge weights. Nodes are
// numbered row-major starting at 0. The returned layout places each node at
// (col, -row) so diagrams read top-down.
func NewGrid(m, n int) (*Street, map[int]Position) {
	g := NewStreet()
	node := func(i, j int) int { return i*n + j }

	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if i > 0 {
				g.AddEdge(node(i, j), node(i-1, j), 1)
			}
			if j > 0 {
				g.AddEdge(node(i, j), node(i, j-1), 1)
			}
		}
	}

	pos := make(map[int]Position, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			pos[node(i, j)] = Position{X: float64(j), Y: float64(-i)}
		}
	}

	return g, pos
}
