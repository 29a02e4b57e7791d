package graph

import "container/heap"

// ShortestPath runs Dijkstra from origin to destination over edge weights and
// returns the edges of a minimum-weight path in traversal order. When two
// paths tie exactly, the first relaxation wins, which makes the result
// deterministic for a fixed edge insertion order. Returns ok=false when the
// destination is unreachable.
func (g *ServiceNetwork) ShortestPath(origin, destination int) ([]ServiceEdge, bool) {
	if !g.HasNode(origin) || !g.HasNode(destination) {
		return nil, false
	}
	if origin == destination {
		return []ServiceEdge{}, true
	}

	dist := map[int]float64{origin: 0}
	prev := map[int]ServiceEdge{}
	done := map[int]bool{}

	pq := &nodeQueue{{node: origin, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(nodeItem)
		if done[item.node] {
			continue
		}
		done[item.node] = true
		if item.node == destination {
			break
		}

		for _, e := range g.adj[item.node] {
			if done[e.To] {
				continue
			}
			alt := item.dist + e.Weight
			if d, seen := dist[e.To]; !seen || alt < d {
				dist[e.To] = alt
				prev[e.To] = e
				heap.Push(pq, nodeItem{node: e.To, dist: alt})
			}
		}
	}

	if !done[destination] {
		return nil, false
	}

	// Walk predecessors back to the origin, then reverse.
	var reversed []ServiceEdge
	for at := destination; at != origin; {
		e := prev[at]
		reversed = append(reversed, e)
		at = e.From
	}
	path := make([]ServiceEdge, len(reversed))
	for i, e := range reversed {
		path[len(reversed)-1-i] = e
	}
	return path, true
}

type nodeItem struct {
	node int
	dist float64
}

type nodeQueue []nodeItem

func (q nodeQueue) Len() int           { return len(q) }
func (q nodeQueue) Less(i, j int) bool { return q[i].dist < q[j].dist }
func (q nodeQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x any)        { *q = append(*q, x.(nodeItem)) }
func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
