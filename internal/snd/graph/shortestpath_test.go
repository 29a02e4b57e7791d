package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortestPath_PicksCheaperRoute(t *testing.T) {
	sn := NewServiceNetwork()
	sn.AddEdge(ServiceEdge{From: 0, To: 1, Weight: 1, Type: EdgeTypeBus, RouteID: "A"})
	sn.AddEdge(ServiceEdge{From: 1, To: 2, Weight: 1, Type: EdgeTypeBus, RouteID: "A"})
	sn.AddEdge(ServiceEdge{From: 0, To: 2, Weight: 5, Type: EdgeTypeBus, RouteID: "B"})

	path, ok := sn.ShortestPath(0, 2)
	require.True(t, ok)
	require.Len(t, path, 2)
	assert.Equal(t, "A", path[0].RouteID)
	assert.Equal(t, "A", path[1].RouteID)
	assert.Equal(t, 0, path[0].From)
	assert.Equal(t, 2, path[1].To)
}

func TestShortestPath_ParallelEdges(t *testing.T) {
	sn := NewServiceNetwork()
	sn.AddEdge(ServiceEdge{From: 0, To: 1, Weight: 3, Type: EdgeTypeBus, RouteID: "slow"})
	sn.AddEdge(ServiceEdge{From: 0, To: 1, Weight: 1, Type: EdgeTypeBus, RouteID: "fast"})

	// Both parallels are kept in the multigraph.
	assert.Equal(t, 2, sn.NumEdges())

	path, ok := sn.ShortestPath(0, 1)
	require.True(t, ok)
	require.Len(t, path, 1)
	assert.Equal(t, "fast", path[0].RouteID)
	assert.Equal(t, 1.0, path[0].Weight)
}

func TestShortestPath_Unreachable(t *testing.T) {
	sn := NewServiceNetwork()
	sn.AddEdge(ServiceEdge{From: 0, To: 1, Weight: 1})
	sn.AddEdge(ServiceEdge{From: 2, To: 3, Weight: 1})

	_, ok := sn.ShortestPath(0, 3)
	assert.False(t, ok)

	// Directed: the reverse direction is not implied.
	_, ok = sn.ShortestPath(1, 0)
	assert.False(t, ok)
}

func TestShortestPath_SameNode(t *testing.T) {
	sn := NewServiceNetwork()
	sn.AddEdge(ServiceEdge{From: 0, To: 1, Weight: 1})

	path, ok := sn.ShortestPath(0, 0)
	require.True(t, ok)
	assert.Empty(t, path)
}

func TestShortestPath_UnknownNode(t *testing.T) {
	sn := NewServiceNetwork()
	sn.AddEdge(ServiceEdge{From: 0, To: 1, Weight: 1})

	_, ok := sn.ShortestPath(0, 42)
	assert.False(t, ok)
}
