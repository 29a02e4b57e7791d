package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transit-design-lab/snd-backend/internal/snd/graph"
)

func TestToDOT(t *testing.T) {
	sn := graph.NewServiceNetwork()
	sn.AddEdge(graph.ServiceEdge{From: 0, To: 1, Weight: 0.05, Type: graph.EdgeTypeBus, RouteID: "Route_1"})
	sn.AddEdge(graph.ServiceEdge{From: 1, To: 0, Weight: 1})

	b, err := ToDOT(sn)
	require.NoError(t, err)

	dot := string(b)
	assert.Contains(t, dot, "digraph G {")
	assert.Contains(t, dot, `0 -> 1 [label="Route_1"];`)
	assert.Contains(t, dot, "1 -> 0 [style=dashed];")
	assert.Contains(t, dot, "  0;\n")
	assert.Contains(t, dot, "  1;\n")
}

func TestToDOT_Empty(t *testing.T) {
	b, err := ToDOT(graph.NewServiceNetwork())
	require.NoError(t, err)
	assert.Equal(t, "digraph G {\n  rankdir=LR; node [shape=circle];\n}\n", string(b))
}
