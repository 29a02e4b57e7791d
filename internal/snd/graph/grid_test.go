package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid_3x3(t *testing.T) {
	g, pos := NewGrid(3, 3)

	assert.Len(t, g.Nodes(), 9)
	assert.Len(t, g.Edges(), 12)
	assert.Len(t, pos, 9)

	// Row-major numbering: node 4 is the center.
	assert.True(t, g.HasEdge(4, 1))
	assert.True(t, g.HasEdge(4, 3))
	assert.True(t, g.HasEdge(4, 5))
	assert.True(t, g.HasEdge(4, 7))
	assert.False(t, g.HasEdge(0, 4))
	assert.False(t, g.HasEdge(0, 8))

	w, ok := g.EdgeWeight(0, 1)
	require.True(t, ok)
	assert.Equal(t, 1.0, w)

	assert.Equal(t, Position{X: 0, Y: 0}, pos[0])
	assert.Equal(t, Position{X: 2, Y: -2}, pos[8])
}

func TestNewGrid_SingleRow(t *testing.T) {
	g, _ := NewGrid(1, 4)

	assert.Len(t, g.Nodes(), 4)
	assert.Len(t, g.Edges(), 3)
	assert.True(t, g.HasPath(0, 3))
}
