// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"testing"

	"github.com/katalvlaran/netresil/core"
	"github.com/stretchr/testify/require"
)

const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
)

// triangleWithTail builds A-B-C-A plus C-D.
func triangleWithTail(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for _, e := range [][2]string{{VertexA, VertexB}, {VertexB, VertexC}, {VertexC, VertexA}, {VertexC, VertexD}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex(VertexA))
	require.NoError(t, g.AddVertex(VertexA))
	require.Equal(t, 1, g.VertexCount())
	require.True(t, g.HasVertex(VertexA))

	require.ErrorIs(t, g.RemoveVertex(""), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.RemoveVertex(VertexB), core.ErrVertexNotFound)
	require.NoError(t, g.RemoveVertex(VertexA))
	require.False(t, g.HasVertex(VertexA))
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("", VertexB)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge(VertexA, VertexA)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	eid, err := g.AddEdge(VertexA, VertexB)
	require.NoError(t, err)
	require.Equal(t, "e1", eid)

	_, err = g.AddEdge(VertexB, VertexA)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "undirected pair is unordered")

	require.True(t, g.HasEdge(VertexA, VertexB))
	require.True(t, g.HasEdge(VertexB, VertexA))

	looped := core.NewGraph(core.WithLoops())
	_, err = looped.AddEdge(VertexA, VertexA)
	require.NoError(t, err)
	require.Equal(t, 1, looped.Stats().LoopCount)
}

func TestGraph_DirectedEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge(VertexA, VertexB)
	require.NoError(t, err)
	_, err = g.AddEdge(VertexB, VertexA)
	require.NoError(t, err, "reverse arc is a distinct edge")

	require.Equal(t, 2, g.EdgeCount())
	nbrs, err := g.NeighborIDs(VertexA)
	require.NoError(t, err)
	require.Equal(t, []string{VertexB}, nbrs)

	in, out, und, err := g.Degree(VertexA)
	require.NoError(t, err)
	require.Equal(t, []int{1, 1, 0}, []int{in, out, und})
}

func TestGraph_RemoveVertexDropsIncidentEdges(t *testing.T) {
	for _, directed := range []bool{false, true} {
		g := triangleWithTail(t, core.WithDirected(directed))
		require.NoError(t, g.RemoveVertex(VertexC))
		require.Equal(t, 1, g.EdgeCount())
		require.False(t, g.HasEdge(VertexB, VertexC))
		require.False(t, g.HasEdge(VertexC, VertexA))
		nbrs, err := g.NeighborIDs(VertexD)
		require.NoError(t, err)
		require.Empty(t, nbrs)
	}
}

func TestGraph_RemoveEdge(t *testing.T) {
	g := triangleWithTail(t)
	require.ErrorIs(t, g.RemoveEdge("e99"), core.ErrEdgeNotFound)
	require.NoError(t, g.RemoveEdge("e4"))
	require.False(t, g.HasEdge(VertexD, VertexC))
	require.True(t, g.HasVertex(VertexD))
}

func TestGraph_Degrees(t *testing.T) {
	g := triangleWithTail(t, core.WithLoops())
	_, err := g.AddEdge(VertexD, VertexD)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("E"))

	deg := g.Degrees()
	require.Equal(t, map[string]int{VertexA: 2, VertexB: 2, VertexC: 3, VertexD: 3, "E": 0}, deg)

	for id, d := range deg {
		in, out, und, err := g.Degree(id)
		require.NoError(t, err)
		require.Equal(t, d, in+out+und, id)
	}
}

func TestGraph_EdgesOrder(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge("hub", string(rune('a'+i)))
		require.NoError(t, err)
	}
	edges := g.Edges()
	require.Len(t, edges, 12)
	require.Equal(t, "e1", edges[0].ID)
	require.Equal(t, "e2", edges[1].ID)
	require.Equal(t, "e12", edges[11].ID)
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	g := triangleWithTail(t)
	c := g.Clone()
	require.Equal(t, g.Vertices(), c.Vertices())
	require.Equal(t, g.EdgeCount(), c.EdgeCount())

	require.NoError(t, c.RemoveVertex(VertexC))
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 4, g.EdgeCount())

	eid, err := c.AddEdge(VertexA, VertexD)
	require.NoError(t, err)
	require.Equal(t, "e5", eid, "clone continues the edge sequence")

	empty := g.CloneEmpty()
	require.Equal(t, 4, empty.VertexCount())
	require.Zero(t, empty.EdgeCount())
}

func TestWithoutVertices(t *testing.T) {
	g := triangleWithTail(t)

	h, err := g.WithoutVertices([]string{VertexC})
	require.NoError(t, err)
	require.Equal(t, []string{VertexA, VertexB, VertexD}, h.Vertices())
	require.Equal(t, 1, h.EdgeCount())
	require.True(t, h.HasEdge(VertexA, VertexB))
	require.Equal(t, 4, g.VertexCount(), "source untouched")

	_, err = g.WithoutVertices([]string{"Z"})
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	same, err := g.WithoutVertices(nil)
	require.NoError(t, err)
	require.Equal(t, g.Vertices(), same.Vertices())
	require.Equal(t, g.EdgeCount(), same.EdgeCount())
}

func TestDenseEdges(t *testing.T) {
	g := triangleWithTail(t)
	idx, pairs := core.DenseEdges(g)
	require.Equal(t, 4, idx.Len())
	require.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}}, pairs)

	i, ok := idx.Index(VertexC)
	require.True(t, ok)
	require.Equal(t, 2, i)
	require.Equal(t, VertexD, idx.ID(3))

	_, ok = idx.Index("Z")
	require.False(t, ok)
}
