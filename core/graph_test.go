// Package core_test verifies core.Graph's vertex/edge lifecycle and
// constraint enforcement, stdlib-only (no third-party assertion framework).
package core_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/leiko-dev/synthcore/core"
)

func TestGraph_AddVertexIsIdempotentAndRejectsEmptyID(t *testing.T) {
	g := core.NewGraph()

	if err := g.AddVertex(""); !errors.Is(err, core.ErrEmptyVertexID) {
		t.Fatalf("AddVertex(\"\") = %v, want ErrEmptyVertexID", err)
	}
	if err := g.AddVertex("a"); err != nil {
		t.Fatalf("AddVertex(a) = %v, want nil", err)
	}
	if err := g.AddVertex("a"); err != nil {
		t.Fatalf("AddVertex(a) second call = %v, want nil (idempotent)", err)
	}
	if got := g.VertexCount(); got != 1 {
		t.Fatalf("VertexCount() = %d, want 1", got)
	}
}

func TestGraph_AddEdgeRejectsNonZeroWeightUnlessWeighted(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))

	if _, err := g.AddEdge("a", "b", 1); !errors.Is(err, core.ErrBadWeight) {
		t.Fatalf("AddEdge with weight on unweighted graph = %v, want ErrBadWeight", err)
	}

	gw := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	if _, err := gw.AddEdge("a", "b", 7); err != nil {
		t.Fatalf("AddEdge on weighted graph = %v, want nil", err)
	}
}

func TestGraph_AddEdgeRejectsSelfLoops(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	if _, err := g.AddEdge("a", "a", 0); !errors.Is(err, core.ErrLoopNotAllowed) {
		t.Fatalf("AddEdge(a,a) = %v, want ErrLoopNotAllowed", err)
	}
}

func TestGraph_AddEdgeRejectsMultiEdgesUnlessEnabled(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	if _, err := g.AddEdge("a", "b", 0); err != nil {
		t.Fatalf("first AddEdge(a,b) = %v, want nil", err)
	}
	if _, err := g.AddEdge("a", "b", 0); !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		t.Fatalf("second AddEdge(a,b) = %v, want ErrMultiEdgeNotAllowed", err)
	}

	gm := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	id1, err := gm.AddEdge("a", "b", 0)
	if err != nil {
		t.Fatalf("AddEdge(a,b) #1 = %v, want nil", err)
	}
	id2, err := gm.AddEdge("a", "b", 0)
	if err != nil {
		t.Fatalf("AddEdge(a,b) #2 = %v, want nil", err)
	}
	if id1 == id2 {
		t.Fatalf("parallel edges got the same ID %q", id1)
	}
	if got := gm.EdgeCount(); got != 2 {
		t.Fatalf("EdgeCount() = %d, want 2", got)
	}
}

func TestGraph_EdgesReturnsSortedByID(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())
	for i := 0; i < 5; i++ {
		if _, err := g.AddEdge("a", "b", int64(i)); err != nil {
			t.Fatalf("AddEdge #%d = %v, want nil", i, err)
		}
	}
	edges := g.Edges()
	if len(edges) != 5 {
		t.Fatalf("len(Edges()) = %d, want 5", len(edges))
	}
	for i := 1; i < len(edges); i++ {
		if edges[i-1].ID >= edges[i].ID {
			t.Fatalf("Edges() not sorted: %q before %q", edges[i-1].ID, edges[i].ID)
		}
	}
}

func TestGraph_UndirectedEdgeMirrorsAdjacencyBothWays(t *testing.T) {
	g := core.NewGraph()
	id, err := g.AddEdge("a", "b", 0)
	if err != nil {
		t.Fatalf("AddEdge(a,b) = %v, want nil", err)
	}
	// A second undirected edge between the same mirrored pair is still a
	// multi-edge and must be rejected without WithMultiEdges.
	if _, err := g.AddEdge("b", "a", 0); !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		t.Fatalf("AddEdge(b,a) after AddEdge(a,b) = %v, want ErrMultiEdgeNotAllowed", err)
	}
	if id == "" {
		t.Fatal("AddEdge returned empty edge ID")
	}
}

func TestGraph_ConcurrentAddVertexIsRaceFree(t *testing.T) {
	g := core.NewGraph()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = g.AddVertex("v")
		}(i)
	}
	wg.Wait()
	if got := g.VertexCount(); got != 1 {
		t.Fatalf("VertexCount() after concurrent inserts = %d, want 1", got)
	}
}
