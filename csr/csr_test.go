package csr

import (
	"errors"
	"testing"

	"github.com/kkloster/gexpm/core"
)

func buildCycle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for _, id := range []string{"0", "1"} {
		if err := g.AddVertex(id); err != nil {
			t.Fatalf("AddVertex: %v", err)
		}
	}
	if _, err := g.AddEdge("0", "1", 0); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if _, err := g.AddEdge("1", "0", 0); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	return g
}

func TestFromGraphUnweighted(t *testing.T) {
	g := buildCycle(t)
	cg, err := FromGraph(g, false)
	if err != nil {
		t.Fatalf("FromGraph: %v", err)
	}
	if cg.N != 2 {
		t.Fatalf("N=%d, want 2", cg.N)
	}
	if cg.Degree(0) != 1 || cg.Degree(1) != 1 {
		t.Fatalf("degrees: deg(0)=%d deg(1)=%d, want 1,1", cg.Degree(0), cg.Degree(1))
	}
	if cg.A != nil {
		t.Fatalf("unweighted adapter should leave A nil")
	}
}

func TestFromGraphWeighted(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	g.AddVertex("0")
	g.AddVertex("1")
	g.AddEdge("0", "1", 7)

	cg, err := FromGraph(g, true)
	if err != nil {
		t.Fatalf("FromGraph: %v", err)
	}
	w := cg.Weights(0)
	if len(w) != 1 || w[0] != 7 {
		t.Fatalf("weights=%v, want [7]", w)
	}
}

func TestFromGraphNil(t *testing.T) {
	if _, err := FromGraph(nil, false); !errors.Is(err, ErrNilCoreGraph) {
		t.Fatalf("expected ErrNilCoreGraph, got %v", err)
	}
}

func TestValidateSeedsDanglingNode(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddVertex("0")
	g.AddVertex("1")
	g.AddEdge("0", "1", 0)
	cg, err := FromGraph(g, false)
	if err != nil {
		t.Fatalf("FromGraph: %v", err)
	}

	if err := ValidateSeeds(cg, []int{1}); !errors.Is(err, ErrDanglingSeed) {
		t.Fatalf("expected ErrDanglingSeed for node 1, got %v", err)
	}
	if err := ValidateSeeds(cg, []int{0}); err != nil {
		t.Fatalf("seed 0 should validate: %v", err)
	}
}

func TestValidateSeedsOutOfRange(t *testing.T) {
	cg := &Graph{N: 1, Ai: []int{0, 0}, Aj: nil, ids: []string{"0"}}
	if err := ValidateSeeds(cg, []int{5}); !errors.Is(err, ErrSeedOutOfRange) {
		t.Fatalf("expected ErrSeedOutOfRange, got %v", err)
	}
}

func TestValidateReachableSeedsRejectsDanglingDescendant(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddVertex("0")
	g.AddVertex("1")
	g.AddVertex("2")
	g.AddEdge("0", "1", 0)
	g.AddEdge("1", "2", 0)
	// node "2" has zero out-degree but is reachable from seed 0.
	cg, err := FromGraph(g, false)
	if err != nil {
		t.Fatalf("FromGraph: %v", err)
	}
	if err := ValidateReachableSeeds(g, cg, []int{0}); !errors.Is(err, ErrDanglingSeed) {
		t.Fatalf("expected ErrDanglingSeed, got %v", err)
	}
}
