// Package csr provides the sparse graph representation consumed by the
// gexpm relaxation engine: a directed graph compressed by source node,
// equivalent to CSR (compressed sparse row) over the adjacency matrix.
//
// Graph is the only input shape the engine understands; adapters in this
// package build one from a github.com/kkloster/gexpm/core.Graph.
package csr

import (
	"errors"
	"fmt"

	"github.com/kkloster/gexpm/bfs"
	"github.com/kkloster/gexpm/core"
)

// Sentinel errors returned while adapting or validating a Graph.
var (
	// ErrNilCoreGraph indicates a nil *core.Graph was passed to FromGraph.
	ErrNilCoreGraph = errors.New("csr: core graph is nil")

	// ErrDanglingSeed indicates a seed node has zero out-degree: relaxing
	// it is undefined per the push algebra (component 4.F).
	ErrDanglingSeed = errors.New("csr: seed has zero out-degree")

	// ErrSeedOutOfRange indicates a seed index outside [0,n).
	ErrSeedOutOfRange = errors.New("csr: seed index out of range")
)

// Graph is a directed sparse graph with n nodes indexed [0,n), stored
// compressed by source: for node u, its out-neighbors occupy
// Aj[Ai[u]:Ai[u+1]]. A holds the corresponding edge weights and is only
// populated when the adapter is asked to carry them (the queue variant
// consults A; the heap variant treats every edge as weight 1/deg(u) and
// ignores A entirely).
type Graph struct {
	N  int
	Ai []int
	Aj []int
	A  []float64

	// ids maps a dense node index back to the originating core.Graph
	// vertex ID, letting bridge-level callers translate results back to
	// caller-facing vertex names.
	ids []string
}

// Degree returns deg(u) := Ai[u+1]-Ai[u].
func (g *Graph) Degree(u int) int {
	return g.Ai[u+1] - g.Ai[u]
}

// Neighbors returns the out-neighbor slice of u (not a copy).
func (g *Graph) Neighbors(u int) []int {
	return g.Aj[g.Ai[u]:g.Ai[u+1]]
}

// Weights returns the out-edge weight slice of u (not a copy); empty if
// the graph was built without weights.
func (g *Graph) Weights(u int) []float64 {
	if g.A == nil {
		return nil
	}
	return g.A[g.Ai[u]:g.Ai[u+1]]
}

// VertexID returns the originating core.Graph vertex ID for dense index v.
func (g *Graph) VertexID(v int) string {
	return g.ids[v]
}

// FromGraph builds a csr.Graph from a core.Graph. Vertex IDs are assigned
// dense indices in g.Vertices() order (which core.Graph keeps sorted,
// making the mapping deterministic across calls). When weighted is true,
// A is populated from core.Edge.Weight (cast to float64); the heap
// variant should pass weighted=false since it never consults A.
func FromGraph(g *core.Graph, weighted bool) (*Graph, error) {
	if g == nil {
		return nil, ErrNilCoreGraph
	}

	vertices := g.Vertices()
	n := len(vertices)
	index := make(map[string]int, n)
	for i, id := range vertices {
		index[id] = i
	}

	adj := g.AdjacencyList()

	ai := make([]int, n+1)
	var aj []int
	var a []float64
	if weighted {
		a = make([]float64, 0)
	}

	for u := 0; u < n; u++ {
		uid := vertices[u]
		neighbors := adj[uid]
		ai[u+1] = ai[u] + len(neighbors)
		for _, vid := range neighbors {
			aj = append(aj, index[vid])
			if weighted {
				w, err := edgeWeight(g, uid, vid)
				if err != nil {
					return nil, err
				}
				a = append(a, w)
			}
		}
	}

	return &Graph{N: n, Ai: ai, Aj: aj, A: a, ids: vertices}, nil
}

// edgeWeight looks up the weight of an edge uid->vid; FromGraph only
// calls this once per adjacency-list entry, so the per-call linear scan
// of g.Neighbors(uid) stays bounded by deg(uid).
func edgeWeight(g *core.Graph, uid, vid string) (float64, error) {
	edges, err := g.Neighbors(uid)
	if err != nil {
		return 0, fmt.Errorf("csr: Neighbors(%s): %w", uid, err)
	}
	for _, e := range edges {
		if e.To == vid && (!e.Directed || e.From == uid) {
			return float64(e.Weight), nil
		}
	}
	return 0, fmt.Errorf("csr: no edge %s->%s found while adapting weights", uid, vid)
}

// ValidateSeeds checks that every seed lies in [0,n) and has out-degree
// >= 1 as required by 4.F's push algebra; a seed that fails this check
// would relax into undefined behavior.
func ValidateSeeds(g *Graph, seeds []int) error {
	for _, s := range seeds {
		if s < 0 || s >= g.N {
			return fmt.Errorf("%w: seed=%d n=%d", ErrSeedOutOfRange, s, g.N)
		}
		if g.Degree(s) == 0 {
			return fmt.Errorf("%w: seed=%d (%s)", ErrDanglingSeed, s, g.VertexID(s))
		}
	}
	return nil
}

// ValidateReachableSeeds extends ValidateSeeds: it also walks the full
// component reachable from each seed via bfs.BFS and rejects the seed if
// any reachable node has zero out-degree, since a push can relax any
// node the residual ever reaches, not only the seeds themselves.
// Callers that only need the cheap seed-only check should call
// ValidateSeeds instead.
func ValidateReachableSeeds(coreGraph *core.Graph, g *Graph, seeds []int) error {
	if err := ValidateSeeds(g, seeds); err != nil {
		return err
	}

	index := make(map[string]int, g.N)
	for i, id := range g.ids {
		index[id] = i
	}

	for _, s := range seeds {
		startID := g.VertexID(s)

		_, err := bfs.BFS(coreGraph, startID, bfs.WithOnVisit(func(id string, _ int) error {
			if idx, ok := index[id]; ok && g.Degree(idx) == 0 {
				return fmt.Errorf("%w: node %q reachable from seed %d has zero out-degree", ErrDanglingSeed, id, s)
			}
			return nil
		}))
		if err != nil {
			if errors.Is(err, ErrDanglingSeed) {
				return err
			}
			return fmt.Errorf("csr: reachability walk from seed %d (%s): %w", s, startID, err)
		}
	}
	return nil
}
