package matrix

import (
	"fmt"
	"math"

	"github.com/kkloster/gexpm/core"
)

// defaultWeight is used for unweighted edges, mirroring the teacher's
// BuildDenseAdjacency unit-weight convention.
const defaultWeight = 1.0

// FromGraph builds a dense adjacency matrix from g: row i, column j holds
// the weight of the edge i->j (0 when absent), adapted from the teacher's
// matrix.BuildDenseAdjacency. Vertices are indexed in g.Vertices() order,
// the same deterministic order csr.FromGraph uses, so the returned ids
// slice is directly comparable against a csr.Graph built from the same g.
func FromGraph(g *core.Graph, weighted bool) (mat *Dense, ids []string, err error) {
	if g == nil {
		return nil, nil, fmt.Errorf("matrix: FromGraph: nil graph")
	}

	ids = g.Vertices()
	n := len(ids)
	if n == 0 {
		return nil, nil, ErrInvalidDimensions
	}

	idx := make(map[string]int, n)
	for i, id := range ids {
		idx[id] = i
	}

	mat, err = NewDense(n)
	if err != nil {
		return nil, nil, err
	}

	for _, e := range g.Edges() {
		src, ok := idx[e.From]
		if !ok {
			return nil, nil, fmt.Errorf("matrix: FromGraph: edge %s->%s references unknown vertex %q", e.From, e.To, e.From)
		}
		dst, ok := idx[e.To]
		if !ok {
			return nil, nil, fmt.Errorf("matrix: FromGraph: edge %s->%s references unknown vertex %q", e.From, e.To, e.To)
		}

		w := defaultWeight
		if weighted {
			w = float64(e.Weight)
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, nil, fmt.Errorf("matrix: FromGraph: edge %s->%s has non-finite weight %v", e.From, e.To, w)
		}

		existing, _ := mat.At(src, dst)
		if err := mat.Set(src, dst, existing+w); err != nil {
			return nil, nil, err
		}
	}

	return mat, ids, nil
}

// RandomWalkMatrix derives P from the adjacency matrix m, following this
// domain's convention P[v,u] = A[u,v] / outdegree(u): column u of P is u's
// outgoing edges normalized to sum to 1 (0 for a dangling vertex with no
// outgoing edges). This is the same column-stochastic matrix engine.Run
// approximates via push relaxation without ever materializing it; use
// RandomWalkMatrix only on graphs small enough for an n*n table (it costs
// O(n^2) time and space, unlike the engine's O(n+m) sparse path).
func (m *Dense) RandomWalkMatrix() (*Dense, error) {
	p, err := NewDense(m.n)
	if err != nil {
		return nil, err
	}

	for u := 0; u < m.n; u++ {
		outSum := 0.0
		for v := 0; v < m.n; v++ {
			w, err := m.At(u, v)
			if err != nil {
				return nil, err
			}
			outSum += w
		}
		if outSum == 0 {
			continue
		}
		for v := 0; v < m.n; v++ {
			w, err := m.At(u, v)
			if err != nil {
				return nil, err
			}
			if err := p.Set(v, u, w/outSum); err != nil {
				return nil, err
			}
		}
	}

	return p, nil
}
