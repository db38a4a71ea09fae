// Package engine implements the push-based Gauss-Southwell relaxation
// (component 4.F): the loop shared by the exact heap variant and the
// approximate queue variant, written once against the selector
// abstraction described in SPEC_FULL.md 9 ("Two variants, one engine").
package engine

import (
	"context"
	"fmt"
	"math"

	"github.com/kkloster/gexpm/csr"
	"github.com/kkloster/gexpm/residual"
	"github.com/kkloster/gexpm/taylor"
	"github.com/kkloster/gexpm/trace"
)

// Result is the outcome of a Run call: a sparse solution vector keyed
// by dense node index, plus the two scalars the original interface
// reports alongside it.
type Result struct {
	Y       map[int]float64
	NPushes int
	NSteps  int
	Degree  int // Taylor truncation order used for this run
}

// Run executes the relaxation loop against g starting from seeds,
// according to the discipline selected by opts (Heap or Queue; exactly
// one must be given). ctx is checked once per push, in the bfs/dijkstra
// style of cooperative cancellation: a cancelled context aborts the
// loop and returns ctx.Err() rather than a partial Result.
func Run(ctx context.Context, g *csr.Graph, seeds []int, opts ...Option) (*Result, error) {
	o := &Options{t: 1.0, eps: 1e-5}
	for _, opt := range opts {
		opt(o)
	}

	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	if o.variant == variantQueue && len(seeds) != 1 {
		return nil, ErrTooManySeeds
	}

	n := g.N
	var degree int
	var tau float64

	switch o.variant {
	case variantHeap:
		if o.eps <= 0 {
			return nil, ErrInvalidEpsilon
		}
		d, err := taylor.Degree(o.t, o.eps)
		if err != nil {
			return nil, fmt.Errorf("engine: deriving Taylor degree: %w", err)
		}
		degree = d
	case variantQueue:
		if o.degree < 1 {
			return nil, ErrInvalidDegree
		}
		if o.tol <= 0 || o.tol > 1 {
			return nil, ErrInvalidTolerance
		}
		degree = o.degree
		tau = o.tol / float64(n*degree)
	}

	maxSteps := o.maxSteps
	if maxSteps <= 0 {
		maxSteps = n
	}
	if maxSteps < 1 {
		return nil, ErrInvalidMaxSteps
	}

	sink := o.trace
	if sink == nil {
		sink = trace.NopSink{}
	}
	metrics := o.metrics
	if metrics == nil {
		metrics = NopMetrics{}
	}

	keySpace := n * (degree + 1)
	store := residual.New(keySpace)

	var sel selector
	switch o.variant {
	case variantHeap:
		sel = newHeapSelector(keySpace)
	case variantQueue:
		sel = newQueueSelector(keySpace, tau)
	}

	y := make(map[int]float64)
	sumresid := 0.0
	sumsol := 0.0
	if o.variant == variantQueue {
		sumsol = -math.Exp(o.t)
	}

	for _, s := range seeds {
		newV, oldV := store.Add(s, 1.0)
		sel.ObserveUpdate(s, oldV, newV, 1.0)
		sumresid += 1.0
	}

	npushes := 0
	nsteps := maxSteps
	terminationBound := o.eps / math.Exp(o.t)

	for iter := 0; iter < maxSteps; iter++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		k, ok := sel.SelectAndExtract()
		if !ok {
			nsteps = iter
			break
		}

		rij := store.Get(k)
		store.Set(k, 0)
		sumresid -= rij

		i := k % n
		j := k / n

		y[i] += rij

		deg := g.Degree(i)
		neighbors := g.Neighbors(i)
		weights := g.Weights(i)

		terminal := j == degree-1
		for idx, v := range neighbors {
			w := 0.0
			if o.variant == variantQueue {
				w = weights[idx]
			}
			update := rijPush(o.variant, o.t, rij, j, deg, w)

			if terminal {
				y[v] += update
				sumsol += update
				continue
			}

			re := v + (j+1)*n
			newV, oldV := store.Add(re, update)
			sel.ObserveUpdate(re, oldV, newV, update)
			sumresid += update
			sumsol += update
		}

		npushes += deg
		nsteps = iter + 1

		sink.Push(trace.Event{Iter: iter, Key: k, Node: i, Step: j, Residual: rij, Reason: "select"})
		metrics.ObservePush(deg)
		metrics.ObserveIteration(iter)
		metrics.ObserveResidualMass(sumresid)

		terminated := false
		switch o.variant {
		case variantHeap:
			terminated = sumresid < terminationBound
		case variantQueue:
			terminated = sumresid < o.tol || sumsol > -o.tol
		}
		if sel.Len() == 0 {
			terminated = true
		}
		if terminated {
			sink.Push(trace.Event{Iter: iter, Reason: "terminate"})
			break
		}
	}

	return &Result{Y: y, NPushes: npushes, NSteps: nsteps, Degree: degree}, nil
}

// rijPush computes the per-edge push magnitude: t*rij/(j+1) split evenly
// across deg(i) neighbors for the heap variant (weight is ignored,
// column-stochastic 1/deg(u) assumed), or rij/(j+1)*weight for the queue
// variant, which honors the stored edge weight directly.
func rijPush(variant variantKind, t, rij float64, j, deg int, weight float64) float64 {
	if variant == variantHeap {
		rijs := t * rij / float64(j+1)
		return rijs / float64(deg)
	}
	rijs := rij / float64(j+1)
	return rijs * weight
}
