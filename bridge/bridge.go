// Package bridge implements the host boundary (component 4.G): the
// validated entry point a caller crosses to go from "a graph, some
// seeds, and a few numeric knobs" to a dense solution vector. In the
// original interface this boundary was a MEX call; here it is realized
// twice — this package's Bridge type, and cmd/gexpm layered on top of
// it (component 4.J) — both converting 1-based caller-facing indices
// to the 0-based indices the engine and csr packages use internally.
package bridge

import (
	"context"
	"errors"
	"fmt"

	"github.com/kkloster/gexpm/core"
	"github.com/kkloster/gexpm/csr"
	"github.com/kkloster/gexpm/dfs"
	"github.com/kkloster/gexpm/engine"
	"github.com/kkloster/gexpm/trace"
)

// Sentinel errors. Each wraps the original MEX's stable diagnostic
// identifier as message context, so callers using errors.Is need no
// knowledge of the original string.
var (
	// ErrWrongArgCount corresponds to the original
	// gexpm_hash_mex:wrongNumberArguments.
	ErrWrongArgCount = errors.New("bridge: wrong number of arguments (gexpm_hash_mex:wrongNumberArguments)")

	// ErrInvalidArgument covers type/shape mismatches: non-square graph,
	// dense input where sparse was expected, or a malformed seed list.
	ErrInvalidArgument = errors.New("bridge: invalid argument")

	// ErrSeedRange is returned when a 1-based seed falls outside [1,n].
	ErrSeedRange = errors.New("bridge: seed out of range [1,n]")
)

// Variant selects which relaxation discipline Bridge.Run drives.
type Variant int

const (
	// VariantHeap is the exact Gauss-Southwell discipline.
	VariantHeap Variant = iota
	// VariantQueue is the approximate FIFO discipline.
	VariantQueue
)

// Request carries the caller-facing (1-based) parameters for a single
// Run call, mirroring the original interface's argument lists for both
// variants (seeds/A/c are mutually relevant depending on Variant).
type Request struct {
	Variant Variant

	// Seeds is the 1-based seed list (heap variant: one or more;
	// queue variant: exactly one).
	Seeds []int

	T        float64
	Eps      float64 // heap variant
	Degree   int     // queue variant
	Tol      float64 // queue variant
	MaxSteps int

	Trace   trace.Sink
	Metrics engine.Metrics
}

// Response is the dense-output counterpart of engine.Result: Y has
// length N with zeros for every node the relaxation never touched.
type Response struct {
	Y       []float64
	NPushes int
	NSteps  int
}

// Bridge wraps a validated csr.Graph and dispatches Run calls against
// it, converting between the caller's 1-based indices and the
// 0-based indices the engine operates on.
type Bridge struct {
	coreGraph *core.Graph
	g         *csr.Graph
	hasCycles bool
}

// New validates g (square, every seed in req.Seeds reachable and
// degree-positive is checked per-call in Run, since seeds vary by
// request) and builds the csr.Graph the bridge will drive. weighted
// selects whether edge weights are carried into the csr adapter; pass
// true only when every subsequent Run call will use VariantQueue.
//
// It also runs a one-time cycle scan over g: the relaxation algebra
// handles cycles correctly (the three-node-path test scenario ends in
// a self-loop), so a cyclic graph is never rejected, but HasCycles
// lets a caller log it as a diagnostic before a long-running call.
func New(g *core.Graph, weighted bool) (*Bridge, error) {
	cg, err := csr.FromGraph(g, weighted)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	cyclic, _, err := dfs.DetectCycles(g)
	if err != nil {
		return nil, fmt.Errorf("%w: detecting cycles: %v", ErrInvalidArgument, err)
	}

	return &Bridge{coreGraph: g, g: cg, hasCycles: cyclic}, nil
}

// HasCycles reports whether the underlying graph contains a directed
// cycle, as detected by dfs.DetectCycles at construction time.
func (b *Bridge) HasCycles() bool {
	return b.hasCycles
}

// Run validates req, converts its 1-based seeds to 0-based, runs the
// selected engine discipline, and scatters the sparse result into a
// dense vector of length b.g.N.
func (b *Bridge) Run(ctx context.Context, req Request) (*Response, error) {
	if len(req.Seeds) == 0 {
		return nil, fmt.Errorf("%w: empty seed list", ErrWrongArgCount)
	}

	seeds := make([]int, len(req.Seeds))
	for i, s := range req.Seeds {
		if s < 1 || s > b.g.N {
			return nil, fmt.Errorf("%w: seed=%d n=%d", ErrSeedRange, s, b.g.N)
		}
		seeds[i] = s - 1
	}

	if err := csr.ValidateReachableSeeds(b.coreGraph, b.g, seeds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	opts := []engine.Option{engine.MaxSteps(req.MaxSteps)}
	switch req.Variant {
	case VariantHeap:
		opts = append(opts, engine.Heap(req.T, req.Eps))
	case VariantQueue:
		opts = append(opts, engine.Queue(req.T, req.Degree, req.Tol))
	default:
		return nil, fmt.Errorf("%w: unknown variant %d", ErrInvalidArgument, req.Variant)
	}
	if req.Trace != nil {
		opts = append(opts, engine.WithTrace(req.Trace))
	}
	if req.Metrics != nil {
		opts = append(opts, engine.WithMetrics(req.Metrics))
	}

	res, err := engine.Run(ctx, b.g, seeds, opts...)
	if err != nil {
		return nil, err
	}

	y := make([]float64, b.g.N)
	for v, mass := range res.Y {
		y[v] = mass
	}

	return &Response{Y: y, NPushes: res.NPushes, NSteps: res.NSteps}, nil
}
