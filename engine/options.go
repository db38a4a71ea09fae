package engine

import "github.com/kkloster/gexpm/trace"

// Metrics receives per-run counters from the relaxation engine. The zero
// value of NopMetrics satisfies it at no cost; a real implementation
// (metrics.Registry) is wired in via WithMetrics.
type Metrics interface {
	ObservePush(edges int)
	ObserveIteration(iter int)
	ObserveResidualMass(mass float64)
}

// NopMetrics discards every observation.
type NopMetrics struct{}

func (NopMetrics) ObservePush(int)            {}
func (NopMetrics) ObserveIteration(int)       {}
func (NopMetrics) ObserveResidualMass(float64) {}

type variantKind int

const (
	variantHeap variantKind = iota
	variantQueue
)

// Options configures a Run call. Construct with Heap or Queue, never
// directly.
type Options struct {
	variant  variantKind
	t        float64
	eps      float64 // heap variant: drives taylor.Degree
	degree   int     // queue variant: caller-supplied Taylor degree
	tol      float64 // queue variant: admission/termination tolerance
	maxSteps int
	trace    trace.Sink
	metrics  Metrics
}

// Option customizes a Run call.
type Option func(*Options)

// Heap selects the exact Gauss-Southwell discipline: full precision
// over the seed set, Taylor degree auto-derived from (t, eps). The
// heap variant assumes P is column-stochastic (1/deg(u)) and ignores
// any stored edge weights; build its input graph with
// csr.FromGraph(g, false).
func Heap(t, eps float64) Option {
	return func(o *Options) {
		o.variant = variantHeap
		o.t = t
		o.eps = eps
	}
}

// Queue selects the approximate FIFO-with-admission discipline: O(1)
// amortized per push, at the cost of exact selection order. degree is
// the caller-supplied Taylor truncation order (not auto-derived, per
// the original interface); tol is the admission/termination
// tolerance in (0,1]. The queue variant honors stored edge weights as
// the transition probabilities; build its input graph with
// csr.FromGraph(g, true).
func Queue(t float64, degree int, tol float64) Option {
	return func(o *Options) {
		o.variant = variantQueue
		o.t = t
		o.degree = degree
		o.tol = tol
	}
}

// MaxSteps caps the number of push iterations. Defaults to the graph's
// node count when unset.
func MaxSteps(n int) Option {
	return func(o *Options) { o.maxSteps = n }
}

// WithTrace injects a trace sink observing every push. Defaults to
// trace.NopSink{}.
func WithTrace(s trace.Sink) Option {
	return func(o *Options) { o.trace = s }
}

// WithMetrics injects a metrics collector. Defaults to NopMetrics{}.
func WithMetrics(m Metrics) Option {
	return func(o *Options) { o.metrics = m }
}
