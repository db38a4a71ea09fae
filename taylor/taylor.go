// Package taylor computes the Taylor truncation degree and the ψ
// coefficients used by the gexpm relaxation engine.
//
// Complexity:
//   - Degree: O(N) where N is the returned degree (typically small for
//     practical t, ε).
//   - Psi: O(N).
package taylor

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonPositive is returned when t or eps is not strictly positive.
var ErrNonPositive = errors.New("taylor: t and eps must be > 0")

// Degree returns the smallest N >= 1 such that the Taylor remainder of
// exp(t) after N terms is <= eps*exp(t):
//
//	R_N(t) := exp(t) - Sum_{k=0..N} t^k/k! <= eps*exp(t)
//
// It iterates k <- k+1; last <- last*t/k; error <- error - last starting
// from k=0, last=1, error=exp(t)-1, stopping once error <= eps*exp(t).
func Degree(t, eps float64) (int, error) {
	if t <= 0 || eps <= 0 {
		return 0, fmt.Errorf("%w: t=%g eps=%g", ErrNonPositive, t, eps)
	}

	expT := math.Exp(t)
	bound := eps * expT

	k := 0
	last := 1.0
	errRemain := expT - 1

	for errRemain > bound {
		k++
		last = last * t / float64(k)
		errRemain -= last
	}

	if k < 1 {
		k = 1
	}

	return k, nil
}

// Psi computes the coefficients psi_0(t)..psi_N(t) defined by psi_N(t)=1
// and, for k=1..N, psi_{N-k}(t) = psi_{N-k+1}(t)*t/(N-k+1) + 1.
//
// The core push update uses the equivalent factor t/(j+1) directly and
// does not consult Psi; it is retained for callers exploring weighted
// push heuristics.
func Psi(N int, t float64) []float64 {
	psi := make([]float64, N+1)
	psi[N] = 1
	for k := 1; k <= N; k++ {
		idx := N - k
		psi[idx] = psi[idx+1]*t/float64(idx+1) + 1
	}

	return psi
}
