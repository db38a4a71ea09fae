package taylor

import (
	"math"
	"testing"
)

func TestDegreeRejectsNonPositive(t *testing.T) {
	if _, err := Degree(0, 1e-6); err == nil {
		t.Fatalf("expected error for t=0")
	}
	if _, err := Degree(1, 0); err == nil {
		t.Fatalf("expected error for eps=0")
	}
}

func TestDegreeMonotoneInEps(t *testing.T) {
	loose, err := Degree(1, 1e-2)
	if err != nil {
		t.Fatalf("Degree: %v", err)
	}
	tight, err := Degree(1, 1e-12)
	if err != nil {
		t.Fatalf("Degree: %v", err)
	}
	if tight < loose {
		t.Fatalf("tighter eps should not need fewer terms: loose=%d tight=%d", loose, tight)
	}
}

func TestDegreeSatisfiesRemainderBound(t *testing.T) {
	tt, eps := 2.0, 1e-8
	N, err := Degree(tt, eps)
	if err != nil {
		t.Fatalf("Degree: %v", err)
	}

	expT := math.Exp(tt)
	sum := 0.0
	term := 1.0
	for k := 0; k <= N; k++ {
		if k > 0 {
			term *= tt / float64(k)
		}
		sum += term
	}
	remainder := expT - sum
	if remainder > eps*expT {
		t.Fatalf("remainder %g exceeds bound %g for N=%d", remainder, eps*expT, N)
	}
}

func TestDegreeAtLeastOne(t *testing.T) {
	N, err := Degree(1e-9, 0.999)
	if err != nil {
		t.Fatalf("Degree: %v", err)
	}
	if N < 1 {
		t.Fatalf("Degree must return >= 1, got %d", N)
	}
}

func TestPsiTerminal(t *testing.T) {
	psi := Psi(4, 1.0)
	if len(psi) != 5 {
		t.Fatalf("expected length 5, got %d", len(psi))
	}
	if psi[4] != 1 {
		t.Fatalf("psi[N] must be 1, got %g", psi[4])
	}
}

func TestPsiRecurrence(t *testing.T) {
	N, tt := 3, 0.5
	psi := Psi(N, tt)
	for k := 1; k <= N; k++ {
		idx := N - k
		want := psi[idx+1]*tt/float64(idx+1) + 1
		if psi[idx] != want {
			t.Fatalf("psi[%d]=%g, want %g", idx, psi[idx], want)
		}
	}
}
