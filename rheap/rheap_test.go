package rheap

import "testing"

func TestUpdateInsertsNewKey(t *testing.T) {
	h := New(8)
	h.Update(3, 1.5)
	if h.Len() != 1 {
		t.Fatalf("Len()=%d, want 1", h.Len())
	}
}

func TestExtractMaxOrdering(t *testing.T) {
	h := New(8)
	h.Update(0, 1.0)
	h.Update(1, 5.0)
	h.Update(2, 3.0)

	k, v := h.ExtractMax()
	if k != 1 || v != 5.0 {
		t.Fatalf("got (%d,%g), want (1,5)", k, v)
	}

	k, v = h.ExtractMax()
	if k != 2 || v != 3.0 {
		t.Fatalf("got (%d,%g), want (2,3)", k, v)
	}

	k, v = h.ExtractMax()
	if k != 0 || v != 1.0 {
		t.Fatalf("got (%d,%g), want (0,1)", k, v)
	}

	if h.Len() != 0 {
		t.Fatalf("heap should be empty, Len()=%d", h.Len())
	}
}

func TestUpdateAccumulatesOnExistingKey(t *testing.T) {
	h := New(4)
	h.Update(0, 1.0)
	h.Update(0, 2.0)
	if h.Len() != 1 {
		t.Fatalf("Len()=%d, want 1 (same key)", h.Len())
	}
	k, v := h.ExtractMax()
	if k != 0 || v != 3.0 {
		t.Fatalf("got (%d,%g), want (0,3)", k, v)
	}
}

func TestExtractMaxNoGreaterRemains(t *testing.T) {
	h := New(16)
	vals := map[int]float64{0: 4, 1: 9, 2: 1, 3: 7, 4: 2, 5: 8}
	for k, v := range vals {
		h.Update(k, v)
	}

	_, rij := h.ExtractMax()
	for h.Len() > 0 {
		_, v := h.ExtractMax()
		if v > rij {
			t.Fatalf("remaining value %g exceeds extracted max %g", v, rij)
		}
		rij = v
	}
}

func TestDeterministicTieBreak(t *testing.T) {
	run := func() []int {
		h := New(4)
		h.Update(0, 5.0)
		h.Update(1, 5.0)
		order := make([]int, 0, 2)
		for h.Len() > 0 {
			k, _ := h.ExtractMax()
			order = append(order, k)
		}
		return order
	}

	first := run()
	for i := 0; i < 5; i++ {
		got := run()
		if got[0] != first[0] || got[1] != first[1] {
			t.Fatalf("tie-break order not deterministic: %v vs %v", got, first)
		}
	}
}
