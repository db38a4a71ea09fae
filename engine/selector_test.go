package engine

import "testing"

// TestQueueSelectorEnqueuesOnlyOnUpwardCrossing is scenario 6: a key's
// residual oscillates across tau; it must be admitted exactly once per
// upward crossing, never while already above tau and never on a
// downward crossing.
func TestQueueSelectorEnqueuesOnlyOnUpwardCrossing(t *testing.T) {
	sel := newQueueSelector(8, 0.5)

	// 0 -> 0.3: stays below tau, no admission.
	sel.ObserveUpdate(1, 0, 0.3, 0.3)
	if sel.Len() != 0 {
		t.Fatalf("Len()=%d after a sub-threshold update, want 0", sel.Len())
	}

	// 0.3 -> 0.8: upward crossing, admitted once.
	sel.ObserveUpdate(1, 0.3, 0.8, 0.5)
	if sel.Len() != 1 {
		t.Fatalf("Len()=%d after the upward crossing, want 1", sel.Len())
	}

	// 0.8 -> 1.2: already above tau, must not be re-enqueued.
	sel.ObserveUpdate(1, 0.8, 1.2, 0.4)
	if sel.Len() != 1 {
		t.Fatalf("Len()=%d after a same-side update, want 1 (no re-enqueue)", sel.Len())
	}

	// Extract it so the key is no longer resident in the queue.
	k, ok := sel.SelectAndExtract()
	if !ok || k != 1 {
		t.Fatalf("SelectAndExtract()=(%d,%v), want (1,true)", k, ok)
	}
	if sel.Len() != 0 {
		t.Fatalf("Len()=%d after extraction, want 0", sel.Len())
	}

	// 1.2 -> 0.2: downward crossing, must not be admitted.
	sel.ObserveUpdate(1, 1.2, 0.2, -1.0)
	if sel.Len() != 0 {
		t.Fatalf("Len()=%d after a downward crossing, want 0", sel.Len())
	}

	// 0.2 -> 0.6: a second upward crossing, admitted again.
	sel.ObserveUpdate(1, 0.2, 0.6, 0.4)
	if sel.Len() != 1 {
		t.Fatalf("Len()=%d after the second upward crossing, want 1", sel.Len())
	}
}

// TestQueueSelectorAdmitsDistinctKeysIndependently confirms the
// upward-crossing rule is tracked per key, not globally: two keys
// crossing tau in the same step both get admitted.
func TestQueueSelectorAdmitsDistinctKeysIndependently(t *testing.T) {
	sel := newQueueSelector(8, 0.5)

	sel.ObserveUpdate(1, 0, 0.6, 0.6)
	sel.ObserveUpdate(2, 0, 0.7, 0.7)
	if sel.Len() != 2 {
		t.Fatalf("Len()=%d, want 2 (both keys crossed tau upward)", sel.Len())
	}
}
