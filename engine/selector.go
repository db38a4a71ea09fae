package engine

import (
	"github.com/kkloster/gexpm/rheap"
	"github.com/kkloster/gexpm/rqueue"
)

// selector is the discipline-agnostic abstraction behind both
// relaxation variants: SelectAndExtract picks the next coordinate to
// push, ObserveUpdate is notified whenever a coordinate's residual
// changes (including its initial seeding). The push loop in Run is
// written once against this interface; heapSelector and queueSelector
// supply the exact and approximate disciplines respectively.
type selector interface {
	Len() int
	SelectAndExtract() (int, bool)
	ObserveUpdate(k int, old, new, delta float64)
}

// heapSelector relaxes the globally largest residual first, via an
// indexed max-heap. The residual value lives in the heap itself; old
// and new are unused beyond recovering delta would already give us,
// but are accepted to satisfy the shared interface.
type heapSelector struct {
	h *rheap.Heap
}

func newHeapSelector(keySpace int) *heapSelector {
	return &heapSelector{h: rheap.New(keySpace)}
}

func (s *heapSelector) Len() int { return s.h.Len() }

func (s *heapSelector) SelectAndExtract() (int, bool) {
	if s.h.Len() == 0 {
		return 0, false
	}
	k, _ := s.h.ExtractMax()
	return k, true
}

func (s *heapSelector) ObserveUpdate(k int, _, _, delta float64) {
	s.h.Update(k, delta)
}

// queueSelector relaxes residuals in FIFO admission order: a key is
// enqueued only the instant its value crosses the admission threshold
// tau from below, never re-enqueued while it stays above tau.
type queueSelector struct {
	q   *rqueue.Queue
	tau float64
}

func newQueueSelector(capacity int, tau float64) *queueSelector {
	return &queueSelector{q: rqueue.New(capacity), tau: tau}
}

func (s *queueSelector) Len() int { return s.q.Len() }

func (s *queueSelector) SelectAndExtract() (int, bool) {
	return s.q.PopFront()
}

func (s *queueSelector) ObserveUpdate(k int, old, new, _ float64) {
	if new > s.tau && old <= s.tau {
		// Capacity is sized to n*(N+1), the exact bound on distinct
		// live keys, so this can never overflow.
		_ = s.q.Push(k)
	}
}
