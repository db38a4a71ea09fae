// Package rheap implements the indexed max-heap (component 4.D) used by
// the exact Gauss-Southwell relaxation engine: a binary max-heap over
// residual entries keyed by a composite (node, Taylor-step) integer,
// with a parallel key-to-slot index so Update is O(log H) instead of
// requiring a linear scan to find the existing entry.
//
// The teacher's container/heap-based priority queues (dijkstra.nodePQ,
// prim_kruskal.edgePQ) use heap.Interface with a lazy-decrease-key
// strategy: they push a fresh entry on every improvement and ignore
// stale ones on pop. That works when entries are cheap and the key
// space is sparse. Here the key space is dense and bounded
// (n*(N+1)), so a flat position array keyed by the composite index
// gives true O(log H) updates without leaving stale entries behind.
package rheap

// entry is one live heap slot.
type entry struct {
	key   int
	value float64
}

// Heap is a max-heap over values, indexed by composite key for O(log H)
// Update. The zero value is not usable; construct with New.
type Heap struct {
	entries []entry
	pos     []int // pos[key] = slot index in entries, or -1 if absent
}

// New returns an empty Heap whose key space is [0, keySpace).
func New(keySpace int) *Heap {
	pos := make([]int, keySpace)
	for i := range pos {
		pos[i] = -1
	}
	return &Heap{pos: pos}
}

// Len returns the number of live entries.
func (h *Heap) Len() int {
	return len(h.entries)
}

// Update applies delta to the value at key, inserting it if absent, and
// restores the heap invariant by sifting in the direction required by
// the delta's sign.
func (h *Heap) Update(key int, delta float64) {
	slot := h.pos[key]
	if slot < 0 {
		h.entries = append(h.entries, entry{key: key, value: delta})
		slot = len(h.entries) - 1
		h.pos[key] = slot
		h.siftUp(slot)
		return
	}

	h.entries[slot].value += delta
	if delta >= 0 {
		h.siftUp(slot)
	} else {
		h.siftDown(slot)
	}
}

// ExtractMax removes and returns the (key, value) of the maximum entry.
// Its store slot is marked absent atomically with the heap removal;
// callers are responsible for zeroing any external residual value.
func (h *Heap) ExtractMax() (int, float64) {
	top := h.entries[0]
	last := len(h.entries) - 1

	h.pos[top.key] = -1
	if last == 0 {
		h.entries = h.entries[:0]
		return top.key, top.value
	}

	h.entries[0] = h.entries[last]
	h.pos[h.entries[0].key] = 0
	h.entries = h.entries[:last]
	h.siftDown(0)

	return top.key, top.value
}

func (h *Heap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.entries[parent].value >= h.entries[i].value {
			break
		}
		h.swap(parent, i)
		i = parent
	}
}

func (h *Heap) siftDown(i int) {
	n := len(h.entries)
	for {
		left, right := 2*i+1, 2*i+2
		largest := i
		if left < n && h.entries[left].value > h.entries[largest].value {
			largest = left
		}
		if right < n && h.entries[right].value > h.entries[largest].value {
			largest = right
		}
		if largest == i {
			break
		}
		h.swap(i, largest)
		i = largest
	}
}

func (h *Heap) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.pos[h.entries[i].key] = i
	h.pos[h.entries[j].key] = j
}
