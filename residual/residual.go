// Package residual implements the sparse residual store (component 4.C):
// a map from a composite key k = v + j*n (node v, Taylor step j) to a
// nonnegative real, with O(1) expected amortized access and no ordering
// guarantee across keys.
package residual

// Store is a sparse map from composite key to residual value. The zero
// value is ready to use.
type Store struct {
	values map[int]float64
}

// New returns an empty Store sized for up to capacity live keys.
func New(capacity int) *Store {
	return &Store{values: make(map[int]float64, capacity)}
}

// Get returns the value at k, or 0 if absent.
func (s *Store) Get(k int) float64 {
	return s.values[k]
}

// Set writes v at k. Writing 0 removes the key, keeping the store's live
// key count equal to the number of logically nonzero entries.
func (s *Store) Set(k int, v float64) {
	if v == 0 {
		delete(s.values, k)
		return
	}
	s.values[k] = v
}

// Add applies delta to the value at k and returns (new, old).
func (s *Store) Add(k int, delta float64) (float64, float64) {
	old := s.values[k]
	next := old + delta
	s.Set(k, next)
	return next, old
}

// Len returns the number of logically nonzero keys currently live.
func (s *Store) Len() int {
	return len(s.values)
}
