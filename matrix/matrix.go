// Package matrix provides a dense adjacency-matrix representation of a
// core.Graph, adapted from the teacher's dense/adjacency-matrix library
// (matrix.Dense, matrix.BuildDenseAdjacency) and trimmed to exactly the
// slice this domain exercises: construction from a core.Graph and
// derivation of the column-stochastic random-walk matrix P that the
// push-based relaxation in engine approximates without ever materializing.
//
// The teacher's matrix package also carries dense linear algebra
// (Floyd-Warshall, elementwise ops, statistics) that has no home here:
// this domain is defined over sparse directed graphs processed in
// O(n+m) by csr/engine, and a dense N*N representation is a diagnostic
// and cross-check tool, never the hot path (see DESIGN.md).
package matrix

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates non-positive matrix dimensions.
var ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

// ErrIndexOutOfBounds indicates a row or column index outside [0,dim).
var ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

// Dense is a row-major square matrix of float64 values.
type Dense struct {
	n    int
	data []float64
}

// NewDense allocates an n*n Dense matrix initialized to zero.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// N returns the matrix's dimension.
func (m *Dense) N() int { return m.n }

func (m *Dense) index(row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, fmt.Errorf("matrix: At/Set(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}
	return row*m.n + col, nil
}

// At returns the value at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.index(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.index(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// String renders the matrix row by row, for CLI/debug output.
func (m *Dense) String() string {
	s := ""
	for r := 0; r < m.n; r++ {
		s += "["
		for c := 0; c < m.n; c++ {
			if c > 0 {
				s += ", "
			}
			s += fmt.Sprintf("%g", m.data[r*m.n+c])
		}
		s += "]\n"
	}
	return s
}
