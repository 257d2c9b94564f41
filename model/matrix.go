// Package model - dense square int64 matrix.
//
// The solver reads travel matrices on every cost evaluation, so access must
// be allocation-free and branch-light. Bounds and value constraints are
// checked once, by Input.Validate; afterwards At/Set are plain slice reads
// on a linearized buffer (row-major, w[i*n+j]).
package model

// Matrix is a dense square matrix of int64 values with O(1) access.
// The zero value is unusable; construct with NewMatrix or FromRows.
type Matrix struct {
	n    int
	data []int64
}

// NewMatrix returns an n×n matrix filled with zeros. Negative n yields an
// empty matrix (Dim()==0), which Validate rejects later if required.
//
// Complexity: O(n²) time and space.
func NewMatrix(n int) *Matrix {
	if n < 0 {
		n = 0
	}

	return &Matrix{n: n, data: make([]int64, n*n)}
}

// FromRows builds a matrix from row slices. Returns ErrNonSquare when any
// row length differs from the number of rows.
//
// Complexity: O(n²).
func FromRows(rows [][]int64) (*Matrix, error) {
	var n = len(rows)
	m := NewMatrix(n)

	var i int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, ErrNonSquare
		}
		copy(m.data[i*n:(i+1)*n], rows[i])
	}

	return m, nil
}

// Dim returns the matrix order n.
func (m *Matrix) Dim() int { return m.n }

// At returns the entry at (i, j).
//
// Contract: 0 ≤ i, j < Dim(). Indices are validated once at instance
// construction; out-of-range access here panics like any slice access.
//
// Complexity: O(1), no allocations.
func (m *Matrix) At(i, j int) int64 { return m.data[i*m.n+j] }

// Set stores v at (i, j) under the same contract as At.
func (m *Matrix) Set(i, j int, v int64) { m.data[i*m.n+j] = v }

// Scale returns a new matrix with every entry multiplied by f.
// Used to bring user units into internal cost units (see package doc).
//
// Complexity: O(n²).
func (m *Matrix) Scale(f int64) *Matrix {
	out := NewMatrix(m.n)

	var i int
	for i = range m.data {
		out.data[i] = m.data[i] * f
	}

	return out
}

// minEntry returns the smallest entry; used by validation to reject
// negative values in a single pass. Returns 0 for an empty matrix.
func (m *Matrix) minEntry() int64 {
	if len(m.data) == 0 {
		return 0
	}

	var (
		lo = m.data[0]
		i  int
	)
	for i = 1; i < len(m.data); i++ {
		if m.data[i] < lo {
			lo = m.data[i]
		}
	}

	return lo
}
