// SPDX-License-Identifier: MIT
// Package: matrix
//
// dense.go - Dense, a square row-major matrix of Weight cells kept in one
// flat slice.

package matrix

import (
	"math"
	"strings"
)

// cellBytes bounds the size of one Weight cell (int64 plus tag, padded).
const cellBytes = 16

// Dense is an n×n row-major matrix of Weight cells.
// Cell (i, j) holds the weight of edge i→j, or None when the edge is absent.
// The diagonal always holds Some(0).
type Dense struct {
	n    int      // order (rows == cols)
	data []Weight // flat backing storage, length == n*n
}

// NewDense creates an n×n Dense matrix with a zero diagonal and every
// off-diagonal cell set to None.
// Stage 1 (Validate): ensure n > 0 and that n² cells are addressable.
// Stage 2 (Prepare): allocate flat backing slice (zero value is None).
// Stage 3 (Finalize): write Some(0) on the diagonal.
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	// Validate order; n*n must not overflow int, nor n*n cells the heap
	if n <= 0 || n > math.MaxInt/cellBytes/n {
		return nil, ErrBadShape
	}
	// Allocate flat slice; Weight{} already means "no edge"
	data := make([]Weight, n*n)

	// Distance to self is zero
	var i int
	for i = 0; i < n; i++ {
		data[i*n+i] = Some(0)
	}

	return &Dense{n: n, data: data}, nil
}

// Order returns the number of vertices (rows == cols).
// Complexity: O(1).
func (m *Dense) Order() int {
	return m.n
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if m == nil {
		return 0, denseErrorf(method, row, col, ErrNilMatrix)
	}
	// Validate row index
	if row < 0 || row >= m.n {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.n {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the cell at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (Weight, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return None(), err
	}

	return m.data[idx], nil
}

// Edge is the unchecked hot-loop accessor used by the analyses.
// It reports the weight of u→v and whether the edge exists.
// Callers guarantee 0 ≤ u, v < Order(); out-of-range indices panic like
// any slice access.
func (m *Dense) Edge(u, v int) (int64, bool) {
	return m.data[u*m.n+v].Value()
}

// Insert stores an edge of weight w at (row, col).
// It fails with ErrOutOfRange for bad indices and ErrDuplicateEdge when the
// cell is already occupied (including the diagonal). On failure the matrix
// is left untouched.
// Complexity: O(1).
func (m *Dense) Insert(row, col int, w int64) error {
	idx, err := m.indexOf("Insert", row, col)
	if err != nil {
		return err
	}
	// Never overwrite: each ordered pair holds at most one edge
	if m.data[idx].present {
		return denseErrorf("Insert", row, col, ErrDuplicateEdge)
	}
	m.data[idx] = Some(w)

	return nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(n²) time and memory.
func (m *Dense) Clone() *Dense {
	if m == nil {
		return nil
	}
	copyData := make([]Weight, len(m.data))
	copy(copyData, m.data)

	return &Dense{n: m.n, data: copyData}
}

// Equal reports whether m and o have the same order and identical cells.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String renders one row per line, cells separated by tabs, absent edges
// as "inf".
// Complexity: O(n²).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j = 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteByte('\t')
			}
			sb.WriteString(m.data[i*m.n+j].String())
		}
	}

	return sb.String()
}
