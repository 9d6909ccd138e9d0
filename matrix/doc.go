// Package matrix offers the dense adjacency matrix used by graphkind.
//
// The matrix package provides:
//
//   - Weight, a tagged cell value: an int64 edge weight or "no edge".
//     Absence is never encoded as a magic number, so extreme weights such as
//     math.MinInt64 or math.MaxInt64 stay legal.
//   - Dense, an n×n row-major matrix with O(1) lookups and O(n²) memory.
//     The diagonal is fixed at 0 and counts as an occupied cell.
//
// Insertion is strict: a second edge for the same ordered pair is rejected
// with ErrDuplicateEdge and the matrix is left unchanged.
//
// Matrices are intended for dense or small graphs where O(n²) memory is
// acceptable.
package matrix
