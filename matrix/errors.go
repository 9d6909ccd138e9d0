// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every exported method returns these sentinels and tests check them
// via errors.Is. No method panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Methods attach context with denseErrorf; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> index range -> occupancy.

var (
	// ErrBadShape is returned when the requested order is invalid (n < 1).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	// Public indexers (At/Insert) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDuplicateEdge signals an insertion into an already occupied cell.
	// The zero-weight diagonal counts as occupied.
	ErrDuplicateEdge = errors.New("matrix: duplicate edge")

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
