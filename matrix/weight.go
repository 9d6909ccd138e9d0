// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Weight is the cell type of the adjacency matrix: either an edge carrying
//     a signed integer weight, or no edge at all.
//   - Absence is a tag, not a reserved number, so every int64 is a legal weight.

package matrix

import "strconv"

// infText is how an absent edge is rendered by String and Dense.String.
const infText = "inf"

// Weight is a tagged optional edge weight. The zero value is "no edge".
type Weight struct {
	value   int64 // edge weight; meaningful only when present
	present bool  // true iff an edge exists
}

// Some returns a Weight describing an edge of weight w.
func Some(w int64) Weight {
	return Weight{value: w, present: true}
}

// None returns the "no edge" Weight.
func None() Weight {
	return Weight{}
}

// Value reports the weight and whether an edge is present.
func (w Weight) Value() (int64, bool) {
	return w.value, w.present
}

// Present reports whether the cell holds an edge.
func (w Weight) Present() bool {
	return w.present
}

// String renders the weight in decimal, or "inf" when absent.
func (w Weight) String() string {
	if !w.present {
		return infText
	}

	return strconv.FormatInt(w.value, 10)
}
