package bellmanford

import (
	"errors"
	"math/big"
)

// Source is the fixed start vertex of every analysis.
const Source = 0

// ErrDistanceLength is the panic value used when a distance vector does not
// match the graph order. Recover it and match with errors.Is.
var ErrDistanceLength = errors.New("bellmanford: distance vector length mismatch")

// Graph is the read-only view the engine needs: a square matrix of optional
// int64 weights. *matrix.Dense satisfies it.
type Graph interface {
	// Order returns the number of vertices.
	Order() int
	// Edge reports the weight of u→v and whether the edge exists.
	Edge(u, v int) (int64, bool)
}

// Distance is a tagged shortest-path estimate: finite, or unreachable (+∞).
// Finite distances are exact. A walk over extreme weights may sum beyond the
// int64 range; such a distance stays finite and is available through Big.
// The zero value is unreachable.
type Distance struct {
	value  wide
	finite bool
}

// Finite returns a reachable distance d.
func Finite(d int64) Distance {
	return Distance{value: wideFrom(d), finite: true}
}

// Unreachable returns the +∞ distance.
func Unreachable() Distance {
	return Distance{}
}

// Value reports the distance and whether it is finite and fits in an int64.
// A finite distance outside the int64 range reports false; see InRange and
// Big.
func (d Distance) Value() (int64, bool) {
	if !d.finite {
		return 0, false
	}
	v, ok := d.value.toInt64()
	if !ok {
		return 0, false
	}

	return v, true
}

// IsFinite reports whether the vertex is reachable.
func (d Distance) IsFinite() bool {
	return d.finite
}

// InRange reports whether d is finite and representable as an int64.
func (d Distance) InRange() bool {
	_, ok := d.Value()

	return ok
}

// Big returns the exact distance, or nil when unreachable.
func (d Distance) Big() *big.Int {
	if !d.finite {
		return nil
	}

	return d.value.big()
}

// String renders the exact distance in decimal, or "inf" when unreachable.
func (d Distance) String() string {
	if !d.finite {
		return "inf"
	}

	return d.value.String()
}
