package bellmanford

import (
	"math/big"
	"math/bits"
	"strconv"
)

// wide is a signed 128-bit integer hi·2⁶⁴ + lo.
// A distance is the weight of a walk built by fewer than n³ relaxations of
// int64 edges, and n² cells must fit in memory, so the sum never leaves the
// 128-bit range.
type wide struct {
	hi int64
	lo uint64
}

// wideFrom sign-extends x.
func wideFrom(x int64) wide {
	return wide{hi: x >> 63, lo: uint64(x)}
}

// add returns a+b exactly.
func (a wide) add(b wide) wide {
	lo, carry := bits.Add64(a.lo, b.lo, 0)

	return wide{hi: a.hi + b.hi + int64(carry), lo: lo}
}

// less reports a < b.
func (a wide) less(b wide) bool {
	if a.hi != b.hi {
		return a.hi < b.hi
	}

	return a.lo < b.lo
}

// toInt64 returns a and whether it is representable as int64.
func (a wide) toInt64() (int64, bool) {
	v := int64(a.lo)

	return v, a.hi == v>>63
}

// big returns a as a freshly allocated *big.Int.
func (a wide) big() *big.Int {
	b := big.NewInt(a.hi)
	b.Lsh(b, 64)

	return b.Add(b, new(big.Int).SetUint64(a.lo))
}

// String renders a in decimal.
func (a wide) String() string {
	if v, ok := a.toInt64(); ok {
		return strconv.FormatInt(v, 10)
	}

	return a.big().String()
}
