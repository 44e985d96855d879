package signed

import (
	"lukechampine.com/uint128"

	"github.com/calebcase/radix"
	"github.com/calebcase/radix/integer"
)

// lowest returns -2^(w-1) for 1 <= w <= 128.
func lowest(w int) integer.Int128 {
	return integer.FromBits(uint128.From64(1).Lsh(uint(w - 1))).Neg()
}

// MinimalWidth returns the number of bits EncodeTwosComplement uses for v.
//
// For v < 0 it is the smallest w such that v >= -2^(w-1). The search stops at
// 128, which is where -2^127 lands. For v >= 0 it is bit_length(v)+1 with zero
// counted as one bit.
func MinimalWidth(v integer.Int128) int {
	if v.Sign() >= 0 {
		n := v.BitLen()
		if n == 0 {
			n = 1
		}

		return n + 1
	}

	w := 1
	for w < radix.MaxBits && v.Cmp(lowest(w)) < 0 {
		w++
	}

	return w
}

// Fits returns true if v is representable in two's complement at width w.
func Fits(v integer.Int128, w int) bool {
	if w < 1 {
		return false
	}
	if w >= radix.MaxBits {
		return true
	}

	lo := lowest(w)
	hi := integer.FromBits(lo.Neg().Bits().SubWrap64(1))

	return v.Cmp(lo) >= 0 && v.Cmp(hi) <= 0
}
