package signed

import (
	"github.com/zeebo/errs"
	"lukechampine.com/uint128"

	"github.com/calebcase/radix"
	"github.com/calebcase/radix/convert"
	"github.com/calebcase/radix/integer"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("signed")

// EncodeUnsigned returns the plain binary digits of v. It returns false if v
// is negative; callers skip the unsigned rendering in that case.
func EncodeUnsigned(v integer.Int128) (binary string, ok bool) {
	if v.Sign() < 0 {
		return "", false
	}

	return convert.Format(v.Bits(), radix.Binary), true
}

// EncodeTwosComplement returns v in two's complement using MinimalWidth(v)
// bits.
func EncodeTwosComplement(v integer.Int128) (binary string) {
	if v.Sign() >= 0 {
		return "0" + convert.Format(v.Bits(), radix.Binary)
	}

	w := MinimalWidth(v)
	pattern := convert.FormatPadded(v.Bits(), radix.Binary, radix.MaxBits)

	return pattern[radix.MaxBits-w:]
}

// EncodeOnesComplement returns v in one's complement using the fewest bits
// that keep a zero sign bit on the magnitude. It fails with radix.Overflow
// for -2^127, which needs 129 bits.
func EncodeOnesComplement(v integer.Int128) (binary string, err error) {
	if v.Sign() >= 0 {
		return EncodeTwosComplement(v), nil
	}

	mag := v.Abs()

	w := mag.Len() + 1
	if w > radix.MaxBits {
		return "", Error.Wrap(radix.Overflow.New("%s needs %d bits in one's complement", v, w))
	}

	inverted := invert(mag, w)

	return convert.FormatPadded(inverted, radix.Binary, w), nil
}

// mask returns 2^w - 1 for 1 <= w <= 128.
func mask(w int) uint128.Uint128 {
	if w >= radix.MaxBits {
		return uint128.Max
	}

	return uint128.From64(1).Lsh(uint(w)).SubWrap64(1)
}

// invert returns ~u & (2^w - 1).
func invert(u uint128.Uint128, w int) uint128.Uint128 {
	return u.Xor(uint128.Max).And(mask(w))
}
