package integer

import (
	"math"
	"math/big"

	"github.com/zeebo/errs"
	"lukechampine.com/uint128"

	"github.com/calebcase/radix"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

var signBit = uint128.New(0, 1<<63)

// Limits
var (
	Zero Int128
	Min  = Int128{bits: signBit}
	Max  = Int128{bits: uint128.New(math.MaxUint64, math.MaxInt64)}
)

var (
	bigMin = Min.Big()
	bigMax = Max.Big()
)

// Int128 is a signed 128-bit integer. It is stored as its 128-bit two's
// complement bit pattern.
type Int128 struct {
	bits uint128.Uint128
}

// FromInt64 returns v as an Int128.
func FromInt64(v int64) Int128 {
	u := uint128.From64(uint64(v))
	if v < 0 {
		u.Hi = math.MaxUint64
	}

	return Int128{bits: u}
}

// FromBits reinterprets the 128-bit pattern u as a signed value.
func FromBits(u uint128.Uint128) Int128 {
	return Int128{bits: u}
}

// FromBig converts i. It fails if i is outside [-2^127, 2^127-1].
func FromBig(i *big.Int) (_ Int128, err error) {
	if i.Cmp(bigMin) < 0 || i.Cmp(bigMax) > 0 {
		return Zero, radix.Overflow.New("%s exceeds %d bits", i, radix.MaxBits)
	}

	mag := uint128.FromBig(new(big.Int).Abs(i))
	if i.Sign() < 0 {
		return Int128{bits: uint128.Zero.SubWrap(mag)}, nil
	}

	return Int128{bits: mag}, nil
}

// Parse reads a base 10 integer with an optional sign.
func Parse(s string) (_ Int128, err error) {
	defer Error.WrapP(&err)

	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Zero, radix.MalformedDigits.New("invalid decimal %q", s)
	}

	return FromBig(i)
}

// MustParse is Parse but panics on error.
func MustParse(s string) Int128 {
	i, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return i
}

// Bits returns the 128-bit two's complement pattern of i.
func (i Int128) Bits() uint128.Uint128 {
	return i.bits
}

// Sign returns -1, 0 or +1.
func (i Int128) Sign() int {
	switch {
	case i.bits.IsZero():
		return 0
	case i.bits.Hi>>63 == 1:
		return -1
	}

	return 1
}

// Neg returns -i. Min.Neg() is Min.
func (i Int128) Neg() Int128 {
	return Int128{bits: uint128.Zero.SubWrap(i.bits)}
}

// Abs returns the magnitude of i. Unlike Neg it cannot overflow: the
// magnitude of Min is 2^127.
func (i Int128) Abs() uint128.Uint128 {
	if i.Sign() < 0 {
		return uint128.Zero.SubWrap(i.bits)
	}

	return i.bits
}

// BitLen returns the number of bits needed for the magnitude of i.
func (i Int128) BitLen() int {
	return i.Abs().Len()
}

// Cmp compares i and j returning -1, 0 or +1.
func (i Int128) Cmp(j Int128) int {
	return i.bits.Xor(signBit).Cmp(j.bits.Xor(signBit))
}

// Big returns i as a *big.Int.
func (i Int128) Big() *big.Int {
	b := i.Abs().Big()
	if i.Sign() < 0 {
		b.Neg(b)
	}

	return b
}

// String returns the base 10 representation of i.
func (i Int128) String() string {
	if i.Sign() >= 0 {
		return i.bits.String()
	}

	return "-" + i.Abs().String()
}
