// Package convert provides unsigned conversion between binary, octal and
// hexadecimal digit strings.
//
// Every conversion parses into a single unsigned 128-bit integer and renders
// it again. Rendering never pads: the result has exactly as many digits as
// the magnitude needs and zero renders as "0".
//
// Only the power of two bases are handled here, so each digit maps to a
// fixed number of bits:
//
//  | Base | Bits/Digit | Max Digits |
//  |------|------------|------------|
//  | 2    | 1          | 128        |
//  | 8    | 3          | 43         |
//  | 16   | 4          | 32         |
//  |------|------------|------------|
//
// Max Digits counts significant digits; leading zeros are accepted in any
// number.
package convert

import (
	"github.com/zeebo/errs"
	"lukechampine.com/uint128"

	"github.com/calebcase/radix"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("convert")

// Parse reads digits in base into an unsigned 128-bit integer. It fails with
// radix.MalformedDigits if digits is empty, contains a character outside the
// base's alphabet, or exceeds 128 bits.
func Parse(digits string, base radix.Base) (u uint128.Uint128, err error) {
	defer Error.WrapP(&err)

	shift := base.Shift()
	if shift == 0 {
		return u, Error.New("unsupported base: %d", base)
	}

	if len(digits) == 0 {
		return u, radix.MalformedDigits.New("empty")
	}

	for i, r := range digits {
		d, ok := base.Digit(r)
		if !ok {
			return uint128.Zero, radix.MalformedDigits.New("invalid %s digit %q at %d", base, r, i)
		}

		if u.Len() > radix.MaxBits-int(shift) {
			return uint128.Zero, radix.MalformedDigits.New("exceeds %d bits: %q", radix.MaxBits, digits)
		}

		u = u.Lsh(shift).Or64(d)
	}

	return u, nil
}

// Format renders u in base without leading zeros.
func Format(u uint128.Uint128, base radix.Base) string {
	shift := base.Shift()
	if shift == 0 {
		panic("convert: unsupported base " + base.String())
	}

	if u.IsZero() {
		return "0"
	}

	n := (u.Len() + int(shift) - 1) / int(shift)

	return format(u, shift, n)
}

// FormatPadded renders u in base using exactly width digits. High digits
// that do not fit are dropped.
func FormatPadded(u uint128.Uint128, base radix.Base, width int) string {
	shift := base.Shift()
	if shift == 0 {
		panic("convert: unsupported base " + base.String())
	}

	return format(u, shift, width)
}

func format(u uint128.Uint128, shift uint, n int) string {
	mask := uint64(1)<<shift - 1

	buf := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		buf[i] = radix.Symbol(u.Lo & mask)
		u = u.Rsh(shift)
	}

	return string(buf)
}

// convert parses in with from and renders the result with to.
func convert(in string, from, to radix.Base) (out string, err error) {
	u, err := Parse(in, from)
	if err != nil {
		return "", err
	}

	return Format(u, to), nil
}

// HexToBinary converts a hexadecimal digit string to binary.
func HexToBinary(hex string) (binary string, err error) {
	return convert(hex, radix.Hexadecimal, radix.Binary)
}

// OctalToBinary converts an octal digit string to binary.
func OctalToBinary(octal string) (binary string, err error) {
	return convert(octal, radix.Octal, radix.Binary)
}

// BinaryToHex converts a binary digit string to uppercase hexadecimal.
func BinaryToHex(binary string) (hex string, err error) {
	return convert(binary, radix.Binary, radix.Hexadecimal)
}

// BinaryToOctal converts a binary digit string to octal.
func BinaryToOctal(binary string) (octal string, err error) {
	return convert(binary, radix.Binary, radix.Octal)
}
