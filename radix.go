package radix

import (
	"github.com/zeebo/errs"
)

// Error classes shared by all packages.
var (
	// MalformedDigits is a digit string that is empty, contains a character
	// outside its base's alphabet, or is wider than 128 bits.
	MalformedDigits = errs.Class("malformed digits")

	// Overflow is a value that cannot be represented in the requested
	// encoding.
	Overflow = errs.Class("overflow")
)

// MaxBits is the widest supported value.
const MaxBits = 128

// Base is a supported numeral base.
type Base uint8

// Bases
const (
	Binary      Base = 2
	Octal       Base = 8
	Decimal     Base = 10
	Hexadecimal Base = 16
)

var names = map[Base]string{
	Binary:      "Binary",
	Octal:       "Octal",
	Decimal:     "Decimal",
	Hexadecimal: "Hexadecimal",
}

// String returns the name of the base.
func (b Base) String() string {
	if n, ok := names[b]; ok {
		return n
	}

	return "Unknown"
}

// Shift returns the number of bits each digit carries for power of two bases
// and zero otherwise.
func (b Base) Shift() uint {
	switch b {
	case Binary:
		return 1
	case Octal:
		return 3
	case Hexadecimal:
		return 4
	}

	return 0
}

// Digit returns the value of the digit r in base b.
func (b Base) Digit(r rune) (v uint64, ok bool) {
	switch {
	case r >= '0' && r <= '9':
		v = uint64(r - '0')
	case r >= 'a' && r <= 'f':
		v = uint64(r-'a') + 10
	case r >= 'A' && r <= 'F':
		v = uint64(r-'A') + 10
	default:
		return 0, false
	}

	if v >= uint64(b) {
		return 0, false
	}

	return v, true
}

// Valid returns true if r is a digit of base b.
func (b Base) Valid(r rune) bool {
	_, ok := b.Digit(r)

	return ok
}

const upper = "0123456789ABCDEF"

// Symbol returns the uppercase character for digit value v.
func Symbol(v uint64) byte {
	return upper[v&0xF]
}
