package signed

import (
	"lukechampine.com/uint128"

	"github.com/calebcase/radix"
	"github.com/calebcase/radix/convert"
	"github.com/calebcase/radix/integer"
)

// Decoded holds every reading of a binary pattern.
type Decoded struct {
	// Width is the length of the decoded pattern.
	Width int

	Unsigned       uint128.Uint128
	TwosComplement integer.Int128
	OnesComplement integer.Int128
}

// Negative returns true if the pattern's sign bit is set.
func (d Decoded) Negative() bool {
	return d.TwosComplement.Sign() < 0
}

// Decode reads binary as unsigned, two's complement and one's complement
// values at width len(binary). It fails with radix.MalformedDigits if binary
// is empty, contains anything other than '0' and '1', or is longer than 128.
func Decode(binary string) (d Decoded, err error) {
	defer Error.WrapP(&err)

	if len(binary) > radix.MaxBits {
		return d, radix.MalformedDigits.New("width %d exceeds %d bits", len(binary), radix.MaxBits)
	}

	unsigned, err := convert.Parse(binary, radix.Binary)
	if err != nil {
		return d, err
	}

	d.Width = len(binary)
	d.Unsigned = unsigned

	if binary[0] != '1' {
		d.TwosComplement = integer.FromBits(unsigned)
		d.OnesComplement = integer.FromBits(unsigned)

		return d, nil
	}

	inverted := invert(unsigned, d.Width)

	d.TwosComplement = integer.FromBits(inverted.AddWrap64(1)).Neg()
	d.OnesComplement = integer.FromBits(inverted).Neg()

	return d, nil
}
