// Package report renders the conversion report for a classified token and
// the caret display for invalid input.
package report

import (
	"fmt"
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/radix"
	"github.com/calebcase/radix/classify"
	"github.com/calebcase/radix/convert"
	"github.com/calebcase/radix/signed"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("report")

// Mode selects how hexadecimal, octal and binary input is read when
// reporting decimal values. Decimal input is always signed.
type Mode uint8

// Modes
const (
	// Unsigned reads the digits as a plain magnitude. All three decimal
	// rows show the same value.
	Unsigned Mode = iota

	// Signed reads the leading bit of the binary digits as a sign bit.
	// Binary input is read at the width it was written in. Hexadecimal and
	// octal input is first reduced to its minimal binary form, so 0x00FF
	// reads as 11111111 and is negative.
	Signed
)

func (m Mode) String() string {
	switch m {
	case Unsigned:
		return "unsigned"
	case Signed:
		return "signed"
	}

	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Row labels
const (
	LabelUnsigned = "Unsigned"
	LabelTwos     = "2's Complement"
	LabelOnes     = "1's Complement"
)

// Render builds the report for tok. The first conversion failure ends the
// report and is returned as is.
func Render(tok classify.Token, mode Mode) (report string, err error) {
	defer Error.WrapP(&err)

	var b strings.Builder

	switch tok.Base() {
	case radix.Hexadecimal:
		err = renderHex(&b, tok.Digits, mode)
	case radix.Binary:
		err = renderBinary(&b, tok.Digits, mode)
	case radix.Octal:
		err = renderOctal(&b, tok.Digits, mode)
	case radix.Decimal:
		err = renderDecimal(&b, tok)
	default:
		err = Error.New("unsupported base: %d", tok.Base())
	}
	if err != nil {
		return "", err
	}

	return b.String(), nil
}

func renderHex(b *strings.Builder, hex string, mode Mode) (err error) {
	binary, err := convert.HexToBinary(hex)
	if err != nil {
		return err
	}

	octal, err := convert.BinaryToOctal(binary)
	if err != nil {
		return err
	}

	fmt.Fprintf(b, "Hexadecimal Input: %s\n\n", hex)
	fmt.Fprintf(b, "Binary Representation: %s\n", binary)
	fmt.Fprintf(b, "Octal Representation: %s\n", octal)

	return renderDecoded(b, binary, mode)
}

func renderBinary(b *strings.Builder, binary string, mode Mode) (err error) {
	hex, err := convert.BinaryToHex(binary)
	if err != nil {
		return err
	}

	octal, err := convert.BinaryToOctal(binary)
	if err != nil {
		return err
	}

	fmt.Fprintf(b, "Binary Input: %s\n\n", binary)
	fmt.Fprintf(b, "Hexadecimal Representation: %s\n", hex)
	fmt.Fprintf(b, "Octal Representation: %s\n", octal)

	return renderDecoded(b, binary, mode)
}

func renderOctal(b *strings.Builder, octal string, mode Mode) (err error) {
	binary, err := convert.OctalToBinary(octal)
	if err != nil {
		return err
	}

	hex, err := convert.BinaryToHex(binary)
	if err != nil {
		return err
	}

	fmt.Fprintf(b, "Octal Input: %s\n\n", octal)
	fmt.Fprintf(b, "Binary Representation: %s\n", binary)
	fmt.Fprintf(b, "Hexadecimal Representation: %s\n", hex)

	return renderDecoded(b, binary, mode)
}

// renderDecoded writes the decimal rows for a binary pattern.
func renderDecoded(b *strings.Builder, binary string, mode Mode) (err error) {
	var unsigned, twos, ones string

	switch mode {
	case Signed:
		d, err := signed.Decode(binary)
		if err != nil {
			return err
		}

		unsigned = d.Unsigned.String()
		twos, ones = unsigned, unsigned

		if d.Negative() {
			twos = d.TwosComplement.String()
			ones = d.OnesComplement.String()
		}
	default:
		u, err := convert.Parse(binary, radix.Binary)
		if err != nil {
			return err
		}

		unsigned = u.String()
		twos, ones = unsigned, unsigned
	}

	fmt.Fprintf(b, "Decimal:\n")
	fmt.Fprintf(b, "  %s: %s\n", LabelUnsigned, unsigned)
	fmt.Fprintf(b, "  %s: %s\n", LabelTwos, twos)
	fmt.Fprintf(b, "  %s: %s\n", LabelOnes, ones)

	return nil
}

type row struct {
	label  string
	binary string
}

func renderDecimal(b *strings.Builder, tok classify.Token) (err error) {
	v := tok.Value

	var rows []row

	if unsigned, ok := signed.EncodeUnsigned(v); ok {
		rows = append(rows, row{LabelUnsigned, unsigned})
	}

	rows = append(rows, row{LabelTwos, signed.EncodeTwosComplement(v)})

	ones, err := signed.EncodeOnesComplement(v)
	switch {
	case err == nil:
		rows = append(rows, row{LabelOnes, ones})
	case radix.Overflow.Has(err):
		// Not representable in 128 bits; the row is left out.
	default:
		return err
	}

	sections := []struct {
		title string
		fn    func(string) (string, error)
	}{
		{"Binary", func(s string) (string, error) { return s, nil }},
		{"Hex", convert.BinaryToHex},
		{"Octal", convert.BinaryToOctal},
	}

	fmt.Fprintf(b, "Decimal Input: %s\n\n", tok.Digits)

	for _, sec := range sections {
		fmt.Fprintf(b, "%s Representation:\n", sec.title)

		for _, r := range rows {
			s, err := sec.fn(r.binary)
			if err != nil {
				return err
			}

			fmt.Fprintf(b, "  %s: %s\n", r.label, s)
		}
	}

	return nil
}
