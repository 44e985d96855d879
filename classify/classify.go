// Package classify detects the base of a numeral token and validates its
// digits before any conversion happens.
//
// Tokens with a 0x, 0b or 0o prefix are hexadecimal, binary and octal. Any
// other token must be a decimal integer with an optional sign that fits in a
// signed 128-bit integer.
//
// Invalid digits in a prefixed token are all reported at once. Positions are
// character offsets into the original token, prefix included, so "0x1G"
// reports position 3.
package classify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/radix"
	"github.com/calebcase/radix/integer"
)

// Error classes
var (
	Error = errs.Class("classify")

	// InvalidFormat is a token that is not a recognized numeral.
	InvalidFormat = errs.Class("invalid format")
)

// InvalidCharsError lists every invalid character position in a prefixed
// token.
type InvalidCharsError struct {
	Input     string
	Base      radix.Base
	Positions []int
}

func (e *InvalidCharsError) Error() string {
	return fmt.Sprintf("invalid %s characters in %q at positions %v", e.Base, e.Input, e.Positions)
}

// InvalidChars extracts an *InvalidCharsError from err.
func InvalidChars(err error) (ice *InvalidCharsError, ok bool) {
	ok = errors.As(err, &ice)

	return ice, ok
}

// Token is a classified numeral.
type Token struct {
	// Input is the token as given.
	Input string

	Kind Kind

	// Digits is the token without its prefix. Hexadecimal digits are
	// uppercase.
	Digits string

	// Value is the parsed value of decimal tokens.
	Value integer.Int128
}

// Base returns the base of the token.
func (t Token) Base() radix.Base {
	return t.Kind.Base
}

// Classify determines the base of input and validates its digits.
func Classify(input string) (tok Token, err error) {
	defer Error.WrapP(&err)

	kind, _ := Kinds.Match(input)

	tok = Token{
		Input: input,
		Kind:  kind,
	}

	if kind.Base == radix.Decimal {
		return classifyDecimal(tok)
	}

	digits := input[len(kind.Prefix):]
	if digits == "" {
		return tok, InvalidFormat.New("no digits after %s", kind.Prefix)
	}

	positions := Invalid(digits, kind.Base)
	if len(positions) > 0 {
		offset := len(kind.Prefix)
		for i := range positions {
			positions[i] += offset
		}

		return tok, &InvalidCharsError{
			Input:     input,
			Base:      kind.Base,
			Positions: positions,
		}
	}

	if kind.Base == radix.Hexadecimal {
		digits = strings.ToUpper(digits)
	}

	tok.Digits = digits

	return tok, nil
}

// Invalid returns the character positions in digits that are not valid in
// base.
func Invalid(digits string, base radix.Base) (positions []int) {
	i := 0
	for _, r := range digits {
		if !base.Valid(r) {
			positions = append(positions, i)
		}
		i++
	}

	return positions
}

func classifyDecimal(tok Token) (_ Token, err error) {
	s := tok.Input

	body := strings.TrimLeft(s, "+-")
	if len(s)-len(body) > 1 || body == "" || len(Invalid(body, radix.Decimal)) > 0 {
		return tok, InvalidFormat.New("unknown number format: %s", s)
	}

	v, err := integer.Parse(s)
	if err != nil {
		return tok, InvalidFormat.Wrap(err)
	}

	tok.Digits = s
	tok.Value = v

	return tok, nil
}
