package classify

import (
	"strings"

	"github.com/calebcase/radix"
)

// Kind is a token prefix and the base it selects.
type Kind struct {
	Prefix string
	Base   radix.Base
	Abbr   string
}

// Match returns true if s starts with this kind's prefix.
func (k Kind) Match(s string) bool {
	return strings.HasPrefix(s, k.Prefix)
}

type kinds []Kind

// Match returns the first kind whose prefix matches s.
func (ks kinds) Match(s string) (k Kind, ok bool) {
	for _, k := range ks {
		if k.Match(s) {
			return k, true
		}
	}

	return k, false
}

var (
	Hexadecimal = Kind{"0x", radix.Hexadecimal, "x"}
	Binary      = Kind{"0b", radix.Binary, "b"}
	Octal       = Kind{"0o", radix.Octal, "o"}
	Decimal     = Kind{"", radix.Decimal, "d"}

	// Kinds is ordered so the empty decimal prefix is tried last.
	Kinds = kinds{
		Hexadecimal,
		Binary,
		Octal,
		Decimal,
	}
)
