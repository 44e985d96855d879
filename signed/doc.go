// Package signed encodes and decodes signed integers as binary strings.
//
// The length of a binary string is its width. There is no separate width
// field: "1" and "01" and "001" are different encodings.
//
// Width
//
// A negative value v uses the smallest width w where v >= -2^(w-1). A
// non-negative value always gets an explicit zero sign bit in front of its
// plain binary digits, so its width is bit_length(v)+1 (zero encodes as "00").
//
//  | Value | Width | Two's Complement | One's Complement |
//  |-------|-------|------------------|------------------|
//  | 0     | 2     | 00               | 00               |
//  | 5     | 4     | 0101             | 0101             |
//  | -1    | 1     | 1                | 10               |
//  | -2    | 2     | 10               | 101              |
//  | -128  | 8     | 10000000         | 101111111        |
//  |-------|-------|------------------|------------------|
//
// Two's complement encodings are produced by rendering the full 128-bit
// pattern and keeping the low w digits. Two's complement patterns of one
// value at different widths agree on their low bits, and w is exactly the
// width where the sign bit stops being redundant.
//
// One's complement needs one more bit than two's complement for powers of
// two (-1 needs "10"), and -2^127 cannot be encoded in 128 bits at all.
//
// Decoding
//
// Decode reads a pattern three ways at once. A single masked complement,
// ~unsigned & (2^width - 1), feeds both signed readings:
//
//  two's complement = -(inverted + 1)  if the leading bit is 1
//  one's complement = -inverted        if the leading bit is 1
//
// With a leading 0 both equal the unsigned value.
package signed
