// Package radix converts numeral tokens between binary, octal, decimal and
// hexadecimal and encodes signed values as minimal width two's complement.
//
// Bases
//
//  | Base        | Radix | Prefix | Alphabet         |
//  |-------------|-------|--------|------------------|
//  | Binary      | 2     | 0b     | 0 1              |
//  | Octal       | 8     | 0o     | 0-7              |
//  | Decimal     | 10    |        | 0-9 (signed)     |
//  | Hexadecimal | 16    | 0x     | 0-9 A-F (a-f)    |
//  |-------------|-------|--------|------------------|
//
// All values are limited to 128 bits. Unsigned magnitudes cover 0 to
// 2^128-1 and signed values cover -2^127 to 2^127-1.
//
// Signed Encodings
//
// A binary string's length is its width. The same string decodes three ways:
//
//  | Pattern  | Unsigned | Two's Complement | One's Complement |
//  |----------|----------|------------------|------------------|
//  | 0        | 0        | 0                | 0                |
//  | 1        | 1        | -1               | 0 (-0)           |
//  | 01       | 1        | 1                | 1                |
//  | 10       | 2        | -2               | -1               |
//  | 10000000 | 128      | -128             | -127             |
//  | 11111111 | 255      | -1               | 0 (-0)           |
//  |----------|----------|------------------|------------------|
//
// Encoding a signed value picks the smallest width whose sign bit is not
// redundant. Non-negative values always carry an explicit zero sign bit.
//
// The subpackages are:
//
//  integer   signed 128-bit values
//  convert   unsigned base conversion
//  signed    width inference, encoding and decoding
//  classify  token prefix detection and digit validation
//  report    human readable reports and caret error display
package radix
