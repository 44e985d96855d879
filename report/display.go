package report

import (
	"strings"
	"unicode/utf8"
)

// Marker returns a line as wide as input with a caret under each position.
// Positions outside input are ignored.
func Marker(input string, positions []int) string {
	line := []byte(strings.Repeat(" ", utf8.RuneCountInString(input)))

	for _, pos := range positions {
		if pos >= 0 && pos < len(line) {
			line[pos] = '^'
		}
	}

	return string(line)
}

// ErrorDisplay returns input and its marker line. If style is not nil the
// marker line is passed through it, e.g. to color the carets.
//
//  0x1G
//     ^
func ErrorDisplay(input string, positions []int, style func(string) string) string {
	marker := Marker(input, positions)
	if style != nil {
		marker = style(marker)
	}

	return input + "\n" + marker
}
