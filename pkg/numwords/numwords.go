// Package numwords converts non-negative integer amounts into Indian
// numbering system words (crore/lakh/thousand/hundred) for invoice totals.
package numwords

import (
	"strconv"
	"strings"
)

// Overflow is returned for amounts that do not fit in nine decimal digits.
const Overflow = "overflow"

var ones = []string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var tens = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety",
}

// group is a fixed-width slice of the zero-padded amount with its
// positional suffix. The 2-2-2-1-2 split covers up to 99,99,99,999.
type group struct {
	width  int
	suffix string
}

var groups = []group{
	{2, "crore"},
	{2, "lakh"},
	{2, "thousand"},
	{1, "hundred"},
	{2, ""},
}

// Convert renders a non-negative rupee amount in words, e.g.
// Convert(350) == "three hundred fifty only". Amounts wider than nine
// digits yield the Overflow sentinel rather than an error.
func Convert(amount int64) string {
	if amount < 0 {
		return Overflow
	}

	s := strconv.FormatInt(amount, 10)
	if len(s) > 9 {
		return Overflow
	}
	s = strings.Repeat("0", 9-len(s)) + s

	var parts []string
	pos := 0
	for _, g := range groups {
		v, _ := strconv.Atoi(s[pos : pos+g.width])
		pos += g.width
		if v == 0 {
			continue
		}
		parts = append(parts, segment(v))
		if g.suffix != "" {
			parts = append(parts, g.suffix)
		}
	}

	if len(parts) == 0 {
		return "zero only"
	}
	return strings.Join(parts, " ") + " only"
}

// segment renders a one- or two-digit value (0-99).
func segment(v int) string {
	if v < 20 {
		return ones[v]
	}
	if v%10 == 0 {
		return tens[v/10]
	}
	return tens[v/10] + " " + ones[v%10]
}
