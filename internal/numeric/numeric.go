// Package numeric parses spoken number words and digit strings.
package numeric

import (
	"strconv"
	"strings"
)

var cardinals = map[string]int{
	"zero":      0,
	"no":        0,
	"nil":       0,
	"zilch":     0,
	"one":       1,
	"two":       2,
	"three":     3,
	"four":      4,
	"five":      5,
	"six":       6,
	"seven":     7,
	"eight":     8,
	"nine":      9,
	"ten":       10,
	"eleven":    11,
	"twelve":    12,
	"thirteen":  13,
	"fourteen":  14,
	"fifteen":   15,
	"sixteen":   16,
	"seventeen": 17,
	"eighteen":  18,
	"nineteen":  19,
	"twenty":    20,
	"thirty":    30,
	"forty":     40,
	"fifty":     50,
	"sixty":     60,
	"seventy":   70,
	"eighty":    80,
	"ninety":    90,
}

var ordinals = map[string]int{
	"1st":     1,
	"first":   1,
	"2nd":     2,
	"second":  2,
	"3rd":     3,
	"third":   3,
	"4th":     4,
	"fourth":  4,
	"5th":     5,
	"fifth":   5,
	"6th":     6,
	"sixth":   6,
	"7th":     7,
	"seventh": 7,
	"8th":     8,
	"eighth":  8,
	"9th":     9,
	"ninth":   9,
	"10th":    10,
	"tenth":   10,
}

// FromCardinal parses a digit string or a cardinal number word
func FromCardinal(word string) (int, bool) {
	if isDigits(word) {
		n, err := strconv.Atoi(word)
		if err != nil {
			// Only overflow gets here
			return 0, false
		}
		return n, true
	}
	n, ok := cardinals[strings.ToLower(word)]
	return n, ok
}

// FromOrdinal parses an ordinal ("third", "3rd") up to ten
func FromOrdinal(word string) (int, bool) {
	n, ok := ordinals[strings.ToLower(word)]
	return n, ok
}

// FromNumber tries FromCardinal, then FromOrdinal
func FromNumber(word string) (int, bool) {
	if n, ok := FromCardinal(word); ok {
		return n, true
	}
	return FromOrdinal(word)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
