package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromCardinal(t *testing.T) {
	cases := map[string]int{
		"0":      0,
		"12":     12,
		"007":    7,
		"zero":   0,
		"seven":  7,
		"Twelve": 12,
		"ninety": 90,
		"no":     0,
		"nil":    0,
		"zilch":  0,
	}
	for word, want := range cases {
		got, ok := FromCardinal(word)
		assert.True(t, ok, "FromCardinal(%q) should parse", word)
		assert.Equal(t, want, got, "FromCardinal(%q)", word)
	}
}

func TestFromCardinal_Misses(t *testing.T) {
	for _, word := range []string{"", "larvae", "12a", "-3", "2.5", "third", "ninetynine", "99999999999999999999999"} {
		_, ok := FromCardinal(word)
		assert.False(t, ok, "FromCardinal(%q) should not parse", word)
	}
}

func TestFromOrdinal(t *testing.T) {
	cases := map[string]int{
		"1st":   1,
		"First": 1,
		"3rd":   3,
		"third": 3,
		"TENTH": 10,
		"10th":  10,
	}
	for word, want := range cases {
		got, ok := FromOrdinal(word)
		assert.True(t, ok, "FromOrdinal(%q) should parse", word)
		assert.Equal(t, want, got, "FromOrdinal(%q)", word)
	}

	_, ok := FromOrdinal("eleventh")
	assert.False(t, ok)
	_, ok = FromOrdinal("3")
	assert.False(t, ok)
}

func TestFromNumber_PrefersCardinal(t *testing.T) {
	n, ok := FromNumber("four")
	assert.True(t, ok)
	assert.Equal(t, 4, n)

	n, ok = FromNumber("fourth")
	assert.True(t, ok)
	assert.Equal(t, 4, n)

	_, ok = FromNumber("everywhere")
	assert.False(t, ok)
}
