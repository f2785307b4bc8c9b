package words

import (
	"strings"
)

// NumberToWord renders value as an English ordinal phrase:
// 1 -> "first", 22 -> "twenty-second", -1 -> "minus first".
// Ordinal is the only output form; see Cardinal for counting words.
func NumberToWord(value int64) string {
	ordinal := toOrdinal(cardinal(magnitude(value)))
	if value < 0 {
		return wordMinus + " " + ordinal
	}
	return ordinal
}

// Cardinal renders value as counting words: 1234 -> "one thousand two hundred thirty-four"
func Cardinal(value int64) string {
	text := cardinal(magnitude(value))
	if value < 0 {
		return wordMinus + " " + text
	}
	return text
}

// magnitude returns |value|; math.MinInt64 wraps to 1<<63 in uint64
func magnitude(value int64) uint64 {
	if value < 0 {
		return -uint64(value)
	}
	return uint64(value)
}

func cardinal(n uint64) string {
	if n == 0 {
		return units[0]
	}

	var parts []string
	for n >= 1000 {
		scale, name, _ := scales.Floor(n)
		parts = append(parts, belowThousand(n/scale), name)
		n %= scale
	}
	if n > 0 {
		parts = append(parts, belowThousand(n))
	}
	return strings.Join(parts, " ")
}

// belowThousand renders 1..999
func belowThousand(n uint64) string {
	var parts []string
	if n >= hundred {
		parts = append(parts, units[n/hundred], wordHundred)
		n %= hundred
	}
	switch {
	case n == 0:
	case n < 20:
		parts = append(parts, units[n])
	case n%10 == 0:
		parts = append(parts, tens[n/10])
	default:
		parts = append(parts, tens[n/10]+"-"+units[n%10])
	}
	return strings.Join(parts, " ")
}

// toOrdinal rewrites the last word of a cardinal phrase
func toOrdinal(cardinal string) string {
	cut := strings.LastIndexAny(cardinal, " -") + 1
	head, last := cardinal[:cut], cardinal[cut:]

	if irregular, ok := irregularOrdinals[last]; ok {
		return head + irregular
	}
	if strings.HasSuffix(last, "y") {
		return head + strings.TrimSuffix(last, "y") + "ieth"
	}
	return head + last + "th"
}
