// Package words converts between English number words and integers.
//
// WordToNumber reads cardinal phrases ("one hundred and five", "Twenty-two!")
// and NumberToWord writes ordinal phrases ("one hundred fifth",
// "twenty-second"). The two are deliberately not inverses of each other.
//
// Both directions share the same lexicon: units, teens, tens, "hundred" and
// the scale words from "thousand" to "quintillion", which covers the whole
// int64 range.
package words
