package words

import (
	"github.com/emirpasic/gods/utils"

	"NumConv/internal/treemapgen"
	"NumConv/internal/utils/strictchecks"
)

// units covers zero through nineteen, indexed by value
var units = [20]string{
	"zero", "one", "two", "three", "four",
	"five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen",
	"fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
}

// tens is indexed by tens digit (2–9); indices 0 and 1 are unused
var tens = [10]string{
	"", "", "twenty", "thirty", "forty",
	"fifty", "sixty", "seventy", "eighty", "ninety",
}

const (
	wordHundred = "hundred"
	wordMinus   = "minus"
	hundred     = 100
)

// scales maps powers of a thousand to their names. hundred is handled
// inside a group and is not listed here.
var scales = treemapgen.NewTreeMap[uint64, string](utils.UInt64Comparator)

// irregularOrdinals lists the cardinal words whose ordinal is not just +"th"
var irregularOrdinals = map[string]string{
	"one":    "first",
	"two":    "second",
	"three":  "third",
	"five":   "fifth",
	"eight":  "eighth",
	"nine":   "ninth",
	"twelve": "twelfth",
}

type kind int

const (
	kindNone kind = iota
	kindZero
	kindUnit // one..nine
	kindTeen // ten..nineteen
	kindTens // twenty..ninety
	kindHundred
	kindScale
	kindAnd
	kindArticle
	kindNegative
)

type word struct {
	kind  kind
	value int64
}

// lexicon maps every accepted token to its meaning
var lexicon = map[string]word{}

func init() {
	scales.Put(1_000, "thousand")
	scales.Put(1_000_000, "million")
	scales.Put(1_000_000_000, "billion")
	scales.Put(1_000_000_000_000, "trillion")
	scales.Put(1_000_000_000_000_000, "quadrillion")
	scales.Put(1_000_000_000_000_000_000, "quintillion")

	add := func(token string, w word) {
		strictchecks.MustBeUnique(lexicon, token, "number word")
		lexicon[token] = w
	}

	add(units[0], word{kind: kindZero})
	for v := 1; v < 10; v++ {
		add(units[v], word{kind: kindUnit, value: int64(v)})
	}
	for v := 10; v < 20; v++ {
		add(units[v], word{kind: kindTeen, value: int64(v)})
	}
	for d := 2; d < 10; d++ {
		add(tens[d], word{kind: kindTens, value: int64(d * 10)})
	}
	add(wordHundred, word{kind: kindHundred, value: hundred})

	it := scales.Iterator()
	for it.Next() {
		add(it.Value(), word{kind: kindScale, value: int64(it.Key())})
	}

	add("and", word{kind: kindAnd})
	add("a", word{kind: kindArticle, value: 1})
	add("negative", word{kind: kindNegative})
	add(wordMinus, word{kind: kindNegative})
}
