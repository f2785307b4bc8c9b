package words

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"NumConv/constants"
)

// trailingPunctuation lists the characters stripped (once) from the end of a phrase
const trailingPunctuation = "!.?,;:"

// zeroSynonyms are whole-phrase spellings of 0
var zeroSynonyms = map[string]struct{}{
	"zero": {},
	"nil":  {},
}

// WordToNumber parses an English cardinal phrase ("one hundred", "Twenty-two!")
// into its value. Negative phrases are rejected with constants.ErrNegativePhrase.
func WordToNumber(phrase string) (int64, error) {
	text := normalize(phrase)
	if text == "" {
		return 0, constants.ErrEmptyInput
	}

	if _, ok := zeroSynonyms[text]; ok {
		return 0, nil
	}

	// a leading hyphen reads as a minus sign, not a tens-units joiner
	if strings.HasPrefix(text, "-") {
		return 0, constants.ErrNegativePhrase
	}

	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == ','
	})

	words := make([]word, 0, len(tokens))
	for _, token := range tokens {
		w, ok := lexicon[token]
		if !ok {
			return 0, fmt.Errorf("%w: %q", constants.ErrUnknownWord, token)
		}
		if w.kind == kindNegative {
			return 0, constants.ErrNegativePhrase
		}
		words = append(words, w)
	}

	p := &phraseParser{}
	for i, w := range words {
		if err := p.feed(w); err != nil {
			return 0, fmt.Errorf("%w at %q", err, tokens[i])
		}
	}
	return p.result()
}

func normalize(phrase string) string {
	text := strings.TrimSpace(phrase)
	if text != "" && strings.IndexByte(trailingPunctuation, text[len(text)-1]) >= 0 {
		text = strings.TrimSpace(text[:len(text)-1])
	}
	return strings.ToLower(text)
}

// phraseParser accumulates groups: a group is everything between two scale
// words, scales multiply the group on their left and groups are summed.
type phraseParser struct {
	total     int64
	group     int64
	lastScale int64
	prev      kind
}

func (p *phraseParser) feed(w word) error {
	switch w.kind {
	case kindUnit:
		if !p.prevIn(kindNone, kindHundred, kindScale, kindAnd, kindTens) {
			return constants.ErrMalformedPhrase
		}
		p.group += w.value

	case kindTeen, kindTens:
		if !p.prevIn(kindNone, kindHundred, kindScale, kindAnd) {
			return constants.ErrMalformedPhrase
		}
		p.group += w.value

	case kindArticle:
		if !p.prevIn(kindNone) {
			return constants.ErrMalformedPhrase
		}
		p.group = w.value

	case kindAnd:
		if !p.prevIn(kindHundred, kindScale) {
			return constants.ErrMalformedPhrase
		}

	case kindHundred:
		// "twelve hundred" is fine, "one hundred five hundred" is not
		if !p.prevIn(kindUnit, kindTeen, kindTens, kindArticle) || p.group >= hundred {
			return constants.ErrMalformedPhrase
		}
		p.group *= hundred

	case kindScale:
		if !p.prevIn(kindUnit, kindTeen, kindTens, kindHundred, kindArticle) {
			return constants.ErrMalformedPhrase
		}
		if p.lastScale != 0 && w.value >= p.lastScale {
			return constants.ErrMalformedPhrase
		}
		if p.group > (math.MaxInt64-p.total)/w.value {
			return constants.ErrOutOfRange
		}
		p.total += p.group * w.value
		p.group = 0
		p.lastScale = w.value

	default:
		// zero inside a longer phrase
		return constants.ErrMalformedPhrase
	}

	p.prev = w.kind
	return nil
}

func (p *phraseParser) result() (int64, error) {
	if !p.prevIn(kindUnit, kindTeen, kindTens, kindHundred, kindScale) {
		return 0, constants.ErrMalformedPhrase
	}
	if p.group > math.MaxInt64-p.total {
		return 0, constants.ErrOutOfRange
	}
	return p.total + p.group, nil
}

func (p *phraseParser) prevIn(kinds ...kind) bool {
	for _, k := range kinds {
		if p.prev == k {
			return true
		}
	}
	return false
}
