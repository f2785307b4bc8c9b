package NumConv

import (
	"fmt"

	"NumConv/constants"
	"NumConv/internal/args"
	"NumConv/internal/utils/dataconvutils"
	"NumConv/internal/words"
)

// TextToNumber parses an English cardinal phrase into an integer.
//
// Parameters:
// - phrase: string, []byte or *string. Case-insensitive, surrounding
// whitespace and one trailing character of "!.?,;:" are ignored.
//
// Returns:
//   - The value of the phrase. "zero" and "nil" are 0.
//   - An error wrapping constants.ErrInvalidInput if the phrase is absent, empty,
//     negative ("negative one"), contains unknown words, or is not a single number.
func (c *Converter) TextToNumber(phrase any) (int64, error) {
	text, err := args.Text(phrase)
	if err != nil {
		return 0, err
	}
	if err := checkLength(text, c.cfg.MaxPhraseLength); err != nil {
		return 0, err
	}
	return words.WordToNumber(text)
}

// NumberToText renders an integer as an English ordinal phrase.
//
// Parameters:
// - value: any Go integer kind, or decimal integer text.
//
// Returns:
//   - The ordinal phrase of |value| ("first", "twenty-second"), prefixed
//     with "minus " for negative values.
//   - An error wrapping constants.ErrInvalidInput if value is not a well-formed integer.
//
// Note: the output is never cardinal, so it does not parse back with TextToNumber.
func (c *Converter) NumberToText(value any) (string, error) {
	n, err := args.Integer(value)
	if err != nil {
		return "", err
	}
	return words.NumberToWord(n), nil
}

// Base64ToNumber decodes padded standard base64 text into bytes and reads them
// as a little-endian two's-complement integer of the decoded width.
//
// Parameters:
// - encoded: string, []byte or *string.
//
// Returns:
//   - The decoded integer ("AQ==" -> 1, "ZQ==" -> 101).
//   - An error wrapping constants.ErrInvalidInput for absent, empty or malformed text,
//     or for byte sequences that do not fit an int64.
func (c *Converter) Base64ToNumber(encoded any) (int64, error) {
	text, err := args.Text(encoded)
	if err != nil {
		return 0, err
	}
	if err := checkLength(text, c.cfg.MaxEncodedLength); err != nil {
		return 0, err
	}
	return dataconvutils.DecodeInt64(text)
}

// NumberToBase64 encodes an integer in the fewest two's-complement bytes,
// little-endian, as padded standard base64.
//
// Parameters:
// - value: any Go integer kind, or decimal integer text.
//
// Returns:
//   - The encoded text (1 -> "AQ==", -1 -> "/w==", 256 -> "AAE=").
//   - An error wrapping constants.ErrInvalidInput if value is not a well-formed integer.
func (c *Converter) NumberToBase64(value any) (string, error) {
	n, err := args.Integer(value)
	if err != nil {
		return "", err
	}
	return dataconvutils.EncodeInt64(n), nil
}

func checkLength(text string, limit int) error {
	if limit > 0 && len(text) > limit {
		return fmt.Errorf("%w (%d > %d)", constants.ErrInputTooLong, len(text), limit)
	}
	return nil
}
