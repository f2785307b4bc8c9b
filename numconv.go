package NumConv

import (
	"NumConv/internal/utils/dataconvutils"
	"NumConv/internal/words"
)

var defaultConverter = NewConverter()

// TextToNumber runs Converter.TextToNumber with default limits
func TextToNumber(phrase any) (int64, error) {
	return defaultConverter.TextToNumber(phrase)
}

// NumberToText runs Converter.NumberToText with default limits
func NumberToText(value any) (string, error) {
	return defaultConverter.NumberToText(value)
}

// Base64ToNumber runs Converter.Base64ToNumber with default limits
func Base64ToNumber(encoded any) (int64, error) {
	return defaultConverter.Base64ToNumber(encoded)
}

// NumberToBase64 runs Converter.NumberToBase64 with default limits
func NumberToBase64(value any) (string, error) {
	return defaultConverter.NumberToBase64(value)
}

// WordToNumber is the typed form of TextToNumber, without length limits
func WordToNumber(phrase string) (int64, error) {
	return words.WordToNumber(phrase)
}

// NumberToWord is the typed form of NumberToText
func NumberToWord(value int64) string {
	return words.NumberToWord(value)
}

// BytesToNumber is the typed form of Base64ToNumber, without length limits
func BytesToNumber(encoded string) (int64, error) {
	return dataconvutils.DecodeInt64(encoded)
}

// NumberToBytes is the typed form of NumberToBase64
func NumberToBytes(value int64) string {
	return dataconvutils.EncodeInt64(value)
}
