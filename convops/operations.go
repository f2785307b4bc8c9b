package convops

// TextOps converts between number words and integers.
// Arguments are untyped so that hosts can pass what they extracted
// and let the converter classify it.
type TextOps interface {
	TextToNumber(phrase any) (int64, error)
	NumberToText(value any) (string, error)
}

// BinaryOps converts between integers and base64-carried
// little-endian two's-complement bytes.
type BinaryOps interface {
	Base64ToNumber(encoded any) (int64, error)
	NumberToBase64(value any) (string, error)
}

type ConversionOps interface {
	TextOps
	BinaryOps
}
