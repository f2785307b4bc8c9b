package constants

const (
	KB = 1 << 10 // 1024 bytes

	// DefaultMaxPhraseLength bounds the number-word input accepted by a converter
	DefaultMaxPhraseLength = 1 * KB
	// DefaultMaxEncodedLength bounds base64 input. 12 chars already carry 9 bytes,
	// anything much longer cannot hold an int64.
	DefaultMaxEncodedLength = 64

	// MaxEncodedWidth is the widest two's-complement integer we produce or accept
	MaxEncodedWidth = 8
)
