package dataconvutils

import (
	"encoding/base64"
	"fmt"
	"strings"

	"NumConv/constants"
)

// strict padded standard alphabet; rejects non-zero trailing bits
var stdEncoding = base64.StdEncoding.Strict()

// EncodeInt64 renders v as minimal-width little-endian two's-complement bytes,
// carried as padded standard base64 (1 -> "AQ==", 256 -> "AAE=")
func EncodeInt64(v int64) string {
	return stdEncoding.EncodeToString(Int64ToMinimalBytes(v))
}

// DecodeInt64 reverses EncodeInt64. The byte width is taken from the decoded text,
// so "/w==" and "//8=" both read as -1.
func DecodeInt64(encoded string) (int64, error) {
	if strings.TrimSpace(encoded) == "" {
		return 0, constants.ErrEmptyInput
	}

	// the decoder silently skips CR/LF, we do not
	if strings.ContainsAny(encoded, "\r\n") {
		return 0, constants.ErrMalformedEncoding
	}

	raw, err := stdEncoding.DecodeString(encoded)
	if err != nil {
		return 0, fmt.Errorf("%w (%v)", constants.ErrMalformedEncoding, err)
	}

	return MinimalBytesToInt64(raw)
}
