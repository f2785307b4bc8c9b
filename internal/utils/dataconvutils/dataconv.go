package dataconvutils

import (
	"math/bits"

	"NumConv/constants"
	"NumConv/internal/utils/strictchecks"
)

// MinimalWidth returns the fewest whole bytes (at least 1) that hold v
// in two's-complement form: [-128,127] -> 1, [-32768,32767] -> 2, ...
func MinimalWidth(v int64) int {
	magnitude := uint64(v)
	if v < 0 {
		// for negatives the significant bits are those of ^v, e.g. -1 -> 0, -129 -> 128
		magnitude = ^magnitude
	}
	// one extra bit for the sign
	width := (bits.Len64(magnitude) + 1 + 7) / 8
	strictchecks.MustBeTrueOrPanic(width >= 1 && width <= constants.MaxEncodedWidth,
		"width %d out of bounds for %d", width, v)
	return width
}

// Int64ToMinimalBytes serializes v as little-endian two's complement
// using MinimalWidth(v) bytes
func Int64ToMinimalBytes(v int64) []byte {
	width := MinimalWidth(v)
	buff := make([]byte, width)
	for i := 0; i < width; i++ {
		buff[i] = byte(v >> (8 * i))
	}
	return buff
}

// MinimalBytesToInt64 reads buff as a little-endian two's-complement integer
// of len(buff) bytes. Sequences longer than 8 bytes are accepted only when the
// extra bytes are pure sign extension.
func MinimalBytesToInt64(buff []byte) (int64, error) {
	if len(buff) == 0 {
		return 0, constants.ErrEmptyInput
	}

	if len(buff) > constants.MaxEncodedWidth {
		ext := byte(0x00)
		if buff[constants.MaxEncodedWidth-1]&0x80 != 0 {
			ext = 0xFF
		}
		for _, b := range buff[constants.MaxEncodedWidth:] {
			if b != ext {
				return 0, constants.ErrOutOfRange
			}
		}
		buff = buff[:constants.MaxEncodedWidth]
	}

	var u uint64
	for i, b := range buff {
		u |= uint64(b) << (8 * i)
	}

	// sign extend from the top bit of the last byte
	shift := uint(64 - 8*len(buff))
	return int64(u<<shift) >> shift, nil
}
