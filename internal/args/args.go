// Package args classifies loosely typed arguments at the conversion boundary.
// Hosts hand over whatever they extracted (RESP bulk strings, CLI words,
// typed Go values) and get back either a typed value or an error wrapping
// constants.ErrInvalidInput.
package args

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"NumConv/constants"
)

// Integer accepts Go integer kinds and decimal integer text.
// Floats, bools, nil and anything else are rejected.
func Integer(v any) (int64, error) {
	switch n := v.(type) {
	case nil:
		return 0, constants.ErrNilInput
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return fromUnsigned(uint64(n))
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		return fromUnsigned(n)
	case string:
		return parseInteger(n)
	case []byte:
		if n == nil {
			return 0, constants.ErrNilInput
		}
		return parseInteger(string(n))
	case *string:
		if n == nil {
			return 0, constants.ErrNilInput
		}
		return parseInteger(*n)
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", constants.ErrNotInteger, v)
	}
}

// Text accepts string, []byte and non-nil *string
func Text(v any) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", constants.ErrNilInput
	case string:
		return s, nil
	case []byte:
		if s == nil {
			return "", constants.ErrNilInput
		}
		return string(s), nil
	case *string:
		if s == nil {
			return "", constants.ErrNilInput
		}
		return *s, nil
	default:
		return "", fmt.Errorf("%w: unsupported type %T", constants.ErrNotText, v)
	}
}

func fromUnsigned(n uint64) (int64, error) {
	if n > math.MaxInt64 {
		return 0, constants.ErrOutOfRange
	}
	return int64(n), nil
}

func parseInteger(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, constants.ErrEmptyInput
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return 0, constants.ErrOutOfRange
		}
		return 0, fmt.Errorf("%w: %q", constants.ErrNotInteger, s)
	}
	return n, nil
}
