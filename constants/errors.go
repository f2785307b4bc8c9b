package constants

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the single failure kind of every conversion.
	// All the errors below wrap it, so callers only need
	// errors.Is(err, ErrInvalidInput) to classify a request-level failure.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNilInput is returned when an argument is absent
	ErrNilInput = fmt.Errorf("%w: value is nil", ErrInvalidInput)
	// ErrEmptyInput is returned when a phrase or encoded text is empty after trimming
	ErrEmptyInput = fmt.Errorf("%w: value is empty", ErrInvalidInput)
	// ErrInputTooLong is returned when an argument exceeds the configured length limit
	ErrInputTooLong = fmt.Errorf("%w: value is too long", ErrInvalidInput)
	// ErrNotInteger is returned when an argument is not a well-formed integer
	ErrNotInteger = fmt.Errorf("%w: not an integer", ErrInvalidInput)
	// ErrNotText is returned when an argument that must be text is of another type
	ErrNotText = fmt.Errorf("%w: not text", ErrInvalidInput)

	// ErrUnknownWord is returned when a phrase carries a token that is not a number word
	ErrUnknownWord = fmt.Errorf("%w: unknown number word", ErrInvalidInput)
	// ErrNegativePhrase is returned for phrases like "negative one" or "minus two".
	// Only unsigned magnitudes are parsed from words.
	ErrNegativePhrase = fmt.Errorf("%w: negative number phrases are not supported", ErrInvalidInput)
	// ErrMalformedPhrase is returned when number words appear in an order
	// that does not form a single number ("one two", "twenty thirty")
	ErrMalformedPhrase = fmt.Errorf("%w: malformed number phrase", ErrInvalidInput)

	// ErrMalformedEncoding is returned when text is not valid padded standard base64
	ErrMalformedEncoding = fmt.Errorf("%w: malformed base64 text", ErrInvalidInput)
	// ErrOutOfRange is returned when a value does not fit a signed 64-bit integer
	ErrOutOfRange = fmt.Errorf("%w: value out of int64 range", ErrInvalidInput)
)
