package NumConv

import (
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"NumConv/constants"
)

func TestTextToNumber(t *testing.T) {
	t.Parallel()

	for _, phrase := range []string{"one", "ONE", "  one  ", "  ONE  ", "one!", "one.", "one?", "one,", "one;", "one:"} {
		v, err := TextToNumber(phrase)
		require.NoError(t, err, "phrase %q", phrase)
		require.Equal(t, int64(1), v, "phrase %q", phrase)
	}

	v, err := TextToNumber("one hundred")
	require.NoError(t, err)
	require.Equal(t, int64(100), v)

	v, err = TextToNumber("zero")
	require.NoError(t, err)
	require.Equal(t, int64(0), v)

	v, err = TextToNumber("nil")
	require.NoError(t, err)
	require.Equal(t, int64(0), v)

	for _, bad := range []any{"", "hewan", "negative one", nil, 1} {
		_, err := TextToNumber(bad)
		require.ErrorIs(t, err, constants.ErrInvalidInput, "input %#v", bad)
	}
}

func TestNumberToText(t *testing.T) {
	t.Parallel()

	s, err := NumberToText(1)
	require.NoError(t, err)
	require.Equal(t, "first", s)

	s, err = NumberToText(22)
	require.NoError(t, err)
	require.Equal(t, "twenty-second", s)

	s, err = NumberToText(-1)
	require.NoError(t, err)
	require.Equal(t, "minus first", s)

	s, err = NumberToText("22")
	require.NoError(t, err)
	require.Equal(t, "twenty-second", s)

	for _, bad := range []any{"hewan", "", nil, 2.5} {
		_, err := NumberToText(bad)
		require.ErrorIs(t, err, constants.ErrInvalidInput, "input %#v", bad)
	}
}

func TestBase64ToNumber(t *testing.T) {
	t.Parallel()

	v, err := Base64ToNumber("AQ==")
	require.NoError(t, err)
	require.Equal(t, int64(1), v)

	v, err = Base64ToNumber("ZQ==")
	require.NoError(t, err)
	require.Equal(t, int64(101), v)

	// two 0xFF bytes are -1 at width 2
	v, err = Base64ToNumber("//8=")
	require.NoError(t, err)
	require.Equal(t, int64(-1), v)

	for _, bad := range []any{"invalid_base64!", "", nil, 101} {
		_, err := Base64ToNumber(bad)
		require.ErrorIs(t, err, constants.ErrInvalidInput, "input %#v", bad)
	}
}

func TestNumberToBase64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in  any
		out string
	}{
		{1, "AQ=="},
		{-1, "/w=="},
		{255, "/wA="},
		{256, "AAE="},
		{"101", "ZQ=="},
	}
	for _, tc := range tests {
		s, err := NumberToBase64(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.out, s, "input %#v", tc.in)
	}

	for _, bad := range []any{"not_a_number", nil, ""} {
		_, err := NumberToBase64(bad)
		require.ErrorIs(t, err, constants.ErrInvalidInput, "input %#v", bad)
	}
}

// 256 spans two bytes, so it only survives if both directions agree on byte order
func TestBase64ByteOrder(t *testing.T) {
	t.Parallel()

	encoded, err := NumberToBase64(256)
	require.NoError(t, err)

	decoded, err := Base64ToNumber(encoded)
	require.NoError(t, err)
	require.Equal(t, int64(256), decoded, "round trip through %q", encoded)
}

func TestBase64RoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []int64{math.MinInt64, -65537, -256, -129, -128, -1, 0, 1, 127, 128, 255, 256, 65536, math.MaxInt64} {
		require.Equal(t, v, mustInt(t)(BytesToNumber(NumberToBytes(v))), "value %d", v)
	}
}

func TestTypedWrappers(t *testing.T) {
	t.Parallel()

	require.Equal(t, int64(22), mustInt(t)(WordToNumber("twenty-two")))
	require.Equal(t, "twenty-second", NumberToWord(22))
	require.Equal(t, "AQ==", NumberToBytes(1))
}

func TestConverterLimits(t *testing.T) {
	t.Parallel()

	c := NewConverter(WithMaxPhraseLength(8), WithMaxEncodedLength(4))
	require.Equal(t, 8, c.Limits().MaxPhraseLength)

	_, err := c.TextToNumber("one hundred")
	require.ErrorIs(t, err, constants.ErrInputTooLong)
	require.ErrorIs(t, err, constants.ErrInvalidInput)

	v, err := c.TextToNumber("ten")
	require.NoError(t, err)
	require.Equal(t, int64(10), v)

	_, err = c.Base64ToNumber("AAE=AAE=")
	require.ErrorIs(t, err, constants.ErrInputTooLong)

	unlimited := NewConverter(WithMaxPhraseLength(0))
	long := strings.Repeat(" ", 4096) + "one"
	v, err = unlimited.TextToNumber(long)
	require.NoError(t, err)
	require.Equal(t, int64(1), v)

	_, err = TextToNumber(long)
	require.ErrorIs(t, err, constants.ErrInputTooLong)
}

func TestConverterIsSafeForConcurrentUse(t *testing.T) {
	t.Parallel()

	c := NewConverter()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int64) {
			defer wg.Done()
			encoded, err := c.NumberToBase64(n * 1000)
			require.NoError(t, err)
			decoded, err := c.Base64ToNumber(encoded)
			require.NoError(t, err)
			require.Equal(t, n*1000, decoded)

			text, err := c.NumberToText(n)
			require.NoError(t, err)
			require.NotEmpty(t, text)
		}(int64(i))
	}
	wg.Wait()
}

func mustInt(t *testing.T) func(int64, error) int64 {
	return func(v int64, err error) int64 {
		t.Helper()
		require.NoError(t, err)
		return v
	}
}
