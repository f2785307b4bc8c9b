package words

import (
	"testing"

	"github.com/stretchr/testify/require"

	"NumConv/constants"
)

func TestWordToNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		phrase string
		value  int64
	}{
		{"one", 1},
		{"ONE", 1},
		{"  one  ", 1},
		{"  ONE  ", 1},
		{"one!", 1},
		{"one.", 1},
		{"one?", 1},
		{"one,", 1},
		{"one;", 1},
		{"one:", 1},
		{"one !", 1},
		{"zero", 0},
		{"nil", 0},
		{"Zero.", 0},
		{"nine", 9},
		{"thirteen", 13},
		{"forty", 40},
		{"twenty-two", 22},
		{"twenty two", 22},
		{"one hundred", 100},
		{"a hundred", 100},
		{"one hundred five", 105},
		{"one hundred and five", 105},
		{"nine hundred ninety-nine", 999},
		{"twelve hundred", 1200},
		{"a thousand", 1000},
		{"one thousand two hundred and thirty-four", 1234},
		{"one thousand, two hundred thirty-four", 1234},
		{"one hundred thousand", 100_000},
		{"two million three thousand", 2_003_000},
		{"seven billion and one", 7_000_000_001},
		{"nine quintillion two hundred twenty-three quadrillion three hundred seventy-two trillion " +
			"thirty-six billion eight hundred fifty-four million seven hundred seventy-five thousand eight hundred seven",
			9_223_372_036_854_775_807},
	}

	for _, tc := range tests {
		v, err := WordToNumber(tc.phrase)
		require.NoError(t, err, "phrase %q", tc.phrase)
		require.Equal(t, tc.value, v, "phrase %q", tc.phrase)
	}
}

func TestWordToNumberRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		phrase string
		err    error
	}{
		{"", constants.ErrEmptyInput},
		{"   ", constants.ErrEmptyInput},
		{"!", constants.ErrEmptyInput},
		{"hewan", constants.ErrUnknownWord},
		{"one hewan", constants.ErrUnknownWord},
		{"one!!", constants.ErrUnknownWord},
		{"1", constants.ErrUnknownWord},
		{"negative one", constants.ErrNegativePhrase},
		{"minus five", constants.ErrNegativePhrase},
		{"one minus", constants.ErrNegativePhrase},
		{"-one", constants.ErrNegativePhrase},
		{"one two", constants.ErrMalformedPhrase},
		{"twenty thirty", constants.ErrMalformedPhrase},
		{"five twenty", constants.ErrMalformedPhrase},
		{"nineteen five", constants.ErrMalformedPhrase},
		{"hundred", constants.ErrMalformedPhrase},
		{"thousand", constants.ErrMalformedPhrase},
		{"one hundred hundred", constants.ErrMalformedPhrase},
		{"one hundred five hundred", constants.ErrMalformedPhrase},
		{"one thousand one million", constants.ErrMalformedPhrase},
		{"one thousand two thousand", constants.ErrMalformedPhrase},
		{"one hundred and", constants.ErrMalformedPhrase},
		{"and one", constants.ErrMalformedPhrase},
		{"a", constants.ErrMalformedPhrase},
		{"one a hundred", constants.ErrMalformedPhrase},
		{"zero one", constants.ErrMalformedPhrase},
		{"ten quintillion", constants.ErrOutOfRange},
		{"nine quintillion three hundred quadrillion", constants.ErrOutOfRange},
	}

	for _, tc := range tests {
		_, err := WordToNumber(tc.phrase)
		require.ErrorIs(t, err, tc.err, "phrase %q", tc.phrase)
		require.ErrorIs(t, err, constants.ErrInvalidInput, "phrase %q", tc.phrase)
	}
}
