package numeric_test

import (
	"testing"

	"github.com/katalvlaran/numbra/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_Decimal covers sign, point placement, exponent shift and
// leading/trailing zero handling for decimal tokens.
func TestParse_Decimal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		token    string
		sign     numeric.Sign
		digits   []byte
		exponent int
	}{
		{"0.123456789e-5", numeric.Positive, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}, -6},
		{"-1.23e10", numeric.Negative, []byte{1, 2, 3}, 10},
		{"1", numeric.Positive, []byte{1}, 0},
		{"+42", numeric.Positive, []byte{4, 2}, 1},
		{".5", numeric.Positive, []byte{5}, -1},
		{"7.", numeric.Positive, []byte{7}, 0},
		{"00012.300", numeric.Positive, []byte{1, 2, 3, 0, 0}, 1},
		{"7E-3", numeric.Positive, []byte{7}, -3},
		{"  9.99e+2 ", numeric.Positive, []byte{9, 9, 9}, 2},
	}
	for _, tc := range cases {
		v, err := numeric.Parse(tc.token)
		require.NoError(t, err, tc.token)
		assert.Equal(t, tc.sign, v.Sign, "sign of %q", tc.token)
		assert.Equal(t, tc.digits, v.Digits, "digits of %q", tc.token)
		assert.Equal(t, tc.exponent, v.Exponent, "exponent of %q", tc.token)
		assert.Equal(t, numeric.DefaultBase, v.Base, "base of %q", tc.token)
		assert.Equal(t, len(tc.digits), v.Precision, "precision of %q", tc.token)
		assert.Equal(t, numeric.Normal, v.Category, "category of %q", tc.token)
	}
}

// TestParse_Zero checks that all-zero mantissas collapse to [0]e0 and keep the sign.
func TestParse_Zero(t *testing.T) {
	t.Parallel()

	for _, tok := range []string{"0", "0.000", "000e99", ".0"} {
		v, err := numeric.Parse(tok)
		require.NoError(t, err, tok)
		assert.Equal(t, numeric.Zero, v.Category, tok)
		assert.Equal(t, []byte{0}, v.Digits, tok)
		assert.Equal(t, 0, v.Exponent, tok)
		assert.Equal(t, 1, v.Precision, tok)
	}

	neg, err := numeric.Parse("-0.0")
	require.NoError(t, err)
	assert.Equal(t, numeric.Negative, neg.Sign)
}

// TestParse_Specials maps inf/-inf/nan tokens case-insensitively with empty digits.
func TestParse_Specials(t *testing.T) {
	t.Parallel()

	cases := map[string]numeric.Category{
		"inf":  numeric.Infinity,
		"INF":  numeric.Infinity,
		"-Inf": numeric.NegativeInfinity,
		"NaN":  numeric.NaN,
		"nan":  numeric.NaN,
	}
	for tok, cat := range cases {
		v, err := numeric.Parse(tok)
		require.NoError(t, err, tok)
		assert.Equal(t, cat, v.Category, tok)
		assert.Empty(t, v.Digits, tok)
		assert.Equal(t, 1, v.Precision, tok)
	}
}

// TestParse_Malformed asserts ErrMalformedNumber for every rejection class.
func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	bad := []string{
		"12..3e",     // two points
		"1e2e3",      // two markers
		"1.2.3",      // two points, no exponent
		"abc",        // letters in base 10
		"1,5",        // comma
		"",           // empty
		"-",          // sign only
		".",          // point only
		"1e",         // missing exponent digits
		"1e+",        // sign without digits
		"e5",         // missing mantissa
		"1e99999999999", // exponent overflow
		"1@5",        // '@' is not a base-10 marker
		"1-2",        // embedded sign
	}
	for _, tok := range bad {
		_, err := numeric.Parse(tok)
		assert.ErrorIs(t, err, numeric.ErrMalformedNumber, "token %q", tok)
	}
}

// TestParseBase_Hex reads letters as digits and '@' as the exponent marker.
func TestParseBase_Hex(t *testing.T) {
	t.Parallel()

	v, err := numeric.ParseBase("-f.f@-2", 16)
	require.NoError(t, err)
	assert.Equal(t, numeric.Negative, v.Sign)
	assert.Equal(t, []byte{15, 15}, v.Digits)
	assert.Equal(t, -2, v.Exponent)
	assert.Equal(t, 16, v.Base)

	e, err := numeric.ParseBase("1e", 16)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 14}, e.Digits, "'e' is a digit in base 16")

	_, err = numeric.ParseBase("2", 2)
	assert.ErrorIs(t, err, numeric.ErrMalformedNumber, "digit 2 is invalid in base 2")
}

// TestParseBase_UnsupportedBase rejects bases outside 2..36.
func TestParseBase_UnsupportedBase(t *testing.T) {
	t.Parallel()

	for _, b := range []int{-1, 0, 1, 37, 64} {
		_, err := numeric.ParseBase("1", b)
		assert.ErrorIs(t, err, numeric.ErrUnsupportedBase, "base %d", b)
	}
}
