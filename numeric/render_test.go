package numeric_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/numbra/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestRender_Canonical(t *testing.T) {
	t.Parallel()

	cases := []struct {
		v    numeric.Value
		want string
	}{
		{numeric.Value{Digits: []byte{1, 2, 3}, Exponent: 10, Base: 10, Precision: 3}, "1.23e10"},
		{numeric.Value{Sign: numeric.Negative, Digits: []byte{5}, Exponent: -3, Base: 10, Precision: 1}, "-5e-3"},
		{numeric.Value{Digits: []byte{1, 0, 1}, Exponent: 2, Base: 2, Precision: 3}, "1.01e2"},
		{numeric.Value{Digits: []byte{10, 11, 35}, Exponent: -1, Base: 36, Precision: 3}, "a.bz@-1"},
		{numeric.ZeroValue(numeric.Positive, 10, 4), "0e0"},
		{numeric.ZeroValue(numeric.Negative, 10, 1), "-0e0"},
		{numeric.Inf(numeric.Positive, 10, 1), "inf"},
		{numeric.Inf(numeric.Negative, 10, 1), "-inf"},
		{numeric.NaNValue(16, 1), "nan"},
	}
	for _, tc := range cases {
		got, err := numeric.Render(tc.v)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestRender_Errors(t *testing.T) {
	t.Parallel()

	_, err := numeric.Render(numeric.Value{Digits: []byte{1}, Base: 37, Precision: 1})
	assert.ErrorIs(t, err, numeric.ErrUnsupportedBase)

	_, err = numeric.Render(numeric.Value{Digits: []byte{1, 9}, Base: 8, Precision: 2})
	assert.ErrorIs(t, err, numeric.ErrMalformedNumber)

	_, err = numeric.Render(numeric.Value{Base: 10, Precision: 1})
	assert.ErrorIs(t, err, numeric.ErrMalformedNumber)
}

func TestPlain(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"0.123456789e-5": "0.00000123456789",
		"-1.23e10":       "-12300000000.0",
		"1.5":            "1.5",
		"12.300":         "12.3",
		"0":              "0.0",
		"inf":            "inf",
	}
	for tok, want := range cases {
		v, err := numeric.Parse(tok)
		require.NoError(t, err, tok)
		got, err := numeric.Plain(v)
		require.NoError(t, err, tok)
		assert.Equal(t, want, got, tok)
	}
}

func TestPlain_ExponentBound(t *testing.T) {
	t.Parallel()

	for _, tok := range []string{"1e65537", "-1e-65537", "1.5e-100000"} {
		v, err := numeric.Parse(tok)
		require.NoError(t, err, tok)
		_, err = numeric.Plain(v)
		assert.ErrorIs(t, err, numeric.ErrPlainRange, tok)
	}

	v, err := numeric.Parse("1e-65536")
	require.NoError(t, err)
	got, err := numeric.Plain(v)
	require.NoError(t, err)
	assert.Len(t, got, 2+65536)

	z, err := numeric.Parse("0e99999999")
	require.NoError(t, err)
	got, err = numeric.Plain(z)
	require.NoError(t, err)
	assert.Equal(t, "0.0", got)
}

func TestFromInt(t *testing.T) {
	t.Parallel()

	v, err := numeric.FromInt(big.NewInt(-1234), -2, 10)
	require.NoError(t, err)
	assert.Equal(t, "-1.234e1", v.String())
	assert.Equal(t, 4, v.Precision)

	b, err := numeric.FromInt(big.NewInt(5), 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0, 1}, b.Digits)
	assert.Equal(t, 2, b.Exponent)

	z, err := numeric.FromInt(new(big.Int), 7, 10)
	require.NoError(t, err)
	assert.True(t, z.IsZero())
}

func TestNew_StripsLeadingZeros(t *testing.T) {
	t.Parallel()

	v, err := numeric.New(numeric.Positive, []byte{0, 0, 4, 2}, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 2}, v.Digits)
	assert.Equal(t, 1, v.Exponent)
	require.NoError(t, v.Validate())

	_, err = numeric.New(numeric.Positive, []byte{2}, 0, 2)
	assert.ErrorIs(t, err, numeric.ErrMalformedNumber)
	_, err = numeric.New(numeric.Positive, nil, 0, 10)
	assert.ErrorIs(t, err, numeric.ErrMalformedNumber)
}

func TestValue_NegateAndValidate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, numeric.NegativeInfinity, numeric.Inf(numeric.Positive, 10, 1).Negate().Category)
	assert.Equal(t, numeric.NaN, numeric.NaNValue(10, 1).Negate().Category)

	v, err := numeric.Parse("3.5e1")
	require.NoError(t, err)
	n := v.Negate()
	assert.Equal(t, numeric.Negative, n.Sign)
	assert.Equal(t, numeric.Positive, v.Sign, "receiver untouched")

	bad := numeric.Value{Digits: []byte{0, 1}, Base: 10, Precision: 2}
	assert.ErrorIs(t, bad.Validate(), numeric.ErrMalformedNumber)
	inf := numeric.Inf(numeric.Positive, 10, 1)
	inf.Digits = []byte{1}
	assert.ErrorIs(t, inf.Validate(), numeric.ErrMalformedNumber)
}

// genValue draws a valid finite Value in a random base.
func genValue(t *rapid.T) numeric.Value {
	base := rapid.IntRange(numeric.MinBase, numeric.MaxBase).Draw(t, "base")
	n := rapid.IntRange(1, 40).Draw(t, "len")
	digits := make([]byte, n)
	digits[0] = byte(rapid.IntRange(1, base-1).Draw(t, "lead"))
	for i := 1; i < n; i++ {
		digits[i] = byte(rapid.IntRange(0, base-1).Draw(t, "digit"))
	}
	sign := numeric.Positive
	if rapid.Bool().Draw(t, "negative") {
		sign = numeric.Negative
	}
	return numeric.Value{
		Sign:      sign,
		Digits:    digits,
		Exponent:  rapid.IntRange(-5000, 5000).Draw(t, "exp"),
		Base:      base,
		Precision: n,
		Category:  numeric.Normal,
	}
}

// TestRender_RoundTrip is the parse(render(v)) == v property across all bases.
func TestRender_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := genValue(t)
		text, err := numeric.Render(v)
		if err != nil {
			t.Fatalf("render %v: %v", v, err)
		}
		back, err := numeric.ParseBase(text, v.Base)
		if err != nil {
			t.Fatalf("parse %q: %v", text, err)
		}
		if !back.Equal(v) {
			t.Fatalf("round trip %q: got %+v want %+v", text, back, v)
		}
	})
}
