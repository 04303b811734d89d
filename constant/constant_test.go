package constant_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/numbra/constant"
	"github.com/katalvlaran/numbra/convert"
	"github.com/katalvlaran/numbra/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproximate_KnownDigits(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		base     int
		digits   string
		exponent int
	}{
		{"pi", 10, "31415926535897932384626433832795028841971693993751", 0},
		{"pi", 16, "3243f6a8885a308d313198a2e0370734", 0},
		{"pi", 2, "110010010000111111011010101000100010000101101000110000100011010011", 1},
		{"e", 10, "27182818284590452353602874713526624977572470936999", 0},
		{"sqrt2", 10, "14142135623730950488016887242096980785696718753769", 0},
	}
	for _, tc := range cases {
		c, err := constant.Lookup(tc.name)
		require.NoError(t, err)
		v, err := constant.Approximate(c, tc.base, len(tc.digits))
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.digits, v.Symbols(), "%s base %d", tc.name, tc.base)
		assert.Equal(t, tc.exponent, v.Exponent, "%s base %d", tc.name, tc.base)
		assert.Equal(t, len(tc.digits), v.Precision)
	}
}

// TestApproximate_RoundingAgreement checks that rounding a guarded
// truncation to P digits gives the correctly rounded P-digit constant.
func TestApproximate_RoundingAgreement(t *testing.T) {
	t.Parallel()

	pi, err := constant.Lookup("PI")
	require.NoError(t, err)
	want := map[int]string{
		1: "3e0",
		2: "3.1e0",
		4: "3.142e0",
		5: "3.1416e0",
		8: "3.1415927e0",
	}
	for p, s := range want {
		approx, err := constant.Approximate(pi, 10, p+10)
		require.NoError(t, err)
		got, err := convert.Convert(approx, 10, p)
		require.NoError(t, err)
		assert.Equal(t, s, got.String(), "precision %d", p)
	}
}

func TestLookup_Unknown(t *testing.T) {
	t.Parallel()

	_, err := constant.Lookup("tau")
	assert.ErrorIs(t, err, constant.ErrUnknownConstant)
	assert.Equal(t, []string{"e", "pi", "sqrt2"}, constant.Names())
}

func TestApproximate_Errors(t *testing.T) {
	t.Parallel()

	_, err := constant.Approximate(constant.Pi{}, 40, 5)
	assert.ErrorIs(t, err, numeric.ErrUnsupportedBase)
	_, err = constant.Approximate(constant.E{}, 10, 0)
	assert.ErrorIs(t, err, convert.ErrInvalidPrecision)
}

// ratConstant is a rational stand-in for exercising rounding edges.
type ratConstant struct{ v *big.Rat }

func (ratConstant) Name() string { return "rat" }

func (r ratConstant) Scaled(scale *big.Int) *big.Int {
	n := new(big.Int).Mul(r.v.Num(), scale)
	return n.Quo(n, r.v.Denom())
}

func TestRounded_WidensGuardPastTie(t *testing.T) {
	t.Parallel()

	v, ok := new(big.Rat).SetString("1.2500000000000001")
	require.True(t, ok)
	c := ratConstant{v}

	// Ten guard digits only see 1.25000000000 and round down to even.
	short, err := constant.Approximate(c, 10, 12)
	require.NoError(t, err)
	naive, err := convert.Convert(short, 10, 2)
	require.NoError(t, err)
	assert.Equal(t, "1.2e0", naive.String())

	got, tr, err := constant.Rounded(c, 10, 2, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, "1.3e0", got.String())
	back, err := convert.Convert(tr, 10, 2)
	require.NoError(t, err)
	assert.True(t, back.Equal(got), "truncation %s rounds to %s", tr, back)
}

func TestRounded_Pi(t *testing.T) {
	t.Parallel()

	got, tr, err := constant.Rounded(constant.Pi{}, 10, 5, 10, convert.Default())
	require.NoError(t, err)
	assert.Equal(t, "3.1416e0", got.String())
	assert.Equal(t, "314159265358979", tr.Symbols())
	assert.Equal(t, 5, got.Precision)
}

func TestRounded_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := constant.Rounded(ratConstant{big.NewRat(5, 4)}, 10, 2, 1, nil)
	assert.ErrorIs(t, err, constant.ErrRoundingUnresolved)
	_, _, err = constant.Rounded(constant.Pi{}, 1, 2, 1, nil)
	assert.ErrorIs(t, err, numeric.ErrUnsupportedBase)
	_, _, err = constant.Rounded(constant.Pi{}, 10, 0, 1, nil)
	assert.ErrorIs(t, err, convert.ErrInvalidPrecision)
}
