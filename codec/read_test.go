package codec_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/numbra/codec"
	"github.com/katalvlaran/numbra/testcase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_Text(t *testing.T) {
	t.Parallel()

	in := `# value precision [radix [base]]
1.5 2
  0.1   14 10 2

abc
3.25 x
1 2 3 4 5
`
	reqs, err := codec.Read(strings.NewReader(in), codec.FormatText)
	require.NoError(t, err)
	require.Len(t, reqs, 5)

	assert.Equal(t, testcase.Request{Num: "1.5", Precision: 2, Line: 2}, reqs[0])
	assert.Equal(t, testcase.Request{Num: "0.1", Precision: 14, Radix: 10, Base: 2, Line: 3}, reqs[1])
	for _, r := range reqs[2:] {
		assert.ErrorIs(t, r.Err, codec.ErrBadRecord, "line %d", r.Line)
	}
	assert.Equal(t, []int{5, 6, 7}, []int{reqs[2].Line, reqs[3].Line, reqs[4].Line})
}

func TestRead_JSON(t *testing.T) {
	t.Parallel()

	in := `[
  {"num_str": "1.5", "precision": 2},
  {"num": 2.5, "precision": 3, "expected": "2.50", "base": 10},
  {"precision": 1}
]`
	reqs, err := codec.Read(strings.NewReader(in), codec.FormatJSON)
	require.NoError(t, err)
	require.Len(t, reqs, 3)
	assert.Equal(t, testcase.Request{Num: "1.5", Precision: 2, Line: 1}, reqs[0])
	assert.Equal(t, testcase.Request{Num: "2.5", Precision: 3, Expected: "2.50", Base: 10, Line: 2}, reqs[1])
	assert.ErrorIs(t, reqs[2].Err, codec.ErrBadRecord)

	wrapped, err := codec.Read(strings.NewReader(`{"test_cases": [{"num_str": "7", "precision": 1}]}`), codec.FormatJSON)
	require.NoError(t, err)
	require.Len(t, wrapped, 1)
	assert.Equal(t, "7", wrapped[0].Num)

	_, err = codec.Read(strings.NewReader(`[{"num_str": `), codec.FormatJSON)
	assert.Error(t, err)

	empty, err := codec.Read(strings.NewReader("  \n"), codec.FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRead_TOML(t *testing.T) {
	t.Parallel()

	in := `
[[test_cases]]
num_str = "1.5"
precision = 2
expected = "1.5e0"

[[testcase]]
num = "0.1"
precision = 14
radix = 10
base = 2
`
	reqs, err := codec.Read(strings.NewReader(in), codec.FormatTOML)
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Equal(t, testcase.Request{Num: "1.5", Precision: 2, Expected: "1.5e0", Line: 1}, reqs[0])
	assert.Equal(t, testcase.Request{Num: "0.1", Precision: 14, Radix: 10, Base: 2, Line: 2}, reqs[1])

	_, err = codec.Read(strings.NewReader("[[test_cases]\n"), codec.FormatTOML)
	assert.Error(t, err)
}

func TestRead_YAML(t *testing.T) {
	t.Parallel()

	list := `
- num_str: "1.5"
  precision: 2
- num: 2.5
  precision: 3
`
	reqs, err := codec.Read(strings.NewReader(list), codec.FormatYAML)
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Equal(t, "1.5", reqs[0].Num)
	assert.Equal(t, "2.5", reqs[1].Num)
	assert.Equal(t, 3, reqs[1].Precision)

	doc := "test_cases:\n  - num_str: inf\n    precision: 1\n"
	reqs, err = codec.Read(strings.NewReader(doc), codec.FormatYAML)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, "inf", reqs[0].Num)

	empty, err := codec.Read(strings.NewReader(""), codec.FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRead_CSV(t *testing.T) {
	t.Parallel()

	in := "num_str,precision,expected,radix,base\n1.5,2,1.5e0,,\n0.1,14,,10,2\n,3,,,\n2,two,,,\n"
	reqs, err := codec.Read(strings.NewReader(in), codec.FormatCSV)
	require.NoError(t, err)
	require.Len(t, reqs, 4)
	assert.Equal(t, testcase.Request{Num: "1.5", Precision: 2, Expected: "1.5e0", Line: 2}, reqs[0])
	assert.Equal(t, testcase.Request{Num: "0.1", Precision: 14, Radix: 10, Base: 2, Line: 3}, reqs[1])
	assert.ErrorIs(t, reqs[2].Err, codec.ErrBadRecord)
	assert.ErrorIs(t, reqs[3].Err, codec.ErrBadRecord)

	_, err = codec.Read(strings.NewReader("value,precision\n1,2\n"), codec.FormatCSV)
	assert.ErrorIs(t, err, codec.ErrBadRecord)
}

func TestRead_WriteOnlyFormat(t *testing.T) {
	t.Parallel()

	_, err := codec.Read(strings.NewReader(""), codec.FormatC)
	assert.ErrorIs(t, err, codec.ErrUnknownFormat)
}

// TestRead_MalformedLineResolvesToFailure: reader errors surface through Resolve.
func TestRead_MalformedLineResolvesToFailure(t *testing.T) {
	t.Parallel()

	reqs, err := codec.Read(strings.NewReader("1.5 2\nlonely\n"), codec.FormatText)
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	_, err = testcase.Resolve(reqs[0])
	assert.NoError(t, err)
	_, err = testcase.Resolve(reqs[1])
	assert.ErrorIs(t, err, codec.ErrBadRecord)
}
