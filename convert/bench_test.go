package convert_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/numbra/convert"
	"github.com/katalvlaran/numbra/numeric"
)

// benchmarkConvert converts a digits-long decimal value to base at precision.
func benchmarkConvert(b *testing.B, digits, exponent, base, precision int) {
	v, err := numeric.Parse("1." + strings.Repeat("7", digits-1) + "e" + strconv.Itoa(exponent))
	if err != nil {
		b.Fatalf("Parse: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := convert.Convert(v, base, precision); err != nil {
			b.Fatalf("Convert failed: %v", err)
		}
	}
}

// BenchmarkConvert_DecimalSmall is the common case: a short value, same base.
func BenchmarkConvert_DecimalSmall(b *testing.B) { benchmarkConvert(b, 17, 5, 10, 17) }

// BenchmarkConvert_Binary64Range converts a wide exponent to base 2.
func BenchmarkConvert_Binary64Range(b *testing.B) { benchmarkConvert(b, 17, -300, 2, 53) }

// BenchmarkConvert_LongHex converts a 1000-digit value to base 16.
func BenchmarkConvert_LongHex(b *testing.B) { benchmarkConvert(b, 1000, 900, 16, 1000) }
