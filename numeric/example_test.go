package numeric_test

import (
	"fmt"

	"github.com/katalvlaran/numbra/numeric"
)

// ExampleParse shows how a decimal token is normalized to d0.d1… × 10^e.
func ExampleParse() {
	v, err := numeric.Parse("0.123456789e-5")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(v.Symbols(), v.Exponent, v.Precision)
	fmt.Println(v)
	// Output:
	// 123456789 -6 9
	// 1.23456789e-6
}

// ExampleRender writes a base-16 value; '@' marks the exponent above base 10.
func ExampleRender() {
	v, _ := numeric.ParseBase("ff.8", 16)
	s, _ := numeric.Render(v)
	fmt.Println(s)
	// Output:
	// f.f8@1
}
