package verifier_test

import (
	"fmt"

	"github.com/katalvlaran/numbra/testcase"
	"github.com/katalvlaran/numbra/verifier"
)

// ExampleVerify checks a record read from a file against a wrong expectation.
func ExampleVerify() {
	rec, err := testcase.Resolve(testcase.Request{Num: "3.14159", Precision: 4, Expected: "3.141"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := verifier.Verify(rec)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Matched, res.Computed, res.Notes)
	// Output:
	// false 3.142e0 digit divergence at position 3
}
