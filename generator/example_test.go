package generator_test

import (
	"fmt"

	"github.com/katalvlaran/numbra/generator"
)

// ExampleGenerate builds the three special records and π to four digits.
func ExampleGenerate() {
	cfg := generator.DefaultConfig()
	cfg.Count = 0
	cfg.IncludeSpecial = true
	cfg.IncludePi = 4

	recs, err := generator.Generate(cfg, generator.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range recs {
		fmt.Println(r.Origin, r.RequestedPrecision, r.ExpectedText())
	}
	// Output:
	// special 1 inf
	// special 1 -inf
	// special 1 nan
	// transcendental 1 3e0
	// transcendental 2 3.1e0
	// transcendental 3 3.14e0
	// transcendental 4 3.142e0
}
