// SPDX-License-Identifier: MIT
// Package: numbra/constant
//
// constant.go — Constant interface, registry and Approximate.

package constant

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/katalvlaran/numbra/convert"
	"github.com/katalvlaran/numbra/numeric"
)

// ErrUnknownConstant indicates a name not present in the registry.
var ErrUnknownConstant = errors.New("constant: unknown constant")

// guardBits is the binary guard band added below the requested scale so
// per-term truncation errors in the series never reach the returned digits.
const guardBits = 64

// Constant is an irrational constant c ≥ 1 with an integer digit procedure.
type Constant interface {
	// Name is the registry key, e.g. "pi".
	Name() string
	// Scaled returns ⌊c · scale⌋ for scale > 0, possibly one unit low.
	Scaled(scale *big.Int) *big.Int
}

var registry = map[string]Constant{
	"pi":    Pi{},
	"e":     E{},
	"sqrt2": Sqrt2{},
}

// Lookup returns the registered constant for name (case-insensitive).
func Lookup(name string) (Constant, error) {
	c, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("Lookup %q (known: %s): %w", name, strings.Join(Names(), ", "), ErrUnknownConstant)
	}
	return c, nil
}

// Names lists registered constants in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Approximate returns c truncated to exactly precision significant digits
// in base, tagged with that precision.
//
// Errors: numeric.ErrUnsupportedBase, convert.ErrInvalidPrecision.
func Approximate(c Constant, base, precision int) (numeric.Value, error) {
	if err := numeric.CheckBase(base); err != nil {
		return numeric.Value{}, fmt.Errorf("Approximate %s: %w", c.Name(), err)
	}
	if precision < 1 {
		return numeric.Value{}, fmt.Errorf("Approximate %s: precision %d: %w", c.Name(), precision, convert.ErrInvalidPrecision)
	}

	v, err := numeric.FromInt(scaledFloor(c, base, precision), -precision, base)
	if err != nil {
		return numeric.Value{}, err
	}
	return convert.Truncate(v, precision)
}

// scaledFloor returns q with c·B^n in [q, q+2). c ≥ 1, so q has at least
// n+1 digits.
func scaledFloor(c Constant, base, n int) *big.Int {
	scale := new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(n)), nil)
	wide := new(big.Int).Lsh(scale, guardBits)
	q := c.Scaled(wide)
	return q.Rsh(q, guardBits)
}
