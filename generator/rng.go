// SPDX-License-Identifier: MIT
// Package: numbra/generator
//
// rng.go — deterministic random streams for generation runs.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every run and every strategy in
//     it owns a private *rand.Rand derived here; nothing is shared.

package generator

import "math/rand"

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// parentSeed picks the seed all strategy streams of one run derive from.
// A caller RNG is advanced once; otherwise seed (0 ⇒ defaultRNGSeed).
func parentSeed(seed int64, base *rand.Rand) int64 {
	if base != nil {
		return base.Int63()
	}
	if seed == 0 {
		return defaultRNGSeed
	}
	return seed
}

// deriveSeed mixes a parent seed and a stream identifier with the
// SplitMix64 finalizer so neighbouring streams are decorrelated.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG returns the independent stream number stream of parent.
func deriveRNG(parent int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// intRange draws uniformly from [lo, hi]. Requires lo ≤ hi.
func intRange(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}
