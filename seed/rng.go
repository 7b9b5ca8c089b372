// Package seed - RNG primitives shared by Generators and StreamBackend.
//
// This file centralizes how every random stream of a run is created.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws on every platform.
//   - Encapsulation: one factory (newRand); no time-based sources anywhere.
//   - Independence: device and per-worker streams derive from the run seed
//     through deriveSeed, never by consuming a sibling stream.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use Generators.Derive to hand each goroutine or worker its own stream.
package seed

import "math/rand"

// newRand returns a deterministic *rand.Rand seeded verbatim with seed.
//
// Complexity: O(1).
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Rationale:
//   - Device streams and derived worker streams must not overlap with the
//     parent stream or with each other, even for adjacent identifiers.
//   - A SplitMix64-style avalanche mix removes the correlation between
//     parent+0, parent+1, ... that plain addition would leave.
//
// Notes:
//   - Constants are the canonical SplitMix64 increment and finalizer
//     multipliers.
//   - The result depends only on (parent, stream), so device i always gets
//     the same stream for a given seed.
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

// WorkerSeed reduces a process seed to the 32-bit range data-loader workers
// use: initial mod 2^32. Negative seeds wrap through their two's-complement
// bit pattern.
//
// Complexity: O(1).
func WorkerSeed(initial int64) int64 {
	return int64(uint64(initial) % (1 << 32))
}
