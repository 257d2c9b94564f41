// Package search - RNG utilities shared by the multi-start driver.
//
// All randomness in this package flows through the helpers below.
//
// Goals:
//   - Determinism: same seed ⇒ identical job orders across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//   - Independence: each restart draws from its own SplitMix64-derived
//     stream, so restarts stay uncorrelated however many workers run.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each restart owns its *rand.Rand;
//     streams are derived up front, never shared.
package search

import "math/rand"

// defaultSeed is the fixed stream selected when callers pass Seed==0.
// Arbitrary but stable, to keep reproducible defaults.
const defaultSeed int64 = 1

// restartSeed derives the seed of restart stream r from the base seed.
// Policy: base==0 ⇒ defaultSeed; the restart index is then mixed in through
// a SplitMix64-style finalizer (Vigna 2014 constants) for full avalanche —
// adjacent restart indices yield well-separated streams.
//
// Complexity: O(1).
func restartSeed(base int64, r uint64) int64 {
	var parent = base
	if parent == 0 {
		parent = defaultSeed
	}

	var x uint64
	x = uint64(parent) ^ (r + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// restartRNG returns the deterministic RNG of restart r.
//
// Complexity: O(1).
func restartRNG(base int64, r uint64) *rand.Rand {
	return rand.New(rand.NewSource(restartSeed(base, r)))
}

// shuffleJobs performs an in-place Fisher–Yates shuffle of the job order.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleJobs(order []int, rng *rand.Rand) {
	var (
		n = len(order)
		i int
		j int
	)
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}
}
