// Package indicator - shape fingerprint of a solution.
//
// The fingerprint reduces the multiset of per-route sizes to a single 32-bit
// value: sizes are copied, sorted ascending (removing vehicle-order
// dependence), then folded through FNV-1a. Two solutions whose vehicles carry
// the same load sizes, in any vehicle order, fingerprint identically — on any
// machine, in any run. No randomized seeds, no map iteration.
//
// The fingerprint is NOT a uniqueness guarantee. Its only jobs are a cheap
// deterministic last-resort tie-break and an approximate duplicate-shape
// signal for population management.
package indicator

import "sort"

// FNV-1a 32-bit parameters; the offset basis doubles as the fixed seed.
const (
	fnvOffsetBasis uint32 = 2166136261
	fnvPrime       uint32 = 16777619
)

// SizesFingerprint returns the order-independent fingerprint of the given
// route sizes (zeros for empty routes included). The input slice is not
// modified.
//
// Complexity: O(R log R) time, O(R) space, for R sizes.
func SizesFingerprint(sizes []int) uint32 {
	sorted := make([]int, len(sizes))
	copy(sorted, sizes)
	sort.Ints(sorted)

	var (
		h = fnvOffsetBasis
		s int
		u uint32
		b uint
	)
	for _, s = range sorted {
		// Fold each size as four little-endian bytes for stable mixing.
		u = uint32(s)
		for b = 0; b < 4; b++ {
			h ^= (u >> (8 * b)) & 0xff
			h *= fnvPrime
		}
	}

	return h
}
