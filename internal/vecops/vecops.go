// Package vecops provides the handful of bulk key-array operations the
// cache-sensitive skip list's fast lanes need, expressed against a portable
// SIMD abstraction (github.com/ajroetker/go-highway/hwy) where that
// abstraction's surface covers the operation, and as a plain scalar loop
// where it doesn't. Correctness never depends on the vector width actually
// available at runtime, matching the "fall back to a scalar loop" guidance
// for this hot path.
package vecops

import "github.com/ajroetker/go-highway/hwy"

// FillSentinel sets every element of dst to sentinel, vectorized in blocks
// of hwy.MaxLanes[uint32]() with a scalar remainder. Used by the resize
// protocol to initialize a freshly grown flat-lane buffer before rebuilding
// its contents.
func FillSentinel(dst []uint32, sentinel uint32) {
	lanes := hwy.MaxLanes[uint32]()
	if lanes < 1 {
		lanes = 1
	}

	fill := hwy.Set(sentinel)
	i := 0
	for ; i+lanes <= len(dst); i += lanes {
		hwy.Store(fill, dst[i:])
	}
	for ; i < len(dst); i++ {
		dst[i] = sentinel
	}
}

// GEMask evaluates, for each of the simdSegments keys starting at block[0],
// whether threshold >= key, and packs the results into the low
// len(block) bits of the returned mask (bit i set means block[i] matched).
// This is the portable scalar fallback for the range query's hot
// compare-and-mask step: no compare/mask primitive for
// hwy.Vec was available to ground a vectorized version against, and
// correctness here must not depend on vector width, so a plain loop over
// an 8-wide block stands in for the source's AVX comparison.
func GEMask(block []uint32, threshold uint32) uint8 {
	var mask uint8
	for i, key := range block {
		if threshold >= key {
			mask |= 1 << uint(i)
		}
	}
	return mask
}
