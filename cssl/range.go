package cssl

import "github.com/flippingbits/cssl/internal/vecops"

// RangeResult is the outcome of a Range query: the data-lane nodes
// bounding the matched span and a lower-bound estimate of its size.
// Start is the first data node with key >= lo, and is nil only when no key
// is >= lo; End is nil when no key falls within [lo, hi].
type RangeResult struct {
	Start *DataNode
	End   *DataNode
	Count uint32
}

// Range reports the span of keys in [lo, hi]. Count is a
// conservative lower bound: it only credits whole SIMD blocks that the
// compare-and-mask scan confirms are entirely within bounds, so it can
// under-report near the edges of the span. Start and End always walk the
// data lane to its exact boundary, regardless of what Count saw.
func (idx *Index) Range(lo, hi uint32) (RangeResult, error) {
	if lo >= Sentinel || hi >= Sentinel || lo > hi {
		return RangeResult{}, ErrInvalidRange
	}
	if idx.numElements == 0 {
		return RangeResult{}, nil
	}

	start0 := idx.startsOfLanes[0]
	skip := uint32(idx.skip)
	itemsInLane := idx.itemsPerLevel[0]

	// Step 1: resolve a starting bottom-lane position for lo exactly as
	// Lookup's descent does, then back off while the lane overshot it.
	curPos := idx.topLevelSearch(lo)
	curPos = idx.descendToBottom(curPos, lo)
	for curPos > start0 && idx.lanes[curPos] > lo {
		curPos--
	}

	// Step 2: resolve the start node. If the backed-off slot still exceeds
	// lo, lo falls before every sampled key and the search has to start
	// from the very first data node; otherwise follow the sampled pointer
	// at curPos. Either way, walk forward to the first key >= lo, since the
	// sampled slot only guarantees a key <= lo.
	var startNode *DataNode
	if idx.lanes[curPos] > lo {
		startNode = idx.head.next
	} else {
		startNode = idx.lanePointers[curPos-start0]
		if startNode == nil {
			startNode = idx.head.next
		}
	}
	for startNode != nil && startNode.Key < lo {
		startNode = startNode.next
	}

	var result RangeResult
	result.Start = startNode
	if startNode == nil {
		return result, nil
	}

	// Step 3: vectorized compare-and-mask scan. A full block (all
	// simdSegments lanes satisfying hi >= key) is skipped wholesale and
	// its skip^-1 expansion credited to Count; the first partial block
	// stops the scan and falls through to scalar refinement.
	rPos := curPos - start0
	blockLimit := uint32(0)
	if itemsInLane >= simdSegments {
		blockLimit = itemsInLane - simdSegments
	}
	for rPos < blockLimit {
		block := idx.lanes[start0+rPos : start0+rPos+simdSegments]
		if vecops.GEMask(block, hi) != 0xff {
			break
		}
		curPos += simdSegments
		rPos += simdSegments
		result.Count += simdSegments * skip
	}

	// Step 4: scalar refinement over whatever the SIMD phase left
	// unresolved, one slot at a time.
	for rPos < itemsInLane && hi >= idx.laneKey(curPos+1) {
		curPos++
		rPos++
	}

	// Step 5: resolve the end node from the sampled pointer at rPos (or
	// from startNode when that pointer is missing or already past hi),
	// walking the data lane forward while keys stay within hi.
	var endNode *DataNode
	if rPos < uint32(len(idx.lanePointers)) {
		endNode = idx.lanePointers[rPos]
	}
	if endNode == nil || endNode.Key > hi {
		endNode = startNode
	}
	for endNode != nil && endNode.Key <= hi {
		result.End = endNode
		endNode = endNode.next
	}

	return result, nil
}
