// Package cssl implements a cache-sensitive skip list: an in-memory ordered
// index over 32-bit unsigned keys backed by flat, level-partitioned arrays
// ("fast lanes") instead of a pointer-rich skip list. Upper-level traversal
// is a linear scan over a contiguous key buffer; only the bottom data lane
// is a singly linked chain of nodes.
//
// The index is single-writer, single-reader: see cssl/guarded for a
// lock-guarded wrapper suitable for concurrent use.
package cssl

import "github.com/flippingbits/cssl/internal/vecops"

// Sentinel marks an empty lane slot and is returned by Lookup on a miss.
// User keys must be strictly less than Sentinel.
const Sentinel uint32 = 1<<31 - 1

// topLaneBlock is the initial capacity of the top (sparsest) lane, sized to
// one cache line of 32-bit keys.
const topLaneBlock = 16

// simdSegments is the width, in keys, of one vectorized compare block in
// the range-query hot path.
const simdSegments = 8

// DataNode is one element of the data lane, the authoritative ascending
// chain of every key in the index.
type DataNode struct {
	Key  uint32
	next *DataNode
}

// Next returns the data node following n in ascending key order, or nil at
// the tail.
func (n *DataNode) Next() *DataNode {
	if n == nil {
		return nil
	}
	return n.next
}

// Index is a cache-sensitive skip list over uint32 keys. The zero value is
// not usable; construct with NewIndex.
type Index struct {
	maxLevel uint8
	skip     uint8

	numElements uint32

	itemsPerLevel []uint32 // capacity of each level
	startsOfLanes []uint32 // flat-array offset of each level
	laneItems     []uint32 // populated-prefix length of each level

	lanes        []uint32    // flat, level-partitioned key buffer
	lanePointers []*DataNode // parallel to level 0: slot -> data node

	head *DataNode // dummy, key 0
	tail *DataNode
}

// NewIndex creates an empty index with maxLevel fast lanes and a skip
// (down-sampling) ratio between adjacent lanes. maxLevel is clamped to at
// least 1; skip <= 1 is silently promoted to 2.
func NewIndex(maxLevel uint8, skip uint8) *Index {
	if maxLevel < 1 {
		maxLevel = 1
	}
	if skip <= 1 {
		skip = 2
	}

	idx := &Index{
		maxLevel: maxLevel,
		skip:     skip,
		head:     &DataNode{Key: 0},
	}
	idx.tail = idx.head

	idx.itemsPerLevel = make([]uint32, maxLevel)
	idx.startsOfLanes = make([]uint32, maxLevel)
	idx.laneItems = make([]uint32, maxLevel)

	idx.buildLanes(topLaneBlock)

	return idx
}

// buildLanes computes the level geometry for the given top-lane size and
// allocates fresh, sentinel-filled flat arrays. Existing lane contents, if
// any, are not preserved; callers that need to preserve contents (resize)
// rebuild into the new arrays themselves after calling this.
func (idx *Index) buildLanes(topSize uint32) {
	top := int(idx.maxLevel) - 1

	idx.itemsPerLevel[top] = topSize
	idx.startsOfLanes[top] = 0

	total := topSize
	for level := top - 1; level >= 0; level-- {
		idx.itemsPerLevel[level] = idx.itemsPerLevel[level+1] * uint32(idx.skip)
		idx.startsOfLanes[level] = idx.startsOfLanes[level+1] + idx.itemsPerLevel[level+1]
		total += idx.itemsPerLevel[level]
	}

	idx.lanes = make([]uint32, total)
	vecops.FillSentinel(idx.lanes, Sentinel)
	idx.lanePointers = make([]*DataNode, idx.itemsPerLevel[0])
}

// Len reports the number of keys currently held in the data lane.
func (idx *Index) Len() uint32 {
	return idx.numElements
}

// Destroy releases the index's flat arrays and walks the data lane freeing
// every node. Go's garbage collector would reclaim this memory regardless; Destroy
// exists so the index's ownership story matches the source's scoped
// acquisition/guaranteed-cleanup model, and so a destroyed Index fails
// fast (panics on nil dereference) rather than silently operating on
// half-torn-down state if reused.
func (idx *Index) Destroy() {
	for n := idx.head; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}

	idx.lanes = nil
	idx.lanePointers = nil
	idx.itemsPerLevel = nil
	idx.startsOfLanes = nil
	idx.laneItems = nil
	idx.head = nil
	idx.tail = nil
}

// laneKey returns the key stored at flat-array position pos, or Sentinel
// if pos runs past the end of the lanes buffer. The bottom lane is the
// last segment of the flat array, so a forward probe that overshoots the
// populated prefix of level 0 can walk one slot past the buffer's end;
// treating that as an implicit sentinel (unpopulated suffix positions
// equal the sentinel) keeps every descent loop a single
// branch instead of a bounds check at each call site.
func (idx *Index) laneKey(pos uint32) uint32 {
	if pos < uint32(len(idx.lanes)) {
		return idx.lanes[pos]
	}
	return Sentinel
}

// powU32 returns base**exp computed over uint32 without the float rounding
// a math.Pow round-trip would risk for the exponents this engine uses
// (level depths are single digits).
func powU32(base uint32, exp uint8) uint32 {
	result := uint32(1)
	for i := uint8(0); i < exp; i++ {
		result *= base
	}
	return result
}
