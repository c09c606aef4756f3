// Package proxy implements the bottom-lane proxy-node variant of the
// cache-sensitive skip list described alongside the base engine: instead
// of a bottom-lane slot pointing at exactly one data node, each slot owns
// a small bucket of up to skip keys and data-node references, sampled
// from the data lane between this slot's key and the next. A point
// lookup that lands in a bucket can resolve directly out of it without
// ever touching the data lane.
//
// This variant is bulk-insert only: the source's proxy fast-lane
// insertion is append-only and assumes sorted arrival, so unlike the
// base cssl.Index there is no general, arbitrary-position Insert here.
package proxy

import "github.com/flippingbits/cssl/internal/vecops"

// Sentinel marks an empty lane slot, mirroring cssl.Sentinel.
const Sentinel uint32 = 1<<31 - 1

const topLaneBlock = 16

// DataNode is one element of the data lane.
type DataNode struct {
	Key  uint32
	next *DataNode
}

// Next returns the node following n, or nil at the tail.
func (n *DataNode) Next() *DataNode {
	if n == nil {
		return nil
	}
	return n.next
}

// ProxyNode is a bottom-lane slot: a sampled key plus the bucket of
// keys and data-node references strictly between it and the next
// sampled key (bucket keys are > SampledKey and < the next
// slot's SampledKey).
type ProxyNode struct {
	SampledKey uint32
	Keys       []uint32
	Pointers   []*DataNode
	Updated    bool
}

// Index is the proxy-node variant of the cache-sensitive skip list.
type Index struct {
	maxLevel uint8
	skip     uint8

	numElements uint32

	itemsPerLevel []uint32
	startsOfLanes []uint32
	laneItems     []uint32

	lanes        []uint32
	lanePointers []*ProxyNode // parallel to level 0

	current *ProxyNode // most recently opened bucket, target of in-between appends

	head *DataNode
	tail *DataNode
}

// NewIndex creates an empty proxy-variant index, with the same geometry
// rules as the base engine's NewIndex.
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
	idx.lanePointers = make([]*ProxyNode, idx.itemsPerLevel[0])
}

// Len reports the number of keys held in the data lane.
func (idx *Index) Len() uint32 {
	return idx.numElements
}

func powU32(base uint32, exp uint8) uint32 {
	result := uint32(1)
	for i := uint8(0); i < exp; i++ {
		result *= base
	}
	return result
}
