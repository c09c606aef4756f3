package cssl

// resizeThreshold is the total element count at which the bottom lane has
// just filled, so a resize must land before the next promotion overflows
// it: TOP * skip^maxLevel, the same bound original_source/skiplist.c checks
// (`slist->num_elements % (TOP_LANE_BLOCK*pow(skip,max_level)) == 0`).
func (idx *Index) resizeThreshold() uint32 {
	return topLaneBlock * powU32(uint32(idx.skip), idx.maxLevel)
}

// BulkInsert appends key to the data lane and promotes it into the fast
// lanes it samples into. The caller must guarantee key is
// strictly greater than every key inserted so far; BulkInsert is the
// throughput path for pre-sorted workloads (benchmarks, bulk loads) and
// does not search for an insertion point.
func (idx *Index) BulkInsert(key uint32) error {
	if key >= Sentinel {
		return ErrInvalidKey
	}
	if key <= idx.tail.Key {
		return ErrOutOfOrder
	}

	node := &DataNode{Key: key}
	idx.tail.next = node
	idx.tail = node
	idx.numElements++

	// A key lands on level k iff its 1-based position in the data lane is
	// a multiple of skip^(k+1). Promotion stops at the first
	// level whose threshold isn't hit, or whose lane is full.
	for level := uint8(0); level < idx.maxLevel; level++ {
		threshold := powU32(uint32(idx.skip), level+1)
		if idx.numElements%threshold != 0 {
			break
		}
		if _, ok := idx.appendIntoLane(level, node); !ok {
			break
		}
	}

	if idx.numElements%idx.resizeThreshold() == 0 {
		idx.resize()
	}

	return nil
}

// Insert inserts key anywhere in key order, splicing it into the data
// lane at its sorted position and shifting fast-lane entries to keep them
// sorted. It is O(n) per call; sorted-arrival workloads
// should prefer BulkInsert. Re-inserting an existing key returns
// ErrDuplicateKey rather than corrupting the lanes.
func (idx *Index) Insert(key uint32) error {
	if key >= Sentinel {
		return ErrInvalidKey
	}

	cur := idx.head
	pos := uint32(0)
	for cur.next != nil && cur.next.Key < key {
		cur = cur.next
		pos++
	}
	if cur.next != nil && cur.next.Key == key {
		return ErrDuplicateKey
	}

	node := &DataNode{Key: key}
	node.next = cur.next
	cur.next = node
	if cur == idx.tail {
		idx.tail = node
	}

	for level := uint8(0); level < idx.maxLevel; level++ {
		threshold := powU32(uint32(idx.skip), level+1)
		if pos%threshold != 0 {
			break
		}
		if _, ok := idx.insertSortedIntoLane(level, node); !ok {
			break
		}
	}

	idx.numElements++
	if idx.numElements%idx.resizeThreshold() == 0 {
		idx.resize()
	}

	return nil
}
