package cssl

// appendIntoLane writes key into the next free slot of level, used when key
// is known to exceed every key already in the
// level (the bulk-insert path). It reports whether the write succeeded; a
// full level aborts further promotion for the caller.
func (idx *Index) appendIntoLane(level uint8, node *DataNode) (slot uint32, ok bool) {
	pos := idx.startsOfLanes[level] + idx.laneItems[level]
	if idx.laneItems[level] >= idx.itemsPerLevel[level] {
		return 0, false
	}

	idx.lanes[pos] = node.Key
	if level == 0 {
		idx.lanePointers[pos-idx.startsOfLanes[0]] = node
	}
	idx.laneItems[level]++

	return pos, true
}

// insertSortedIntoLane is the sorted-insert counterpart, used by the
// general insert path: it linearly scans the populated prefix of level for
// the first slot whose key is >= node.Key, then either writes into a
// sentinel slot in place or shifts the populated suffix right by one to
// make room. It reports whether the write succeeded; a full level with no
// sentinel slot to land in aborts further promotion for the caller.
func (idx *Index) insertSortedIntoLane(level uint8, node *DataNode) (slot uint32, ok bool) {
	start := idx.startsOfLanes[level]
	limit := start + idx.itemsPerLevel[level]

	pos := start
	for pos < limit && idx.lanes[pos] != Sentinel && idx.lanes[pos] < node.Key {
		pos++
	}

	switch {
	case pos >= limit:
		return 0, false
	case idx.lanes[pos] == Sentinel:
		idx.lanes[pos] = node.Key
	case idx.laneItems[level] < idx.itemsPerLevel[level]:
		last := start + idx.laneItems[level]
		for i := last; i > pos; i-- {
			idx.lanes[i] = idx.lanes[i-1]
			if level == 0 {
				idx.lanePointers[i-idx.startsOfLanes[0]] = idx.lanePointers[i-1-idx.startsOfLanes[0]]
			}
		}
		idx.lanes[pos] = node.Key
	default:
		return 0, false
	}

	if level == 0 {
		idx.lanePointers[pos-idx.startsOfLanes[0]] = node
	}
	idx.laneItems[level]++

	return pos, true
}
