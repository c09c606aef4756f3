package cssl

// Lookup reports whether key is present in the index. It returns key
// itself on a hit and Sentinel on a miss or on an invalid key, an in-band
// sentinel-return contract rather than a separate found/error signal.
func (idx *Index) Lookup(key uint32) uint32 {
	if key >= Sentinel || idx.numElements == 0 {
		return Sentinel
	}

	curPos := idx.topLevelSearch(key)
	curPos = idx.descendToBottom(curPos, key)

	if curPos > 0 {
		curPos--
	}
	if idx.lanes[curPos] == key {
		return key
	}

	if curPos < idx.startsOfLanes[0] {
		return scanDataLane(idx.head.next, key)
	}
	cur := idx.lanePointers[curPos-idx.startsOfLanes[0]]
	if cur == nil {
		return scanDataLane(idx.head.next, key)
	}
	return scanDataLane(cur, key)
}

// topLevelSearch binary-searches the top lane for key. An exact match
// short-circuits the search (the top lane's low occupancy makes every
// remaining comparison free real estate); otherwise curPos lands on the
// smallest index whose key is >= key, which may hold a key greater than
// key; descendToBottom probes backward from such a slot.
func (idx *Index) topLevelSearch(key uint32) uint32 {
	top := idx.maxLevel - 1
	topLen := idx.itemsPerLevel[top] // startsOfLanes[top] is always 0

	var first, middle uint32
	last := topLen - 1

	for first < last {
		middle = (first + last) / 2
		switch {
		case idx.lanes[middle] < key:
			first = middle + 1
		case idx.lanes[middle] == key:
			return middle
		default:
			last = middle
		}
	}
	// No exact match: first == last here, and every slot before it holds a
	// key < key, so that slot is the first one whose key is >= key (or the
	// lane's last slot when every key is smaller).
	return last
}

// descendToBottom walks curPos from the top lane down to level 0, one
// level at a time. At each level it linearly probes
// forward while the lane's keys stay <= key, or backward if curPos already
// overshot past a key greater than key, then rescales curPos into the
// level below by the skip ratio.
func (idx *Index) descendToBottom(curPos uint32, key uint32) uint32 {
	skip := uint32(idx.skip)

	for level := int(idx.maxLevel) - 1; level >= 0; level-- {
		start := idx.startsOfLanes[level]

		if idx.lanes[curPos] > key {
			for curPos > start && idx.lanes[curPos] > key {
				curPos--
			}
		} else {
			rPos := curPos - start
			for rPos < idx.itemsPerLevel[level] {
				curPos++
				if key < idx.laneKey(curPos) {
					break
				}
				rPos++
			}
		}

		if level == 0 {
			break
		}
		rPos := curPos - start
		curPos = idx.startsOfLanes[level-1] + rPos*skip
	}

	return curPos
}

// scanDataLane walks the data lane forward from start looking for key,
// relying on ascending order to stop early. It is the final step of both
// Lookup and the guard path taken when the fast-lane
// descent underflows below the bottom lane's first slot.
func scanDataLane(start *DataNode, key uint32) uint32 {
	for cur := start; cur != nil; cur = cur.next {
		if cur.Key == key {
			return key
		}
		if cur.Key > key {
			break
		}
	}
	return Sentinel
}
