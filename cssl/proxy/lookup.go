package proxy

// Lookup reports whether key is present. It returns key on a hit and
// Sentinel on a miss, resolving out of the landing bucket when possible
// and only falling back to a data-lane walk when the bucket can't prove
// the answer itself. Giving point lookup that chance is the whole
// point of the proxy variant.
func (idx *Index) Lookup(key uint32) uint32 {
	if key >= Sentinel || idx.numElements == 0 {
		return Sentinel
	}

	curPos := idx.topLevelSearch(key)
	curPos = idx.descendToBottom(curPos, key)

	// Settle on the largest bottom-lane slot whose key is <= key: the
	// descent leaves curPos either there or one slot past it.
	start0 := idx.startsOfLanes[0]
	for curPos > start0 && idx.laneKey(curPos) > key {
		curPos--
	}

	if idx.lanes[curPos] == key {
		return key
	}
	if idx.lanes[curPos] > key {
		return idx.scanDataLane(key)
	}

	bucket := idx.lanePointers[curPos-start0]
	if bucket == nil {
		return idx.scanDataLane(key)
	}
	for _, k := range bucket.Keys {
		if k == key {
			return key
		}
	}
	if key < bucket.SampledKey {
		return idx.scanDataLane(key)
	}
	// key is within this bucket's span but not one of its sampled keys:
	// the bucket is authoritative here, so it's a genuine miss.
	return Sentinel
}

func (idx *Index) topLevelSearch(key uint32) uint32 {
	top := idx.maxLevel - 1
	topLen := idx.itemsPerLevel[top]

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
	return last
}

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

func (idx *Index) laneKey(pos uint32) uint32 {
	if pos < uint32(len(idx.lanes)) {
		return idx.lanes[pos]
	}
	return Sentinel
}

func (idx *Index) scanDataLane(key uint32) uint32 {
	for cur := idx.head.next; cur != nil; cur = cur.next {
		if cur.Key == key {
			return key
		}
		if cur.Key > key {
			break
		}
	}
	return Sentinel
}
