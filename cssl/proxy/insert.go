package proxy

func (idx *Index) resizeThreshold() uint32 {
	return topLaneBlock * powU32(uint32(idx.skip), idx.maxLevel)
}

// appendSampled writes key into the next free slot of level as the
// sampled value, the only fast-lane write the proxy variant's
// append-only insertion performs.
func (idx *Index) appendSampled(level uint8, key uint32, bucket *ProxyNode) (ok bool) {
	pos := idx.startsOfLanes[level] + idx.laneItems[level]
	if idx.laneItems[level] >= idx.itemsPerLevel[level] {
		return false
	}

	idx.lanes[pos] = key
	if level == 0 {
		idx.lanePointers[pos-idx.startsOfLanes[0]] = bucket
	}
	idx.laneItems[level]++

	return true
}

// BulkInsert appends key to the data lane. Every skip-th key (by
// 1-based position, the same rule the base engine promotes on) opens a
// fresh bucket sampled into the fast lanes; the keys in between are
// folded into that bucket's Keys/Pointers, giving Lookup a chance to
// resolve without a data-lane walk. The caller must supply keys in
// strictly increasing order.
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

	if idx.numElements%uint32(idx.skip) == 0 {
		bucket := &ProxyNode{SampledKey: key}
		promoted := false
		for level := uint8(0); level < idx.maxLevel; level++ {
			threshold := powU32(uint32(idx.skip), level+1)
			if idx.numElements%threshold != 0 {
				break
			}
			if level == 0 {
				if !idx.appendSampled(level, key, bucket) {
					break
				}
				promoted = true
			} else {
				if !idx.appendSampled(level, key, nil) {
					break
				}
			}
		}
		if promoted {
			idx.current = bucket
		}
	} else if idx.current != nil {
		idx.current.Keys = append(idx.current.Keys, key)
		idx.current.Pointers = append(idx.current.Pointers, node)
		idx.current.Updated = true
	}

	if idx.numElements%idx.resizeThreshold() == 0 {
		idx.resize()
	}

	return nil
}
