package proxy

// resize grows the top lane by topLaneBlock and rebuilds every lane and
// bucket from the data lane, re-running the same sampling rule
// BulkInsert uses so the rebuilt buckets satisfy the same invariant:
// each bucket's keys lie strictly between its SampledKey and the next
// slot's SampledKey.
func (idx *Index) resize() {
	newTopSize := idx.itemsPerLevel[idx.maxLevel-1] + topLaneBlock
	idx.buildLanes(newTopSize)
	idx.current = nil

	skip := uint32(idx.skip)
	i := uint32(0)
	for n := idx.head.next; n != nil; n = n.next {
		i++
		if i%skip == 0 {
			bucket := &ProxyNode{SampledKey: n.Key}
			promoted := false
			for level := uint8(0); level < idx.maxLevel; level++ {
				threshold := powU32(skip, level+1)
				if i%threshold != 0 {
					break
				}
				if level == 0 {
					if !idx.appendSampled(level, n.Key, bucket) {
						break
					}
					promoted = true
				} else if !idx.appendSampled(level, n.Key, nil) {
					break
				}
			}
			if promoted {
				idx.current = bucket
			}
		} else if idx.current != nil {
			idx.current.Keys = append(idx.current.Keys, n.Key)
			idx.current.Pointers = append(idx.current.Pointers, n)
			idx.current.Updated = true
		}
	}
}
