package cssl

import (
	"fmt"
	"strings"
)

// Dump renders the populated prefix of every fast lane, one line per
// level from the top lane down to level 0, followed by the full data
// lane. It exists for manual inspection and tests; it is not part of the
// engine's hot path and allocates freely.
func (idx *Index) Dump() string {
	var sb strings.Builder

	for level := int(idx.maxLevel) - 1; level >= 0; level-- {
		start := idx.startsOfLanes[level]
		n := idx.laneItems[level]

		fmt.Fprintf(&sb, "L%d (%d/%d): ", level, n, idx.itemsPerLevel[level])
		for i := uint32(0); i < n; i++ {
			fmt.Fprintf(&sb, "%d ", idx.lanes[start+i])
		}
		sb.WriteString("\n")
	}

	sb.WriteString("data: ")
	for n := idx.head.next; n != nil; n = n.next {
		fmt.Fprintf(&sb, "%d ", n.Key)
	}
	sb.WriteString("\n")

	return sb.String()
}
