package proxy

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestProxyBulkInsertAndLookup(t *testing.T) {
	Convey("Given a proxy index built with create(3,5)", t, func() {
		idx := NewIndex(3, 5)

		Convey("bulk-inserting 1..200 makes every key resolvable", func() {
			for i := uint32(1); i <= 200; i++ {
				So(idx.BulkInsert(i), ShouldBeNil)
			}

			for i := uint32(1); i <= 200; i++ {
				So(idx.Lookup(i), ShouldEqual, i)
			}
			So(idx.Lookup(201), ShouldEqual, Sentinel)
		})

		Convey("the first sampled slot's bucket holds the skip-1 keys between samples", func() {
			for i := uint32(1); i <= 50; i++ {
				So(idx.BulkInsert(i), ShouldBeNil)
			}

			start := idx.startsOfLanes[0]
			bucket := idx.lanePointers[start-start]
			So(bucket, ShouldNotBeNil)
			So(bucket.SampledKey, ShouldEqual, 5)
			So(len(bucket.Keys), ShouldEqual, 4)
			So(bucket.Keys, ShouldResemble, []uint32{6, 7, 8, 9})
		})

		Convey("bulk-inserting out of order is rejected", func() {
			So(idx.BulkInsert(10), ShouldBeNil)
			So(idx.BulkInsert(3), ShouldEqual, ErrOutOfOrder)
		})
	})
}

func TestProxyResize(t *testing.T) {
	Convey("Given a proxy index built with create(3,5) past its resize threshold", t, func() {
		idx := NewIndex(3, 5)
		topBefore := idx.itemsPerLevel[idx.maxLevel-1]

		for i := uint32(1); i <= 2000; i++ {
			So(idx.BulkInsert(i), ShouldBeNil)
		}

		Convey("the top lane grew and every key is still reachable", func() {
			So(idx.itemsPerLevel[idx.maxLevel-1], ShouldBeGreaterThan, topBefore)
			for i := uint32(1); i <= 2000; i++ {
				So(idx.Lookup(i), ShouldEqual, i)
			}
		})
	})
}
