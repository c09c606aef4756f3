package cssl

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewIndex(t *testing.T) {
	Convey("When NewIndex is called", t, func() {
		idx := NewIndex(3, 2)
		So(idx.Len(), ShouldEqual, 0)
		So(len(idx.itemsPerLevel), ShouldEqual, 3)
		So(idx.itemsPerLevel[2], ShouldEqual, topLaneBlock)

		Convey("maxLevel below 1 is clamped to 1", func() {
			clamped := NewIndex(0, 2)
			So(len(clamped.itemsPerLevel), ShouldEqual, 1)
		})

		Convey("skip <= 1 is promoted to 2", func() {
			promoted := NewIndex(3, 1)
			So(promoted.skip, ShouldEqual, 2)
		})
	})
}

func TestBulkInsertAndLookup(t *testing.T) {
	Convey("Given an index built with create(3,2)", t, func() {
		idx := NewIndex(3, 2)

		Convey("bulk-inserting 1..100 then looking up 50 and 101", func() {
			for i := uint32(1); i <= 100; i++ {
				So(idx.BulkInsert(i), ShouldBeNil)
			}

			So(idx.Lookup(50), ShouldEqual, 50)
			So(idx.Lookup(101), ShouldEqual, Sentinel)
		})

		Convey("bulk-inserting out of order is rejected", func() {
			So(idx.BulkInsert(10), ShouldBeNil)
			So(idx.BulkInsert(5), ShouldEqual, ErrOutOfOrder)
			So(idx.BulkInsert(10), ShouldEqual, ErrOutOfOrder)
		})

		Convey("bulk-inserting the sentinel is rejected", func() {
			So(idx.BulkInsert(Sentinel), ShouldEqual, ErrInvalidKey)
		})
	})
}

func TestBulkInsertGeometry(t *testing.T) {
	Convey("Given an index built with create(9,5)", t, func() {
		idx := NewIndex(9, 5)

		Convey("bulk-inserting 1..100000 samples level 0 at every 5th key", func() {
			for i := uint32(1); i <= 100000; i++ {
				So(idx.BulkInsert(i), ShouldBeNil)
			}

			So(idx.laneItems[0], ShouldEqual, 20000)
			start := idx.startsOfLanes[0]
			for j := uint32(0); j < 10; j++ {
				So(idx.lanes[start+j], ShouldEqual, 5*(j+1))
			}
		})
	})
}

func TestGeneralInsert(t *testing.T) {
	Convey("Given an index built with create(2,3)", t, func() {
		idx := NewIndex(2, 3)

		Convey("inserting 10,5,30,20,15 keeps the data lane ascending", func() {
			for _, k := range []uint32{10, 5, 30, 20, 15} {
				So(idx.Insert(k), ShouldBeNil)
			}

			var got []uint32
			for n := idx.head.next; n != nil; n = n.next {
				got = append(got, n.Key)
			}
			So(got, ShouldResemble, []uint32{5, 10, 15, 20, 30})

			for _, k := range got {
				So(idx.Lookup(k), ShouldEqual, k)
			}
			So(idx.Lookup(1), ShouldEqual, Sentinel)
		})

		Convey("re-inserting an existing key is rejected", func() {
			So(idx.Insert(10), ShouldBeNil)
			So(idx.Insert(10), ShouldEqual, ErrDuplicateKey)
		})
	})
}

func TestResize(t *testing.T) {
	Convey("Given an index built with create(3,2) bulk-inserting past its first resize threshold", t, func() {
		idx := NewIndex(3, 2)
		topBefore := idx.itemsPerLevel[idx.maxLevel-1]

		for i := uint32(1); i <= 1024; i++ {
			So(idx.BulkInsert(i), ShouldBeNil)
		}

		Convey("the top lane grew", func() {
			So(idx.itemsPerLevel[idx.maxLevel-1], ShouldBeGreaterThan, topBefore)
		})

		Convey("every inserted key is still reachable", func() {
			for i := uint32(1); i <= 1024; i++ {
				So(idx.Lookup(i), ShouldEqual, i)
			}
			So(idx.Lookup(1025), ShouldEqual, Sentinel)
		})

		Convey("each level's populated prefix matches its occupancy invariant", func() {
			for level := uint8(0); level < idx.maxLevel; level++ {
				So(idx.laneItems[level], ShouldBeLessThanOrEqualTo, idx.itemsPerLevel[level])
			}
		})
	})
}

func TestRange(t *testing.T) {
	Convey("Given an index built with create(3,2) bulk-inserting 1..1000", t, func() {
		idx := NewIndex(3, 2)
		for i := uint32(1); i <= 1000; i++ {
			So(idx.BulkInsert(i), ShouldBeNil)
		}

		Convey("range(250,259) resolves the exact bounding nodes", func() {
			res, err := idx.Range(250, 259)
			So(err, ShouldBeNil)
			So(res.Start.Key, ShouldEqual, 250)
			So(res.End.Key, ShouldEqual, 259)
		})

		Convey("a range exceeding the data lane clamps to the tail", func() {
			res, err := idx.Range(0, 1000000)
			So(err, ShouldBeNil)
			So(res.Start.Key, ShouldEqual, 1)
			So(res.End.Key, ShouldEqual, 1000)
		})

		Convey("lo greater than hi is rejected", func() {
			_, err := idx.Range(10, 5)
			So(err, ShouldEqual, ErrInvalidRange)
		})
	})

	Convey("Given an index built with create(3,2) bulk-inserting 1..50", t, func() {
		idx := NewIndex(3, 2)
		for i := uint32(1); i <= 50; i++ {
			So(idx.BulkInsert(i), ShouldBeNil)
		}

		Convey("range(0,1000000) spans the whole data lane", func() {
			res, err := idx.Range(0, 1000000)
			So(err, ShouldBeNil)
			So(res.Start.Key, ShouldEqual, 1)
			So(res.End.Key, ShouldEqual, 50)
		})
	})

	Convey("Given an empty index", t, func() {
		idx := NewIndex(3, 2)

		Convey("any range query returns a zero result", func() {
			res, err := idx.Range(0, 100)
			So(err, ShouldBeNil)
			So(res.Start, ShouldBeNil)
			So(res.End, ShouldBeNil)
		})
	})
}

func TestDump(t *testing.T) {
	Convey("Given a small populated index", t, func() {
		idx := NewIndex(2, 2)
		for i := uint32(1); i <= 10; i++ {
			So(idx.BulkInsert(i), ShouldBeNil)
		}

		Convey("Dump labels the data lane and lists its first key", func() {
			out := idx.Dump()
			So(out, ShouldContainSubstring, "data:")
			So(out, ShouldContainSubstring, "1 ")
		})
	})
}

func TestDestroy(t *testing.T) {
	Convey("Given a populated index", t, func() {
		idx := NewIndex(3, 2)
		for i := uint32(1); i <= 10; i++ {
			So(idx.BulkInsert(i), ShouldBeNil)
		}

		Convey("Destroy clears the data lane chain", func() {
			idx.Destroy()
			So(idx.head, ShouldBeNil)
		})
	})
}
