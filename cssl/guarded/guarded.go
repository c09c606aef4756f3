// Package guarded wraps cssl.Index behind a sync.RWMutex so multiple
// readers can share one index concurrently with a single writer: the
// index itself is single-writer, single-reader (see the cssl package
// doc), and this collaborator is the supported way to use it from more
// than one goroutine.
package guarded

import (
	"sync"

	"github.com/flippingbits/cssl/cssl"
)

// Index is a concurrency-safe wrapper around *cssl.Index. Reads take the
// read lock; BulkInsert, Insert, and Destroy take the write lock.
type Index struct {
	inner *cssl.Index
	mu    sync.RWMutex
}

// New wraps a freshly constructed index with the given geometry.
func New(maxLevel uint8, skip uint8) *Index {
	return &Index{inner: cssl.NewIndex(maxLevel, skip)}
}

// BulkInsert appends key under the write lock. See cssl.Index.BulkInsert.
func (g *Index) BulkInsert(key uint32) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.inner.BulkInsert(key)
}

// Insert splices key in under the write lock. See cssl.Index.Insert.
func (g *Index) Insert(key uint32) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.inner.Insert(key)
}

// Lookup reports whether key is present, under the read lock.
func (g *Index) Lookup(key uint32) uint32 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.inner.Lookup(key)
}

// Range reports the span of keys in [lo, hi], under the read lock. The
// returned *cssl.DataNode pointers are safe to read after the lock is
// released, but walking them concurrently with a writer is not: copy out
// whatever fields are needed while still holding the result, or re-query.
func (g *Index) Range(lo, hi uint32) (cssl.RangeResult, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.inner.Range(lo, hi)
}

// Len reports the number of keys currently held, under the read lock.
func (g *Index) Len() uint32 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.inner.Len()
}

// Dump renders the index for inspection, under the read lock.
func (g *Index) Dump() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.inner.Dump()
}

// Destroy releases the index under the write lock. The Index must not be
// used afterward.
func (g *Index) Destroy() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.inner.Destroy()
}
