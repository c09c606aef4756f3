package proxy

import "errors"

var (
	// ErrInvalidKey is returned when a key is equal to or greater than Sentinel.
	ErrInvalidKey error = errors.New("cssl/proxy: key must be less than the sentinel")
	// ErrOutOfOrder is returned by BulkInsert when the new key does not
	// strictly exceed the current tail of the data lane.
	ErrOutOfOrder error = errors.New("cssl/proxy: bulk insert requires strictly increasing keys")
)
