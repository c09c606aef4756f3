package cssl

import "errors"

var (
	// ErrInvalidKey is returned when a key is equal to or greater than Sentinel.
	ErrInvalidKey error = errors.New("cssl: key must be less than the sentinel")
	// ErrOutOfOrder is returned by BulkInsert when the new key does not
	// strictly exceed the current tail of the data lane.
	ErrOutOfOrder error = errors.New("cssl: bulk insert requires strictly increasing keys")
	// ErrDuplicateKey is returned by Insert when the key already exists,
	// rejecting the insert rather than leaving the lanes inconsistent.
	ErrDuplicateKey error = errors.New("cssl: key already present")
	// ErrInvalidRange is returned when a range query's lower bound exceeds
	// its upper bound.
	ErrInvalidRange error = errors.New("cssl: lo must not exceed hi")
)
