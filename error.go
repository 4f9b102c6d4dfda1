package ordset

import "errors"

var (
	// ErrKeyNotFound is returned by Get, Min, and Max when the requested
	// key, or any key at all, is absent.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidOrder is returned by New and NewFunc for orders below
	// MinOrder.
	ErrInvalidOrder = errors.New("order must be at least 3")

	// ErrNilCompare is returned by NewFunc when no comparator is given.
	ErrNilCompare = errors.New("compare function is nil")

	// ErrKeysUnsorted is returned by Loader.Add when a key does not sort
	// strictly after its predecessor.
	ErrKeysUnsorted = errors.New("keys must be added in strictly ascending order")

	// ErrLoaderBuilt is returned by Add and Build once Build has run; the
	// loader's nodes belong to the returned tree by then.
	ErrLoaderBuilt = errors.New("loader already built")

	// ErrInvalidTree is wrapped by every violation Validate reports.
	ErrInvalidTree = errors.New("invalid tree")
)
