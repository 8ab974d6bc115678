package btree

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidConfiguration is returned by New when the minimum degree is
	// below 2.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidKey is returned by Insert for keys that cannot be ordered
	// against the keys already in the tree.
	ErrInvalidKey = errors.New("invalid key")

	// ErrCorrupted is returned by Check when a structural invariant does not
	// hold.
	ErrCorrupted = errors.New("btree corrupted")
)
