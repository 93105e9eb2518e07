package bplus

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidOrder is returned by NewBPlusTree when order < 2.
	ErrInvalidOrder = errors.New("invalid tree order")

	// ErrCorrupted is returned by Validate when a structural invariant does not hold.
	ErrCorrupted = errors.New("tree invariant violated")
)
