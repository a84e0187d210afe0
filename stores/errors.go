package stores

import "errors"

var (
	// ErrNotFound means the referenced post or comment does not exist, or the
	// comment does not belong to the given post.
	ErrNotFound = errors.New("not found")

	// ErrOwnershipMismatch means the supplied username does not equal the
	// stored author on a mutating call. Nothing was changed.
	ErrOwnershipMismatch = errors.New("username does not match author")
)
