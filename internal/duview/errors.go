package duview

import "errors"

var (
	// ErrNotDirectory indicates the target path is not a directory.
	ErrNotDirectory = errors.New("target is not a directory")
	// ErrSizeToken indicates a probe output line whose size field is not a
	// non-negative integer.
	ErrSizeToken = errors.New("size field is not a non-negative integer")
	// ErrPercentRange indicates a percentage outside [0, 100].
	ErrPercentRange = errors.New("percent must be between 0 and 100")
	// ErrTotalNotFound indicates the target's own entry is missing from the
	// parsed snapshot.
	ErrTotalNotFound = errors.New("total entry not found in snapshot")
)
