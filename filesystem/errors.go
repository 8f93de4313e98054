package filesystem

import "errors"

// Sentinel errors returned (wrapped with the offending path) by [FileSystem]
// operations. Use errors.Is to classify a failure.
var (
	ErrNotFound    = errors.New("no such file or directory")
	ErrNotDir      = errors.New("not a directory")
	ErrExists      = errors.New("node already exists")
	ErrInvalidName = errors.New("invalid node name")
	ErrRemoveRoot  = errors.New("cannot remove the root directory")
	ErrRemoveCwd   = errors.New("cannot remove the current directory or one of its ancestors")
)
