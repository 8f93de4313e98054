package commands

import (
	"errors"

	"github.com/n3xus/n3xus/filesystem"
)

var knownErrors = []error{
	filesystem.ErrNotFound,
	filesystem.ErrNotDir,
	filesystem.ErrExists,
	filesystem.ErrInvalidName,
	filesystem.ErrRemoveRoot,
	filesystem.ErrRemoveCwd,
}

// reason reduces a filesystem error to its sentinel text so diagnostics
// stay on one line without repeating the path
func reason(err error) string {
	for _, known := range knownErrors {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return err.Error()
}
