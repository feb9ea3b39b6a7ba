package fs

import (
	"context"
	"errors"

	"lesiw.io/pathname"
)

// A RemoveFS is a file system with the Remove method.
type RemoveFS interface {
	FS

	// Remove removes the named file or empty directory.
	// It returns an error if the file does not exist or if a
	// directory is not empty.
	Remove(ctx context.Context, name pathname.Path) error
}

// Remove removes the named file or empty directory.
// Analogous to: [os.Remove], rm, 9P Tremove, S3 DeleteObject.
// Returns an error if the file does not exist or if a directory is not
// empty.
//
// Requires: [RemoveFS]
func Remove(ctx context.Context, fsys FS, name pathname.Path) error {
	name = name.Clean()
	if rfs, ok := fsys.(RemoveFS); ok {
		err := rfs.Remove(ctx, name)
		if !errors.Is(err, ErrUnsupported) {
			return newPathError("remove", name, err)
		}
	}
	return &PathError{
		Op:   "remove",
		Path: name.String(),
		Err:  ErrUnsupported,
	}
}
