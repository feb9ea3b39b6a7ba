package fs

import (
	"context"
	"errors"

	"lesiw.io/pathname"
)

// A ChmodFS is a file system with the Chmod method.
type ChmodFS interface {
	FS

	// Chmod changes the mode of the named file to mode.
	Chmod(ctx context.Context, name pathname.Path, mode Mode) error
}

// Chmod changes the mode of the named file to mode.
// Analogous to: [os.Chmod], chmod, 9P Twstat.
//
// Requires: [ChmodFS]
func Chmod(
	ctx context.Context, fsys FS, name pathname.Path, mode Mode,
) error {
	name = name.Clean()
	if cfs, ok := fsys.(ChmodFS); ok {
		err := cfs.Chmod(ctx, name, mode)
		if !errors.Is(err, ErrUnsupported) {
			return newPathError("chmod", name, err)
		}
	}
	return &PathError{
		Op:   "chmod",
		Path: name.String(),
		Err:  ErrUnsupported,
	}
}
