package fs

import (
	"context"
	"errors"
	"time"

	"lesiw.io/pathname"
)

// A ChtimesFS is a file system with the Chtimes method.
type ChtimesFS interface {
	FS

	// Chtimes changes the access and modification times of the named
	// file. A zero time.Time value leaves the corresponding file time
	// unchanged.
	Chtimes(
		ctx context.Context, name pathname.Path, atime, mtime time.Time,
	) error
}

// Chtimes changes the access and modification times of the named file.
// A zero time.Time value leaves the corresponding file time unchanged.
// Analogous to: [os.Chtimes], touch -t, 9P Twstat.
//
// Requires: [ChtimesFS]
func Chtimes(
	ctx context.Context, fsys FS, name pathname.Path,
	atime, mtime time.Time,
) error {
	name = name.Clean()
	if cfs, ok := fsys.(ChtimesFS); ok {
		err := cfs.Chtimes(ctx, name, atime, mtime)
		if !errors.Is(err, ErrUnsupported) {
			return newPathError("chtimes", name, err)
		}
	}
	return &PathError{
		Op:   "chtimes",
		Path: name.String(),
		Err:  ErrUnsupported,
	}
}
