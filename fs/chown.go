package fs

import (
	"context"
	"errors"

	"lesiw.io/pathname"
)

// A ChownFS is a file system with the Chown method.
type ChownFS interface {
	FS

	// Chown changes the numeric uid and gid of the named file.
	// This is typically a Unix-specific operation.
	Chown(ctx context.Context, name pathname.Path, uid, gid int) error
}

// Chown changes the numeric uid and gid of the named file.
// Analogous to: [os.Chown], chown, 9P Twstat.
// This is typically a Unix-specific operation.
//
// Requires: [ChownFS]
func Chown(
	ctx context.Context, fsys FS, name pathname.Path, uid, gid int,
) error {
	name = name.Clean()
	if cfs, ok := fsys.(ChownFS); ok {
		err := cfs.Chown(ctx, name, uid, gid)
		if !errors.Is(err, ErrUnsupported) {
			return newPathError("chown", name, err)
		}
	}
	return &PathError{
		Op:   "chown",
		Path: name.String(),
		Err:  ErrUnsupported,
	}
}
