package fs

import (
	"context"
	"errors"
	"io"

	"lesiw.io/pathname"
)

// A RenameFS is a file system with the Rename method.
type RenameFS interface {
	FS

	// Rename renames (moves) oldname to newname. If newname already
	// exists and is not a directory, Rename replaces it.
	Rename(ctx context.Context, oldname, newname pathname.Path) error
}

// Rename renames (moves) oldname to newname.
// Analogous to: [os.Rename], mv, 9P2000.u Trename.
// If newname already exists and is not a directory, Rename replaces it.
//
// If the provider does not implement [RenameFS], Rename falls back to
// copying oldname to newname and then removing oldname. This requires
// [CreateFS] and [RemoveFS] support, and only works for files.
func Rename(
	ctx context.Context, fsys FS, oldname, newname pathname.Path,
) error {
	oldname, newname = oldname.Clean(), newname.Clean()

	if rfs, ok := fsys.(RenameFS); ok {
		err := rfs.Rename(ctx, oldname, newname)
		if err == nil || !errors.Is(err, ErrUnsupported) {
			return err
		}
	}

	cfs, createOK := fsys.(CreateFS)
	rfs, removeOK := fsys.(RemoveFS)
	if !createOK || !removeOK {
		return &PathError{
			Op:   "rename",
			Path: oldname.String(),
			Err:  ErrUnsupported,
		}
	}

	src, err := fsys.Open(ctx, oldname)
	if err != nil {
		return newPathError("rename", oldname, err)
	}
	defer src.Close()

	dst, err := cfs.Create(ctx, newname)
	if err != nil {
		return newPathError("rename", newname, err)
	}

	_, err = io.Copy(dst, src)
	closeErr := dst.Close()
	if err != nil {
		return newPathError("rename", newname, err)
	}
	if closeErr != nil {
		return newPathError("rename", newname, closeErr)
	}

	return newPathError("rename", oldname, rfs.Remove(ctx, oldname))
}
