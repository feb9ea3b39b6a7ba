package fs

import (
	"context"
	"errors"

	"lesiw.io/pathname"
)

// RemoveAll removes name and any children it contains, children first.
// Analogous to: [os.RemoveAll], rm -rf.
// It returns nil if name does not exist.
//
// Requires: [RemoveFS] && [StatFS] && [ReadDirFS]
func RemoveAll(ctx context.Context, fsys FS, name pathname.Path) error {
	name = name.Clean()

	rfs, hasRemove := fsys.(RemoveFS)
	_, hasStat := fsys.(StatFS)
	_, hasReadDir := fsys.(ReadDirFS)
	if !hasRemove || !hasStat || !hasReadDir {
		return &PathError{
			Op:   "remove",
			Path: name.String(),
			Err:  ErrUnsupported,
		}
	}

	// Files and empty directories go in one call.
	err := rfs.Remove(ctx, name)
	if err == nil || errors.Is(err, ErrNotExist) {
		return nil
	}

	info, statErr := Stat(ctx, fsys, name)
	if statErr != nil {
		if errors.Is(statErr, ErrNotExist) {
			return nil
		}
		return statErr
	}
	if !info.IsDir() {
		return newPathError("remove", name, err)
	}

	for entry, readErr := range ReadDir(ctx, fsys, name) {
		if readErr != nil {
			return newPathError("remove", name, readErr)
		}
		child := name.Join(entry.Name())
		if rmErr := RemoveAll(ctx, fsys, child); rmErr != nil {
			return rmErr
		}
	}

	return newPathError("remove", name, rfs.Remove(ctx, name))
}
