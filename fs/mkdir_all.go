package fs

import (
	"context"
	"errors"

	"lesiw.io/pathname"
)

// MkdirAll creates the named directory along with any necessary parents.
// Analogous to: [os.MkdirAll], mkdir -p.
//
// MkdirAll walks the cleaned path's prefixes shortest-first, creating
// each one and ignoring those that already exist. If name is already a
// directory, MkdirAll does nothing and returns nil. If any prefix
// exists as a non-directory, MkdirAll fails with [ErrNotDir].
//
// The directory mode is obtained from [DirMode](ctx). If not set in the
// context, the default mode 0755 is used:
//
//	ctx = fs.WithDirMode(ctx, 0700)
//	fs.MkdirAll(ctx, fsys, pathname.MustNew("a/b/c"))
//
// Requires: [MkdirFS]
func MkdirAll(ctx context.Context, fsys FS, name pathname.Path) error {
	name = name.Clean()
	if name.IsDot() || name.IsRoot() {
		return nil
	}

	mfs, ok := fsys.(MkdirFS)
	if !ok {
		return &PathError{
			Op:   "mkdir",
			Path: name.String(),
			Err:  ErrUnsupported,
		}
	}

	for dir := range name.Descend() {
		if dir.IsRoot() || dir.Base().IsDotDot() {
			continue
		}
		err := mfs.Mkdir(ctx, dir)
		if err == nil || errors.Is(err, ErrExist) {
			continue
		}
		return newPathError("mkdir", dir, err)
	}

	// Mkdir reports ErrExist for files and directories alike, so
	// confirm the target is actually a directory when we can.
	if _, ok := fsys.(StatFS); ok {
		info, err := Stat(ctx, fsys, name)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return &PathError{
				Op:   "mkdir",
				Path: name.String(),
				Err:  ErrNotDir,
			}
		}
	}
	return nil
}
