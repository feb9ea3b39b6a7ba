package fs

import (
	"context"
	"errors"

	"lesiw.io/pathname"
)

// A MkdirFS is a file system with the Mkdir method.
type MkdirFS interface {
	FS

	// Mkdir creates a new directory.
	//
	// The directory mode is obtained from DirMode(ctx). If not set in
	// the context, the default mode 0755 is used.
	//
	// Mkdir returns an error if the directory already exists or if
	// the parent directory does not exist. Use MkdirAll to create
	// parent directories automatically.
	Mkdir(ctx context.Context, name pathname.Path) error
}

// Mkdir creates a new directory.
// Analogous to: [os.Mkdir], mkdir.
//
// The directory mode is obtained from [DirMode](ctx). If not set in the
// context, the default mode 0755 is used:
//
//	ctx = fs.WithDirMode(ctx, 0700)
//	fs.Mkdir(ctx, fsys, pathname.MustNew("private"))
//
// Mkdir returns an error if the directory already exists or if the
// parent directory does not exist. Use [MkdirAll] to create parent
// directories automatically.
//
// Requires: [MkdirFS]
func Mkdir(ctx context.Context, fsys FS, name pathname.Path) error {
	name = name.Clean()
	if mfs, ok := fsys.(MkdirFS); ok {
		err := mfs.Mkdir(ctx, name)
		if !errors.Is(err, ErrUnsupported) {
			return newPathError("mkdir", name, err)
		}
	}
	return &PathError{
		Op:   "mkdir",
		Path: name.String(),
		Err:  ErrUnsupported,
	}
}
