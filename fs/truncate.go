package fs

import (
	"context"

	"lesiw.io/pathname"
)

// A TruncateFS is a file system with the Truncate method.
type TruncateFS interface {
	FS

	// Truncate changes the size of the named file.
	// If the file is larger than size, it is truncated.
	// If it is smaller, it is extended with zeros.
	Truncate(ctx context.Context, name pathname.Path, size int64) error
}

// Truncate changes the size of the named file.
// Analogous to: [os.Truncate], truncate, 9P Twstat.
//
// If the file is larger than size, it is truncated. If it is smaller,
// it is extended with zeros.
//
// Like [os.Truncate], Truncate returns an error if the file does not
// exist. If the provider does not implement [TruncateFS] and size is 0,
// Truncate falls back to recreating the file empty via [Create], after
// confirming it exists when [StatFS] is available.
func Truncate(
	ctx context.Context, fsys FS, name pathname.Path, size int64,
) error {
	name = name.Clean()

	if tfs, ok := fsys.(TruncateFS); ok {
		return tfs.Truncate(ctx, name, size)
	}

	if size != 0 {
		return &PathError{
			Op:   "truncate",
			Path: name.String(),
			Err:  ErrUnsupported,
		}
	}

	if sfs, ok := fsys.(StatFS); ok {
		if _, err := sfs.Stat(ctx, name); err != nil {
			return newPathError("truncate", name, err)
		}
	}

	f, err := Create(ctx, fsys, name)
	if err != nil {
		return err
	}
	return f.Close()
}
