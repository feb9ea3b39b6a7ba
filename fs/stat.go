package fs

import (
	"context"
	"errors"

	"lesiw.io/pathname"
)

// A StatFS is a file system with the Stat method.
type StatFS interface {
	FS

	// Stat returns file metadata for the named file, following
	// symbolic links.
	Stat(ctx context.Context, name pathname.Path) (FileInfo, error)
}

// Stat returns file metadata for the named file.
// Analogous to: [io/fs.Stat], [os.Stat], stat, ls -l, 9P Tstat,
// S3 HeadObject.
//
// Requires: [StatFS]
func Stat(
	ctx context.Context, fsys FS, name pathname.Path,
) (FileInfo, error) {
	name = name.Clean()
	if sfs, ok := fsys.(StatFS); ok {
		info, err := sfs.Stat(ctx, name)
		if !errors.Is(err, ErrUnsupported) {
			return info, newPathError("stat", name, err)
		}
	}
	return nil, &PathError{
		Op:   "stat",
		Path: name.String(),
		Err:  ErrUnsupported,
	}
}
